package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/media"
)

// MediaHandler serves images kept by the in-memory media store. With the S3
// driver images are served by the bucket and this handler is not mounted.
type MediaHandler struct {
	files *media.MemoryStore
}

func NewMediaHandler(files *media.MemoryStore) *MediaHandler {
	return &MediaHandler{files: files}
}

func (h *MediaHandler) Get(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	obj, ok := h.files.Object(key)
	if !ok {
		httperr.NotFound(c, "media_not_found", "Imagem não encontrada.")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
