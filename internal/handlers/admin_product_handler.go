package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/store-reservations/internal/catalog"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/httpresp"
	"github.com/BruksfildServices01/store-reservations/internal/media"
	"github.com/BruksfildServices01/store-reservations/internal/models"
	ucProduct "github.com/BruksfildServices01/store-reservations/internal/usecase/product"
)

const maxImageBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type AdminProductHandler struct {
	products *catalog.Store
	create   *ucProduct.CreateProduct
	update   *ucProduct.UpdateProduct
	remove   *ucProduct.DeleteProduct
	image    *ucProduct.SetProductImage
}

func NewAdminProductHandler(
	products *catalog.Store,
	create *ucProduct.CreateProduct,
	update *ucProduct.UpdateProduct,
	remove *ucProduct.DeleteProduct,
	image *ucProduct.SetProductImage,
) *AdminProductHandler {
	return &AdminProductHandler{
		products: products,
		create:   create,
		update:   update,
		remove:   remove,
		image:    image,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category" binding:"required"`
	Gender      string          `json:"gender" binding:"required"`
	Available   *bool           `json:"available"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AdminProductHandler) List(c *gin.Context) {
	httpresp.List(c, h.products.List())
}

func (h *AdminProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), models.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Gender:      models.Gender(req.Gender),
		Sizes:       req.Sizes,
		Colors:      req.Colors,
	}, req.Available)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *AdminProductHandler) Update(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *AdminProductHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// UploadImage accepts a multipart "image" field and replaces the product's
// imageUrl with the stored webp.
func (h *AdminProductHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Envie uma imagem.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "image_unreadable", "Não foi possível ler a imagem.")
		return
	}
	defer f.Close()

	p, err := h.image.Execute(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
			return
		}
		respondError(c, err)
		return
	}

	httpresp.OK(c, p)
}
