package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-reservations/internal/catalog"
	domain "github.com/BruksfildServices01/store-reservations/internal/domain/product"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/httpresp"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	products *catalog.Store
}

func NewCatalogHandler(products *catalog.Store) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// ======================================================
// PRODUCTS
// ======================================================

// List serves the storefront search: ?query=&gender=&category=&available=
func (h *CatalogHandler) List(c *gin.Context) {
	f := catalog.Filter{
		Query:    c.Query("query"),
		Gender:   models.Gender(strings.ToLower(strings.TrimSpace(c.Query("gender")))),
		Category: strings.TrimSpace(c.Query("category")),
	}

	if s := strings.TrimSpace(c.Query("available")); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_available", "Filtro de disponibilidade inválido.")
			return
		}
		f.Available = &v
	}

	if f.Gender != "" && !f.Gender.Valid() {
		httperr.BadRequest(c, "invalid_gender", "Género inválido.")
		return
	}

	httpresp.List(c, h.products.Search(f))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.products.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// ======================================================
// CATEGORIES
// ======================================================

type categoryDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	out := map[models.Gender][]categoryDTO{}
	for _, g := range []models.Gender{models.GenderMen, models.GenderWomen, models.GenderYouth} {
		for _, name := range domain.CategoriesFor(g) {
			out[g] = append(out[g], categoryDTO{Name: name, Slug: domain.Slug(name)})
		}
	}
	httpresp.OK(c, out)
}

func (h *CatalogHandler) ByCategory(c *gin.Context) {
	gender := models.Gender(strings.ToLower(c.Param("gender")))
	if !gender.Valid() {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	category, ok := domain.CategoryFromSlug(gender, c.Param("slug"))
	if !ok {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	httpresp.List(c, h.products.Search(catalog.Filter{Gender: gender, Category: category}))
}
