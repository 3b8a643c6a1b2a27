package product

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/store-reservations/internal/domain/product"
	"github.com/BruksfildServices01/store-reservations/internal/models"
	"github.com/BruksfildServices01/store-reservations/internal/validators"
)

type CreateProduct struct {
	repo Repository
}

func NewCreateProduct(repo Repository) *CreateProduct {
	return &CreateProduct{repo: repo}
}

// Execute fills the admin form defaults, validates and appends the product.
// available defaults to true when nil.
func (uc *CreateProduct) Execute(_ context.Context, p models.Product, available *bool) (models.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Gender = models.Gender(strings.ToLower(strings.TrimSpace(string(p.Gender))))

	p.Sizes = validators.CleanOptions(p.Sizes)
	if len(p.Sizes) == 0 {
		p.Sizes = append([]string(nil), domain.DefaultSizes...)
	}
	p.Colors = validators.CleanOptions(p.Colors)
	if len(p.Colors) == 0 {
		p.Colors = append([]string(nil), domain.DefaultColors...)
	}

	p.Available = true
	if available != nil {
		p.Available = *available
	}

	if err := validators.ValidateProduct(p); err != nil {
		return models.Product{}, err
	}
	return uc.repo.Create(p)
}
