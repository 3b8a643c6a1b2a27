package product

import (
	"context"

	"github.com/BruksfildServices01/store-reservations/internal/models"
	"github.com/BruksfildServices01/store-reservations/internal/validators"
)

type UpdateProduct struct {
	repo Repository
}

func NewUpdateProduct(repo Repository) *UpdateProduct {
	return &UpdateProduct{repo: repo}
}

// Execute validates the merged result before applying the patch, so a patch
// that would leave the product invalid changes nothing.
func (uc *UpdateProduct) Execute(_ context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	current, err := uc.repo.Get(id)
	if err != nil {
		return models.Product{}, err
	}

	if patch.Sizes != nil {
		patch.Sizes = validators.CleanOptions(patch.Sizes)
	}
	if patch.Colors != nil {
		patch.Colors = validators.CleanOptions(patch.Colors)
	}

	if err := validators.ValidateProduct(patch.Apply(current)); err != nil {
		return models.Product{}, err
	}
	return uc.repo.Update(id, patch)
}

type DeleteProduct struct {
	repo Repository
}

func NewDeleteProduct(repo Repository) *DeleteProduct {
	return &DeleteProduct{repo: repo}
}

func (uc *DeleteProduct) Execute(_ context.Context, id string) error {
	return uc.repo.Delete(id)
}
