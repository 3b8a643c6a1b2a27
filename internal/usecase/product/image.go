package product

import (
	"context"
	"io"

	"github.com/BruksfildServices01/store-reservations/internal/models"
)

type SetProductImage struct {
	repo     Repository
	uploader ImageUploader
}

func NewSetProductImage(repo Repository, uploader ImageUploader) *SetProductImage {
	return &SetProductImage{
		repo:     repo,
		uploader: uploader,
	}
}

// Execute stores the image and points the product's imageUrl at it.
func (uc *SetProductImage) Execute(ctx context.Context, id string, r io.Reader) (models.Product, error) {
	if _, err := uc.repo.Get(id); err != nil {
		return models.Product{}, err
	}

	url, err := uc.uploader.UploadProductImage(ctx, id, r)
	if err != nil {
		return models.Product{}, err
	}

	return uc.repo.Update(id, models.ProductPatch{ImageURL: &url})
}
