package product

import (
	"context"
	"io"

	"github.com/BruksfildServices01/store-reservations/internal/models"
)

type Repository interface {
	Get(id string) (models.Product, error)
	Create(p models.Product) (models.Product, error)
	Update(id string, patch models.ProductPatch) (models.Product, error)
	Delete(id string) error
}

type ImageUploader interface {
	UploadProductImage(ctx context.Context, productID string, r io.Reader) (string, error)
}
