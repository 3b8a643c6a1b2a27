package reservation

import (
	"context"

	"github.com/BruksfildServices01/store-reservations/internal/models"
	"github.com/BruksfildServices01/store-reservations/internal/reservation"
)

// ProductReader is the read side of the catalog.
type ProductReader interface {
	Get(id string) (models.Product, error)
	List() []models.Product
}

// Repository is the reservation store as seen by the use cases.
type Repository interface {
	List() []models.Reservation
	Create(ctx context.Context, in reservation.CreateInput) (models.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status string) (models.Reservation, error)
}
