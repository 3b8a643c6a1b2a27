package reservation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/models"
	"github.com/BruksfildServices01/store-reservations/internal/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/validators"
)

type CreateReservationInput struct {
	ProductID     string
	FullName      string
	Phone         string
	Address       string
	Email         string
	SelectedSize  string
	SelectedColor string
}

type CreateReservation struct {
	products ProductReader
	repo     Repository
}

func NewCreateReservation(products ProductReader, repo Repository) *CreateReservation {
	return &CreateReservation{
		products: products,
		repo:     repo,
	}
}

// Execute validates the form against the product and records a pending
// reservation. A missing product is reported as product_unavailable, the same
// as a product that is already held.
func (uc *CreateReservation) Execute(ctx context.Context, in CreateReservationInput) (models.Reservation, error) {
	product, err := uc.products.Get(strings.TrimSpace(in.ProductID))
	if err != nil {
		return models.Reservation{}, httperr.ErrBusiness(httperr.CodeProductUnavailable)
	}
	if !product.Available {
		return models.Reservation{}, httperr.ErrBusiness(httperr.CodeProductUnavailable)
	}

	// blank size or colour falls back to the first option, as the form preselects it
	size := strings.TrimSpace(in.SelectedSize)
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}
	color := strings.TrimSpace(in.SelectedColor)
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}

	if err := validators.ValidateReservation(validators.ReservationInput{
		FullName:      in.FullName,
		Phone:         in.Phone,
		Address:       in.Address,
		Email:         in.Email,
		SelectedSize:  size,
		SelectedColor: color,
	}, product); err != nil {
		return models.Reservation{}, err
	}

	r, err := uc.repo.Create(ctx, reservation.CreateInput{
		ProductID:     product.ID,
		FullName:      in.FullName,
		Phone:         in.Phone,
		Address:       in.Address,
		Email:         in.Email,
		SelectedSize:  size,
		SelectedColor: color,
	})
	if err != nil {
		return models.Reservation{}, err
	}

	zap.L().Info("reservation created",
		zap.String("reservation_number", r.ReservationNumber),
		zap.String("product_id", r.ProductID),
	)
	return r, nil
}
