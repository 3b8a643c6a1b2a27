package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/store-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

type UpdateReservationStatus struct {
	repo Repository
}

func NewUpdateReservationStatus(repo Repository) *UpdateReservationStatus {
	return &UpdateReservationStatus{repo: repo}
}

func (uc *UpdateReservationStatus) Execute(ctx context.Context, id string, status string) (models.Reservation, error) {
	return uc.repo.UpdateStatus(ctx, id, status)
}

func (uc *UpdateReservationStatus) Confirm(ctx context.Context, id string) (models.Reservation, error) {
	return uc.Execute(ctx, id, string(domain.StatusConfirmed))
}

func (uc *UpdateReservationStatus) Cancel(ctx context.Context, id string) (models.Reservation, error) {
	return uc.Execute(ctx, id, string(domain.StatusCanceled))
}

func (uc *UpdateReservationStatus) Complete(ctx context.Context, id string) (models.Reservation, error) {
	return uc.Execute(ctx, id, string(domain.StatusCompleted))
}
