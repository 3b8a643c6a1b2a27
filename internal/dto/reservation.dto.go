package dto

import (
	"time"

	"github.com/BruksfildServices01/store-reservations/internal/models"
)

// ReservationRowDTO is a reservation joined with its product for the admin
// list. Product is nil when the product was deleted.
type ReservationRowDTO struct {
	models.Reservation
	StatusLabel    string          `json:"statusLabel"`
	CreatedAtLocal time.Time       `json:"createdAtLocal"`
	Product        *models.Product `json:"product"`
}

type DashboardDTO struct {
	TotalProducts      int                 `json:"totalProducts"`
	AvailableProducts  int                 `json:"availableProducts"`
	ReservedProducts   int                 `json:"reservedProducts"`
	TotalReservations  int                 `json:"totalReservations"`
	ByStatus           map[string]int      `json:"byStatus"`
	RecentReservations []ReservationRowDTO `json:"recentReservations"`
}
