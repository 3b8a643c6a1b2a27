package models

import "time"

// Reservation is the customer's claim on a product. The JSON layout is the
// persisted layout: the postal address is stored under "girlfriendName" so
// previously saved data keeps loading.
type Reservation struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"productId"`
	FullName          string    `json:"fullName"`
	Phone             string    `json:"phone"`
	Address           string    `json:"girlfriendName"`
	Email             string    `json:"email"`
	ReservationNumber string    `json:"reservationNumber"`
	CreatedAt         time.Time `json:"createdAt"`
	Status            string    `json:"status"`
	SelectedSize      string    `json:"selectedSize,omitempty"`
	SelectedColor     string    `json:"selectedColor,omitempty"`
}
