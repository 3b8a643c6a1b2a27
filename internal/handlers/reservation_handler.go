package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ucReservation "github.com/BruksfildServices01/store-reservations/internal/usecase/reservation"
)

type ReservationHandler struct {
	create *ucReservation.CreateReservation
}

func NewReservationHandler(create *ucReservation.CreateReservation) *ReservationHandler {
	return &ReservationHandler{create: create}
}

// --------- Requests ---------

type CreateReservationRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LegacyAddress string `json:"girlfriendName"`
	Email         string `json:"email"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// --------- Handlers ---------

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if req.Address == "" {
		req.Address = req.LegacyAddress
	}

	r, err := h.create.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		ProductID:     req.ProductID,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Address:       req.Address,
		Email:         req.Email,
		SelectedSize:  req.SelectedSize,
		SelectedColor: req.SelectedColor,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservationNumber": r.ReservationNumber,
		"reservation":       r,
	})
}
