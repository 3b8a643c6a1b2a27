package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-reservations/internal/httpresp"
	"github.com/BruksfildServices01/store-reservations/internal/models"
	ucReservation "github.com/BruksfildServices01/store-reservations/internal/usecase/reservation"
)

type AdminReservationHandler struct {
	list   *ucReservation.ListReservations
	status *ucReservation.UpdateReservationStatus
}

func NewAdminReservationHandler(
	list *ucReservation.ListReservations,
	status *ucReservation.UpdateReservationStatus,
) *AdminReservationHandler {
	return &AdminReservationHandler{
		list:   list,
		status: status,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List accepts ?status= (pending, confirmed, canceled, completed or all) and
// ?query= over name, reservation number and email.
func (h *AdminReservationHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), ucReservation.ListFilter{
		Status: c.Query("status"),
		Query:  c.Query("query"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AdminReservationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	h.respond(c, func(ctx context.Context, id string) (models.Reservation, error) {
		return h.status.Execute(ctx, id, req.Status)
	})
}

func (h *AdminReservationHandler) Confirm(c *gin.Context) {
	h.respond(c, h.status.Confirm)
}

func (h *AdminReservationHandler) Cancel(c *gin.Context) {
	h.respond(c, h.status.Cancel)
}

func (h *AdminReservationHandler) Complete(c *gin.Context) {
	h.respond(c, h.status.Complete)
}

func (h *AdminReservationHandler) respond(c *gin.Context, fn func(context.Context, string) (models.Reservation, error)) {
	r, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, r)
}
