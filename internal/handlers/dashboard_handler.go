package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/store-reservations/internal/usecase/reservation"
)

type DashboardHandler struct {
	dashboard *ucReservation.Dashboard
}

func NewDashboardHandler(dashboard *ucReservation.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.dashboard.Execute(c.Request.Context()))
}
