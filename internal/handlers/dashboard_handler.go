package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/httpresp"
	ucBooking "github.com/WoolleyCutzz/salon-booking/internal/usecase/booking"
)

type DashboardHandler struct {
	summary *ucBooking.DashboardSummary
}

func NewDashboardHandler(summary *ucBooking.DashboardSummary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_summarize", "Kunde inte ladda bokningsstatistik.")
		return
	}

	httpresp.OK(c, s)
}
