package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WoolleyCutzz/salon-booking/internal/cache"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/httpresp"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
	ucBooking "github.com/WoolleyCutzz/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type StylistHandler struct {
	db           *gorm.DB
	cache        *cache.Cache
	availability *ucBooking.GetAvailability
}

func NewStylistHandler(
	db *gorm.DB,
	c *cache.Cache,
	availability *ucBooking.GetAvailability,
) *StylistHandler {
	return &StylistHandler{
		db:           db,
		cache:        c,
		availability: availability,
	}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *StylistHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var stylists []models.Stylist
	if err := h.db.WithContext(ctx).
		Preload("Services").
		Order("id ASC").
		Find(&stylists).Error; err != nil {

		// Degrade to the last-good copy rather than an empty state.
		if h.cache.GetJSON(ctx, "stylists", &stylists) {
			c.Header("X-Stale-Data", "true")
			httpresp.List(c, stylists)
			return
		}

		httperr.Internal(c, "failed_to_list_stylists", "Kunde inte ladda frisörer.")
		return
	}

	h.cache.SetJSON(ctx, "stylists", stylists)
	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var stylist models.Stylist
	if err := h.db.WithContext(ctx).
		Preload("Services").
		Where("id = ?", id).
		First(&stylist).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "stylist_not_found", "Frisören hittades inte.")
			return
		}

		if h.cache.GetJSON(ctx, "stylist:"+id, &stylist) {
			c.Header("X-Stale-Data", "true")
			httpresp.OK(c, stylist)
			return
		}

		httperr.Internal(c, "failed_to_get_stylist", "Kunde inte ladda frisören.")
		return
	}

	h.cache.SetJSON(ctx, "stylist:"+id, stylist)
	httpresp.OK(c, stylist)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *StylistHandler) Availability(c *gin.Context) {
	id := c.Param("id")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Ange datum (YYYY-MM-DD).")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), id, dateStr)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "stylist_not_found"):
			httperr.NotFound(c, "stylist_not_found", "Frisören hittades inte.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Ogiltigt datum.")
		default:
			httperr.Internal(c, "availability_failed", "Kunde inte beräkna tillgängliga tider.")
		}
		return
	}

	httpresp.OK(c, out)
}
