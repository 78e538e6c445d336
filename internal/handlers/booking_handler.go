package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WoolleyCutzz/salon-booking/internal/audit"
	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/httpresp"
	ucBooking "github.com/WoolleyCutzz/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo   domain.Repository
	create *ucBooking.CreateBooking
	update *ucBooking.UpdateBooking
	audit  *audit.Dispatcher
}

func NewBookingHandler(
	repo domain.Repository,
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	auditDispatcher *audit.Dispatcher,
) *BookingHandler {
	return &BookingHandler{
		repo:   repo,
		create: create,
		update: update,
		audit:  auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	StylistID     string `json:"stylistId" binding:"required"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type UpdateBookingRequest struct {
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
	Service       *string `json:"service"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Status        *string `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Ogiltiga uppgifter.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StylistID:     req.StylistID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Kunde inte ladda bokningar.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.repo.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Bokningen hittades inte.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Kunde inte ladda bokningen.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Ogiltiga uppgifter.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucBooking.UpdateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		Date:          req.Date,
		Time:          req.Time,
		Status:        req.Status,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.DeleteBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Bokningen hittades inte.")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Kunde inte ta bort bokningen.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})

	httpresp.NoContent(c)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_phone"):
		httperr.Unprocessable(c, "invalid_phone", "Vänligen ange ett giltigt telefonnummer (10 siffror).")
	case httperr.IsBusiness(err, "missing_name"):
		httperr.Unprocessable(c, "missing_name", "Vänligen ange ditt namn.")
	case httperr.IsBusiness(err, "missing_service"):
		httperr.Unprocessable(c, "missing_service", "Vänligen välj en tjänst.")
	case httperr.IsBusiness(err, "unknown_service"):
		httperr.Unprocessable(c, "unknown_service", "Vänligen välj en giltig tjänst.")
	case httperr.IsBusiness(err, "missing_slot"):
		httperr.Unprocessable(c, "missing_slot", "Välj datum och tid för bokningen.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.Unprocessable(c, "invalid_date", "Ogiltigt datum.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.Unprocessable(c, "invalid_status", "Ogiltig status.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.Unprocessable(c, "slot_unavailable", "Inga tider tillgängliga denna dag.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Tyvärr är denna tid redan bokad. Vänligen välj en annan tid.")
	case httperr.IsBusiness(err, "stylist_not_found"):
		httperr.NotFound(c, "stylist_not_found", "Frisören hittades inte.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Bokningen hittades inte.")
	default:
		httperr.Internal(c, "booking_failed", "Ett fel uppstod vid bokningen. Vänligen försök igen.")
	}
}
