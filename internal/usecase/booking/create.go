package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WoolleyCutzz/salon-booking/internal/audit"
	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
	"github.com/WoolleyCutzz/salon-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StylistID string

	CustomerName  string
	CustomerPhone string

	Service string

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the submission gate: every precondition is checked in
// order, each short-circuiting, and the final conflict check plus the
// insert run atomically in the repository.
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// 1. Phone: exactly 10 digits after whitespace stripping
	if !validators.IsValidPhone(in.CustomerPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// 2. Name
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_name")
	}

	// 3. Service selected
	if strings.TrimSpace(in.Service) == "" {
		return nil, httperr.ErrBusiness("missing_service")
	}

	// 4. Slot selected upstream
	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_slot")
	}

	stylist, err := uc.repo.GetStylistByID(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// The stored service name must match one the stylist currently offers.
	if !offersService(stylist, in.Service) {
		return nil, httperr.ErrBusiness("unknown_service")
	}

	// Slot membership: working day plus a listed slot start time.
	if !domain.IsDayAvailable(stylist, date) || !domain.HasSlot(stylist, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	b := &models.Booking{
		ID:            uuid.NewString(),
		StylistID:     stylist.ID,
		CustomerName:  name,
		CustomerPhone: in.CustomerPhone,
		Service:       in.Service,
		Date:          date.Format("2006-01-02"),
		Time:          in.Time,
		Status:        string(domain.InitialStatus()),
	}

	// 5. Conflict check + append, atomic in the store
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				Action:   "booking_conflict",
				Entity:   "booking",
				EntityID: "",
				Metadata: map[string]any{
					"stylist_id": b.StylistID,
					"date":       b.Date,
					"time":       b.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}

func offersService(st *models.Stylist, name string) bool {
	for _, s := range st.Services {
		if s.Name == name {
			return true
		}
	}
	return false
}
