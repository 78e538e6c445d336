package booking

import (
	"context"
	"strings"
	"time"

	"github.com/WoolleyCutzz/salon-booking/internal/audit"
	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
	"github.com/WoolleyCutzz/salon-booking/internal/validators"
)

type UpdateBookingInput struct {
	CustomerName  *string
	CustomerPhone *string
	Service       *string
	Date          *string
	Time          *string
	Status        *string
}

// UpdateBooking routes edits through the same conflict gate as creation:
// the patched slot is re-validated against the stylist and the store
// before anything is committed.
type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID string,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if in.CustomerPhone != nil {
		if !validators.IsValidPhone(*in.CustomerPhone) {
			return nil, httperr.ErrBusiness("invalid_phone")
		}
		b.CustomerPhone = *in.CustomerPhone
	}

	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			return nil, httperr.ErrBusiness("missing_name")
		}
		b.CustomerName = name
	}

	if in.Status != nil {
		if !domain.Status(*in.Status).Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		b.Status = *in.Status
	}

	if in.Service != nil {
		b.Service = *in.Service
	}
	if in.Date != nil {
		date, err := time.Parse("2006-01-02", *in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		b.Date = date.Format("2006-01-02")
	}
	if in.Time != nil {
		b.Time = *in.Time
	}

	stylist, err := uc.repo.GetStylistByID(ctx, b.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	if !offersService(stylist, b.Service) {
		return nil, httperr.ErrBusiness("unknown_service")
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !domain.IsDayAvailable(stylist, date) || !domain.HasSlot(stylist, b.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
