package booking

import (
	"context"
	"time"

	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/dto"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository

	freeCancelled bool
}

func NewGetAvailability(repo domain.Repository, freeCancelled bool) *GetAvailability {
	return &GetAvailability{
		repo:          repo,
		freeCancelled: freeCancelled,
	}
}

// Execute renders the stylist's slot list for one date. Bookings are read
// fresh from the store on every call; nothing here may be cached, since
// the authoritative check happens again at submit time anyway.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	stylistID string,
	dateStr string,
) (*dto.AvailabilityDTO, error) {

	stylist, err := uc.repo.GetStylistByID(ctx, stylistID)
	if err != nil {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	out := &dto.AvailabilityDTO{
		Date:  date.Format("2006-01-02"),
		Slots: []domain.Slot{},
	}

	if !domain.IsDayAvailable(stylist, date) {
		return out, nil
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, stylist.ID, out.Date)
	if err != nil {
		return nil, err
	}

	out.Available = true
	out.Slots = domain.DaySlots(stylist, bookings, out.Date, uc.freeCancelled)

	return out, nil
}
