package booking

import (
	"context"

	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

type fakeRepo struct {
	listStylistsFn        func(ctx context.Context) ([]models.Stylist, error)
	getStylistFn          func(ctx context.Context, id string) (*models.Stylist, error)
	listBookingsFn        func(ctx context.Context) ([]models.Booking, error)
	listBookingsForDateFn func(ctx context.Context, stylistID, date string) ([]models.Booking, error)
	getBookingFn          func(ctx context.Context, id string) (*models.Booking, error)
	createBookingFn       func(ctx context.Context, b *models.Booking) error
	updateBookingFn       func(ctx context.Context, b *models.Booking) error
	deleteBookingFn       func(ctx context.Context, id string) error
}

func (f *fakeRepo) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	if f.listStylistsFn == nil {
		panic("ListStylists not configured")
	}
	return f.listStylistsFn(ctx)
}

func (f *fakeRepo) GetStylistByID(ctx context.Context, id string) (*models.Stylist, error) {
	if f.getStylistFn == nil {
		panic("GetStylistByID not configured")
	}
	return f.getStylistFn(ctx, id)
}

func (f *fakeRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	if f.listBookingsFn == nil {
		panic("ListBookings not configured")
	}
	return f.listBookingsFn(ctx)
}

func (f *fakeRepo) ListBookingsForDate(ctx context.Context, stylistID, date string) ([]models.Booking, error) {
	if f.listBookingsForDateFn == nil {
		panic("ListBookingsForDate not configured")
	}
	return f.listBookingsForDateFn(ctx, stylistID, date)
}

func (f *fakeRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if f.getBookingFn == nil {
		panic("GetBooking not configured")
	}
	return f.getBookingFn(ctx, id)
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createBookingFn == nil {
		panic("CreateBooking not configured")
	}
	return f.createBookingFn(ctx, b)
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if f.updateBookingFn == nil {
		panic("UpdateBooking not configured")
	}
	return f.updateBookingFn(ctx, b)
}

func (f *fakeRepo) DeleteBooking(ctx context.Context, id string) error {
	if f.deleteBookingFn == nil {
		panic("DeleteBooking not configured")
	}
	return f.deleteBookingFn(ctx, id)
}

func testStylist() *models.Stylist {
	return &models.Stylist{
		ID:   "1",
		Name: "Woolley Cutzz",
		Availability: models.Availability{
			Days:  []string{"onsdag", "torsdag", "fredag", "lördag", "söndag"},
			Hours: []string{"11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		},
		Services: []models.Service{
			{ID: 1, StylistID: "1", Name: "Herrklippning", Price: 300, DurationMin: 30},
			{ID: 2, StylistID: "1", Name: "Herrklippning med skägg", Price: 400, DurationMin: 45},
		},
	}
}
