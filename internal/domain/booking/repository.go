package booking

import (
	"context"

	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

type Repository interface {
	// -------- Stylist --------
	ListStylists(
		ctx context.Context,
	) ([]models.Stylist, error)

	GetStylistByID(
		ctx context.Context,
		id string,
	) (*models.Stylist, error)

	// -------- Booking (read) --------
	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsForDate(
		ctx context.Context,
		stylistID string,
		date string,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// -------- Booking (write) --------

	// CreateBooking runs the slot-conflict check and the insert as one
	// atomic operation with respect to other writers for the same stylist.
	// Returns the slot_taken business error when the slot is occupied.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateBooking persists a changed booking, re-running the conflict
	// check against every other booking under the same atomicity rule.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id string,
	) error
}
