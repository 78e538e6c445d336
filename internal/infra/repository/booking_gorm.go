package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB

	// freeCancelled mirrors the cancelled-slot policy: when set, cancelled
	// bookings do not count as conflicts.
	freeCancelled bool
}

func NewBookingGormRepository(db *gorm.DB, freeCancelled bool) *BookingGormRepository {
	return &BookingGormRepository{
		db:            db,
		freeCancelled: freeCancelled,
	}
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *BookingGormRepository) ListStylists(
	ctx context.Context,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *BookingGormRepository) GetStylistByID(
	ctx context.Context,
	id string,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ?", id).
		First(&stylist).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	stylistID string,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND date = ?", stylistID, date).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) conflictQuery(
	tx *gorm.DB,
	stylistID string,
	date string,
	hm string,
) *gorm.DB {

	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"stylist_id = ? AND date = ? AND time = ?",
			stylistID, date, hm,
		)

	if r.freeCancelled {
		q = q.Where("status <> ?", string(domain.StatusCancelled))
	}

	return q
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Booking
		if err := r.conflictQuery(tx, b.StylistID, b.Date, b.Time).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(b).Error
	})

	// The unique index rejects a second writer that raced past the check.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Booking
		if err := r.conflictQuery(tx, b.StylistID, b.Date, b.Time).
			Where("id <> ?", b.ID).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Save(b).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
