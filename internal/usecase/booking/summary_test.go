package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

func TestDashboardSummary(t *testing.T) {
	repo := &fakeRepo{
		listBookingsFn: func(ctx context.Context) ([]models.Booking, error) {
			return []models.Booking{
				{Status: "confirmed"},
				{Status: "confirmed"},
				{Status: "pending"},
				{Status: "cancelled"},
			}, nil
		},
	}
	uc := NewDashboardSummary(repo)

	s, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Summary{Total: 4, Confirmed: 2, Pending: 1, Cancelled: 1}, s)
}

func TestDashboardSummary_StoreError(t *testing.T) {
	repo := &fakeRepo{
		listBookingsFn: func(ctx context.Context) ([]models.Booking, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewDashboardSummary(repo)

	_, err := uc.Execute(context.Background())

	assert.Error(t, err)
}
