package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
	"github.com/WoolleyCutzz/salon-booking/internal/httperr"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

// validInput targets 2025-03-12, a Wednesday the test stylist works.
func validInput() CreateBookingInput {
	return CreateBookingInput{
		StylistID:     "1",
		CustomerName:  "Marcus Svensson",
		CustomerPhone: "0701234567",
		Service:       "Herrklippning",
		Date:          "2025-03-12",
		Time:          "14:00",
	}
}

func newCreateUC(repo domain.Repository) *CreateBooking {
	return NewCreateBooking(repo, nil)
}

func TestCreateBooking_ValidationOrder(t *testing.T) {
	// The stylist lookup must never run for inputs that fail the
	// short-circuiting precondition chain.
	repo := &fakeRepo{}
	uc := newCreateUC(repo)

	cases := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{"invalid phone", func(in *CreateBookingInput) { in.CustomerPhone = "070-1234567" }, "invalid_phone"},
		{"short phone", func(in *CreateBookingInput) { in.CustomerPhone = "12345" }, "invalid_phone"},
		{"missing name", func(in *CreateBookingInput) { in.CustomerName = "   " }, "missing_name"},
		{"missing service", func(in *CreateBookingInput) { in.Service = "" }, "missing_service"},
		{"missing date", func(in *CreateBookingInput) { in.Date = "" }, "missing_slot"},
		{"missing time", func(in *CreateBookingInput) { in.Time = "" }, "missing_slot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)

			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.wantCode), "got %v, want %s", err, tc.wantCode)
		})
	}
}

func TestCreateBooking_PhoneTakesPrecedence(t *testing.T) {
	uc := newCreateUC(&fakeRepo{})

	in := validInput()
	in.CustomerPhone = "bad"
	in.CustomerName = ""
	in.Service = ""

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
}

func TestCreateBooking_UnknownService(t *testing.T) {
	repo := &fakeRepo{
		getStylistFn: func(ctx context.Context, id string) (*models.Stylist, error) {
			return testStylist(), nil
		},
	}
	uc := newCreateUC(repo)

	in := validInput()
	in.Service = "Damklippning"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "unknown_service"))
}

func TestCreateBooking_UnavailableDayAndSlot(t *testing.T) {
	repo := &fakeRepo{
		getStylistFn: func(ctx context.Context, id string) (*models.Stylist, error) {
			return testStylist(), nil
		},
	}
	uc := newCreateUC(repo)

	// 2025-03-10 is a Monday.
	in := validInput()
	in.Date = "2025-03-10"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	in = validInput()
	in.Time = "09:00"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	existing := models.Booking{
		StylistID: "1",
		Date:      "2025-03-12",
		Time:      "14:00",
		Status:    "confirmed",
	}

	repo := &fakeRepo{
		getStylistFn: func(ctx context.Context, id string) (*models.Stylist, error) {
			return testStylist(), nil
		},
		createBookingFn: func(ctx context.Context, b *models.Booking) error {
			if b.StylistID == existing.StylistID &&
				b.Date == existing.Date &&
				b.Time == existing.Time {
				return httperr.ErrBusiness("slot_taken")
			}
			return nil
		},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	in := validInput()
	in.Time = "15:00"
	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "15:00", b.Time)
}

func TestCreateBooking_Success(t *testing.T) {
	var stored *models.Booking
	repo := &fakeRepo{
		getStylistFn: func(ctx context.Context, id string) (*models.Stylist, error) {
			require.Equal(t, "1", id)
			return testStylist(), nil
		},
		createBookingFn: func(ctx context.Context, b *models.Booking) error {
			stored = b
			return nil
		},
	}
	uc := newCreateUC(repo)

	in := validInput()
	in.CustomerName = "  Marcus Svensson  "

	b, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "1", b.StylistID)
	assert.Equal(t, "Marcus Svensson", b.CustomerName)
	assert.Equal(t, "2025-03-12", b.Date)
	assert.Equal(t, "14:00", b.Time)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
}

func TestCreateBooking_NoDoubleBooking(t *testing.T) {
	// An in-memory store whose conflict check and insert run under one
	// lock, the same guarantee the gorm repository gives via its
	// transaction and unique index. At most one of the racing
	// submissions may win the slot.
	var (
		mu    sync.Mutex
		slots = map[string]bool{}
	)

	repo := &fakeRepo{
		getStylistFn: func(ctx context.Context, id string) (*models.Stylist, error) {
			return testStylist(), nil
		},
		createBookingFn: func(ctx context.Context, b *models.Booking) error {
			mu.Lock()
			defer mu.Unlock()
			key := b.StylistID + "|" + b.Date + "|" + b.Time
			if slots[key] {
				return httperr.ErrBusiness("slot_taken")
			}
			slots[key] = true
			return nil
		},
	}
	uc := newCreateUC(repo)

	const writers = 16

	var (
		wg        sync.WaitGroup
		successes int32
		countMu   sync.Mutex
	)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Execute(context.Background(), validInput()); err == nil {
				countMu.Lock()
				successes++
				countMu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
}
