package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

func TestSummarize(t *testing.T) {
	bookings := []models.Booking{
		{Status: "confirmed"},
		{Status: "confirmed"},
		{Status: "pending"},
		{Status: "cancelled"},
	}

	s := Summarize(bookings)

	assert.Equal(t, Summary{Total: 4, Confirmed: 2, Pending: 1, Cancelled: 1}, s)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, Status("pending").Valid())
	assert.True(t, Status("confirmed").Valid())
	assert.True(t, Status("cancelled").Valid())
	assert.False(t, Status("scheduled").Valid())
	assert.False(t, Status("").Valid())
}
