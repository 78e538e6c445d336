package booking

import "github.com/WoolleyCutzz/salon-booking/internal/models"

type Summary struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

// Summarize is a pure projection of the booking list into per-status counts.
func Summarize(bookings []models.Booking) Summary {
	s := Summary{Total: len(bookings)}
	for _, b := range bookings {
		switch Status(b.Status) {
		case StatusConfirmed:
			s.Confirmed++
		case StatusPending:
			s.Pending++
		case StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
