package booking

import (
	"time"

	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

// Swedish weekday names, indexed by time.Weekday (Sunday = 0).
// Stylist availability days are stored with these names.
var weekdayNames = [7]string{
	"söndag",
	"måndag",
	"tisdag",
	"onsdag",
	"torsdag",
	"fredag",
	"lördag",
}

func DayName(d time.Weekday) string {
	return weekdayNames[d]
}

// IsDayAvailable reports whether the stylist takes bookings on the weekday
// of the given date.
func IsDayAvailable(st *models.Stylist, date time.Time) bool {
	name := DayName(date.Weekday())
	for _, d := range st.Availability.Days {
		if d == name {
			return true
		}
	}
	return false
}

// ListSlots returns the stylist's bookable slot start times. The hour list
// is day-invariant: every available day offers the same slots.
func ListSlots(st *models.Stylist) []string {
	return st.Availability.Hours
}

// HasSlot reports whether hm is one of the stylist's slot start times.
func HasSlot(st *models.Stylist, hm string) bool {
	for _, h := range st.Availability.Hours {
		if h == hm {
			return true
		}
	}
	return false
}

// IsSlotTaken reports whether an existing booking occupies the
// (stylist, date, time) slot. Cancelled bookings occupy their slot too,
// unless freeCancelled is set.
func IsSlotTaken(bookings []models.Booking, stylistID, date, hm string, freeCancelled bool) bool {
	for _, b := range bookings {
		if b.StylistID != stylistID || b.Date != date || b.Time != hm {
			continue
		}
		if freeCancelled && Status(b.Status) == StatusCancelled {
			continue
		}
		return true
	}
	return false
}
