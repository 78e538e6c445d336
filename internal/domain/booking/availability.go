package booking

import "github.com/WoolleyCutzz/salon-booking/internal/models"

type Slot struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// DaySlots renders every slot of the stylist for one date with its taken
// flag, computed against the bookings passed in. Callers must fetch the
// bookings fresh from the store for every render; the result must not be
// cached across a subsequent submission.
func DaySlots(st *models.Stylist, bookings []models.Booking, date string, freeCancelled bool) []Slot {
	slots := make([]Slot, 0, len(st.Availability.Hours))
	for _, hm := range st.Availability.Hours {
		slots = append(slots, Slot{
			Time:  hm,
			Taken: IsSlotTaken(bookings, st.ID, date, hm, freeCancelled),
		})
	}
	return slots
}
