package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is the status of a freshly submitted booking. There is no
// pending-approval step: a booking that passes the conflict check is
// confirmed immediately.
func InitialStatus() Status {
	return StatusConfirmed
}
