package booking

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsActive reports whether the booking still blocks a new booking for the
// same client and service.
func (s Status) IsActive() bool {
	return !s.IsTerminal()
}

// CanTransitionTo encodes the allowed status graph:
//
//	Pending   -> Approved | Confirmed | Cancelled
//	Approved  -> Confirmed | Cancelled
//	Confirmed -> Completed | Cancelled
//
// Pending->Confirmed is the provider's direct-accept path; Confirmed->Cancelled
// is a client cancelling an already paid booking.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusConfirmed || next == StatusCancelled
	case StatusApproved:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
