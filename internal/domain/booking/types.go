package booking

import "booking-engine/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// Occupying reports whether a booking in this status consumes its slot.
func (s Status) Occupying() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusNoShow || s == StatusCancelled
}

type Event string

const (
	EventConfirm  Event = "confirm"
	EventComplete Event = "complete"
	EventNoShow   Event = "no_show"
	EventCancel   Event = "cancel"
)

func (e Event) IsValid() bool {
	switch e {
	case EventConfirm, EventComplete, EventNoShow, EventCancel:
		return true
	default:
		return false
	}
}

// Transition applies the lifecycle table:
//
//	Pending            --confirm-->  Confirmed
//	Pending/Confirmed  --complete--> Completed
//	Pending/Confirmed  --no_show-->  NoShow
//	any non-terminal   --cancel-->   Cancelled
//
// Every pair outside the table returns ErrInvalidTransition and the caller's
// state must remain unchanged.
func Transition(from Status, ev Event) (Status, error) {
	switch ev {
	case EventConfirm:
		if from == StatusPending {
			return StatusConfirmed, nil
		}
	case EventComplete:
		if from == StatusPending || from == StatusConfirmed {
			return StatusCompleted, nil
		}
	case EventNoShow:
		if from == StatusPending || from == StatusConfirmed {
			return StatusNoShow, nil
		}
	case EventCancel:
		if !from.Terminal() {
			return StatusCancelled, nil
		}
	}
	return from, errs.ErrInvalidTransition
}

type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyEmergency Urgency = "emergency"
)

func (u Urgency) IsValid() bool {
	return u == UrgencyNormal || u == UrgencyEmergency
}

func (u Urgency) String() string {
	return string(u)
}
