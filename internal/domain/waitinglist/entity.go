package waitinglist

import (
	"time"

	"booking-engine/internal/domain/booking"
)

// Entry is one customer waiting for a slot that does not currently exist.
// Entries are served strictly FIFO by JoinedAt.
type Entry struct {
	customerID int64
	name       booking.Name
	phone      booking.Phone
	service    booking.ServiceType
	joinedAt   time.Time
}

func NewEntry(customerID int64, name booking.Name, phone booking.Phone, service booking.ServiceType, now time.Time) *Entry {
	return &Entry{
		customerID: customerID,
		name:       name,
		phone:      phone,
		service:    service,
		joinedAt:   now,
	}
}

func Reconstruct(customerID int64, name booking.Name, phone booking.Phone, service booking.ServiceType, joinedAt time.Time) *Entry {
	return &Entry{
		customerID: customerID,
		name:       name,
		phone:      phone,
		service:    service,
		joinedAt:   joinedAt,
	}
}

func (e *Entry) CustomerID() int64            { return e.customerID }
func (e *Entry) Name() booking.Name           { return e.name }
func (e *Entry) Phone() booking.Phone         { return e.phone }
func (e *Entry) Service() booking.ServiceType { return e.service }
func (e *Entry) JoinedAt() time.Time          { return e.joinedAt }
