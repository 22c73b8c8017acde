package booking

import (
	"time"

	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/pkg/errs"
)

// Booking is the single active appointment of one customer. Identity is the
// opaque numeric customer id; the engine never holds more than one occupying
// booking per customer.
type Booking struct {
	customerID     int64
	name           Name
	phone          Phone
	service        ServiceType
	day            string
	slot           schedule.Slot
	scheduledDate  time.Time
	urgency        Urgency
	status         Status
	appointmentAt  time.Time
	reminderSentAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBooking(
	customerID int64,
	name Name,
	phone Phone,
	service ServiceType,
	slot schedule.Slot,
	scheduledDate time.Time,
	urgency Urgency,
	now time.Time,
) (*Booking, error) {
	appointmentAt := slot.Instant(scheduledDate)
	if !appointmentAt.After(now) {
		return nil, errs.ErrSlotInPast
	}

	return &Booking{
		customerID:    customerID,
		name:          name,
		phone:         phone,
		service:       service,
		day:           scheduledDate.Weekday().String(),
		slot:          slot,
		scheduledDate: scheduledDate,
		urgency:       urgency,
		status:        StatusPending,
		appointmentAt: appointmentAt,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a persisted booking without re-running creation
// validation.
func Reconstruct(
	customerID int64,
	name Name,
	phone Phone,
	service ServiceType,
	day string,
	slot schedule.Slot,
	scheduledDate time.Time,
	urgency Urgency,
	status Status,
	appointmentAt time.Time,
	reminderSentAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		customerID:     customerID,
		name:           name,
		phone:          phone,
		service:        service,
		day:            day,
		slot:           slot,
		scheduledDate:  scheduledDate,
		urgency:        urgency,
		status:         status,
		appointmentAt:  appointmentAt,
		reminderSentAt: reminderSentAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Apply runs one lifecycle event against the booking, mutating status and
// updatedAt only when the transition table permits it.
func (b *Booking) Apply(ev Event, now time.Time) error {
	next, err := Transition(b.status, ev)
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Occupying() bool {
	return b.status.Occupying()
}

// ReminderDue reports whether the booking enters the reminder window
// (now, now+window] and has not been reminded yet.
func (b *Booking) ReminderDue(now time.Time, window time.Duration) bool {
	if b.status != StatusConfirmed || b.reminderSentAt != nil {
		return false
	}
	return b.appointmentAt.After(now) && !b.appointmentAt.After(now.Add(window))
}

func (b *Booking) MarkReminderSent(now time.Time) {
	b.reminderSentAt = &now
	b.updatedAt = now
}

func (b *Booking) CustomerID() int64         { return b.customerID }
func (b *Booking) Name() Name                { return b.name }
func (b *Booking) Phone() Phone              { return b.phone }
func (b *Booking) Service() ServiceType      { return b.service }
func (b *Booking) Day() string               { return b.day }
func (b *Booking) Slot() schedule.Slot       { return b.slot }
func (b *Booking) ScheduledDate() time.Time  { return b.scheduledDate }
func (b *Booking) Urgency() Urgency          { return b.urgency }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) AppointmentAt() time.Time  { return b.appointmentAt }
func (b *Booking) ReminderSentAt() *time.Time { return b.reminderSentAt }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
