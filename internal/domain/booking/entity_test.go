//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, now time.Time, dayOffset int, slotLabel string) *booking.Booking {
	t.Helper()

	tmpl, err := schedule.NewTemplate(9, 20)
	require.NoError(t, err)
	slot, err := tmpl.Lookup(slotLabel)
	require.NoError(t, err)

	name, err := booking.NewName("Samir Khalil")
	require.NoError(t, err)
	phone, err := booking.NewPhone("+970599123456")
	require.NoError(t, err)
	service, err := booking.NewServiceType("Panoramic X-ray")
	require.NoError(t, err)

	date := now.AddDate(0, 0, dayOffset)
	b, err := booking.NewBooking(7001, name, phone, service, slot, date, booking.UrgencyNormal, now)
	require.NoError(t, err)
	return b
}

var entityNow = time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	b := newTestBooking(t, entityNow, 2, "3:00 PM")

	assert.Equal(t, int64(7001), b.CustomerID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, "Wednesday", b.Day())
	assert.Equal(t, time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC), b.AppointmentAt())
	assert.Nil(t, b.ReminderSentAt())
	assert.True(t, b.Occupying())
}

func TestNewBooking_PastSlotRejected(t *testing.T) {
	tmpl, err := schedule.NewTemplate(9, 20)
	require.NoError(t, err)
	slot, err := tmpl.Lookup("9:00 AM")
	require.NoError(t, err)

	name, _ := booking.NewName("Samir Khalil")
	phone, _ := booking.NewPhone("+970599123456")
	service, _ := booking.NewServiceType("CBCT")

	// 9:00 AM today is already behind a 10:15 clock.
	_, err = booking.NewBooking(7001, name, phone, service, slot, entityNow, booking.UrgencyNormal, entityNow)
	require.ErrorIs(t, err, errs.ErrSlotInPast)
}

func TestApply(t *testing.T) {
	b := newTestBooking(t, entityNow, 1, "9:00 AM")
	later := entityNow.Add(time.Minute)

	require.NoError(t, b.Apply(booking.EventConfirm, later))
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, later, b.UpdatedAt())

	err := b.Apply(booking.EventConfirm, later.Add(time.Minute))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, booking.StatusConfirmed, b.Status(), "rejected event must not mutate")
	assert.Equal(t, later, b.UpdatedAt())

	require.NoError(t, b.Apply(booking.EventComplete, later.Add(2*time.Minute)))
	assert.Equal(t, booking.StatusCompleted, b.Status())
	assert.False(t, b.Occupying())
}

func TestReminderDue(t *testing.T) {
	window := time.Hour

	b := newTestBooking(t, entityNow, 0, "12:00 PM") // appointment 12:00, now 10:15
	require.NoError(t, b.Apply(booking.EventConfirm, entityNow))

	assert.False(t, b.ReminderDue(entityNow, window), "outside window")

	inWindow := entityNow.Add(90 * time.Minute) // 11:45
	assert.True(t, b.ReminderDue(inWindow, window))

	b.MarkReminderSent(inWindow)
	assert.False(t, b.ReminderDue(inWindow, window), "already reminded")
	require.NotNil(t, b.ReminderSentAt())

	pending := newTestBooking(t, entityNow, 0, "12:00 PM")
	assert.False(t, pending.ReminderDue(inWindow, window), "pending bookings get no reminder")
}

func TestValueObjects(t *testing.T) {
	_, err := booking.NewName("   ")
	assert.ErrorIs(t, err, booking.ErrEmptyName)

	name, err := booking.NewName("  Maha  ")
	require.NoError(t, err)
	assert.Equal(t, "Maha", name.String())

	_, err = booking.NewPhone("12")
	assert.ErrorIs(t, err, booking.ErrInvalidPhone)
	_, err = booking.NewPhone("not-a-number")
	assert.ErrorIs(t, err, booking.ErrInvalidPhone)
	_, err = booking.NewPhone("+970 59-912-3456")
	assert.NoError(t, err)

	_, err = booking.NewServiceType("")
	assert.ErrorIs(t, err, booking.ErrEmptyService)

	assert.True(t, booking.UrgencyEmergency.IsValid())
	assert.False(t, booking.Urgency("asap").IsValid())
}
