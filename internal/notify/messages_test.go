//go:build unit

package notify_test

import (
	"testing"
	"time"

	"booking-engine/internal/notify"

	"github.com/stretchr/testify/assert"
)

func sampleDetails(emergency bool) notify.BookingDetails {
	return notify.BookingDetails{
		Recipient:   "+970590000001",
		Name:        "Lina",
		Service:     "haircut",
		Day:         "Monday",
		SlotTime:    "10:00 AM",
		Appointment: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Emergency:   emergency,
	}
}

func TestOperatorNewBooking_EmergencySubject(t *testing.T) {
	normal := notify.OperatorNewBooking("ops@example.com", sampleDetails(false))
	assert.Equal(t, "New booking", normal.Subject)

	urgent := notify.OperatorNewBooking("ops@example.com", sampleDetails(true))
	assert.Equal(t, "EMERGENCY booking", urgent.Subject)
	assert.Equal(t, "ops@example.com", urgent.Recipient)
}

func TestRatingThanks_AsksForFeedbackOnlyWhenTold(t *testing.T) {
	plain := notify.RatingThanks("+970590000001", "Lina", 5, false)
	assert.Contains(t, plain.Body, "5-star")
	assert.NotContains(t, plain.Body, "what went wrong")

	asking := notify.RatingThanks("+970590000001", "Lina", 2, true)
	assert.Contains(t, asking.Body, "2-star")
	assert.Contains(t, asking.Body, "what went wrong")
}

func TestSlotsFreed_ListsAllGivenLabels(t *testing.T) {
	n := notify.SlotsFreed("+970590000001", "Omar", []string{"Monday 10:00 AM", "Monday 2:00 PM"})

	assert.Equal(t, "A slot opened up", n.Subject)
	assert.Contains(t, n.Body, "Monday 10:00 AM, Monday 2:00 PM")
}

func TestBookingConfirmed_FormatsAppointment(t *testing.T) {
	n := notify.BookingConfirmed(sampleDetails(false))
	assert.Contains(t, n.Body, "Monday, Mar 10 at 10:00 AM")
}
