package notify

import (
	"fmt"
	"strings"
	"time"
)

const appointmentTimeLayout = "Monday, Jan 2 at 3:04 PM"

type BookingDetails struct {
	Recipient   string
	Name        string
	Service     string
	Day         string
	SlotTime    string
	Appointment time.Time
	Emergency   bool
}

func BookingReceived(d BookingDetails) Notification {
	return Notification{
		Recipient: d.Recipient,
		Subject:   "Booking received",
		Body: fmt.Sprintf("Hi %s, we received your %s booking for %s %s. We will confirm it shortly.",
			d.Name, d.Service, d.Day, d.SlotTime),
	}
}

func BookingConfirmed(d BookingDetails) Notification {
	return Notification{
		Recipient: d.Recipient,
		Subject:   "Booking confirmed",
		Body: fmt.Sprintf("Hi %s, your %s appointment is confirmed for %s.",
			d.Name, d.Service, d.Appointment.Format(appointmentTimeLayout)),
	}
}

func BookingCancelled(d BookingDetails) Notification {
	return Notification{
		Recipient: d.Recipient,
		Subject:   "Booking cancelled",
		Body: fmt.Sprintf("Hi %s, your %s appointment for %s %s has been cancelled.",
			d.Name, d.Service, d.Day, d.SlotTime),
	}
}

func AppointmentReminder(d BookingDetails) Notification {
	return Notification{
		Recipient: d.Recipient,
		Subject:   "Appointment reminder",
		Body: fmt.Sprintf("Hi %s, a reminder that your %s appointment is coming up at %s.",
			d.Name, d.Service, d.Appointment.Format("3:04 PM")),
	}
}

func RatingPrompt(d BookingDetails) Notification {
	return Notification{
		Recipient: d.Recipient,
		Subject:   "How did we do?",
		Body: fmt.Sprintf("Hi %s, thanks for visiting us. Please rate your %s appointment from 1 to 5 stars.",
			d.Name, d.Service),
	}
}

func RatingThanks(recipient, name string, stars int, askFeedback bool) Notification {
	body := fmt.Sprintf("Hi %s, thank you for your %d-star rating.", name, stars)
	if askFeedback {
		body += " We are sorry we fell short. Could you tell us what went wrong so we can do better?"
	}
	return Notification{
		Recipient: recipient,
		Subject:   "Thanks for your rating",
		Body:      body,
	}
}

// SlotsFreed tells a waiting customer which slots opened up. Only the first
// few labels are named so the message stays short.
func SlotsFreed(recipient, name string, slots []string) Notification {
	return Notification{
		Recipient: recipient,
		Subject:   "A slot opened up",
		Body: fmt.Sprintf("Hi %s, good news: the following slots just became available: %s. Book now before they are taken.",
			name, strings.Join(slots, ", ")),
	}
}

func WeatherAlert(recipient, name, advisory string, appointment time.Time) Notification {
	return Notification{
		Recipient: recipient,
		Subject:   "Weather advisory for your appointment",
		Body: fmt.Sprintf("Hi %s, heads up for your appointment on %s: %s.",
			name, appointment.Format(appointmentTimeLayout), advisory),
	}
}

// Operator-facing messages.

func OperatorNewBooking(recipient string, d BookingDetails) Notification {
	subject := "New booking"
	if d.Emergency {
		subject = "EMERGENCY booking"
	}
	return Notification{
		Recipient: recipient,
		Subject:   subject,
		Body: fmt.Sprintf("%s booked %s for %s %s.",
			d.Name, d.Service, d.Day, d.SlotTime),
	}
}

func OperatorNewRating(recipient, customerName string, stars int, feedback string) Notification {
	body := fmt.Sprintf("%s left a %d-star rating.", customerName, stars)
	if feedback != "" {
		body += " Feedback: " + feedback
	}
	return Notification{
		Recipient: recipient,
		Subject:   "New rating",
		Body:      body,
	}
}
