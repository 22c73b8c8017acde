package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	CustomerID     int64      `json:"customer_id"`
	CustomerName   string     `json:"customer_name"`
	Phone          string     `json:"phone"`
	Service        string     `json:"service"`
	Day            string     `json:"day"`
	SlotTime       string     `json:"slot_time"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	Urgency        string     `json:"urgency"`
	Status         string     `json:"status"`
	AppointmentAt  time.Time  `json:"appointment_at"`
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// OpenDayView is one open day with its remaining free slot labels, in daily
// order.
type OpenDayView struct {
	Day   string    `json:"day"`
	Date  time.Time `json:"date"`
	Slots []string  `json:"slots"`
}

// RatingView represents read-optimized rating data
type RatingView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	BookingID    *int64    `json:"booking_id,omitempty"`
	CustomerName *string   `json:"customer_name,omitempty"`
	Stars        int       `json:"stars"`
	Feedback     string    `json:"feedback,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// WaitingEntryView represents one queued customer with their FIFO position
type WaitingEntryView struct {
	Position     int       `json:"position"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Service      string    `json:"service"`
	JoinedAt     time.Time `json:"joined_at"`
}

// StatsView aggregates bookings and ratings for the operator dashboard
type StatsView struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByService     map[string]int64 `json:"by_service"`
	RatingsCount  int64            `json:"ratings_count"`
	AverageStars  *float64         `json:"average_stars,omitempty"`
	WaitingCount  int64            `json:"waiting_count"`
}
