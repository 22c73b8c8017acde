package rating

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one customer's verdict on one completed booking. Immutable once
// created; bookingID is a weak reference that survives booking deletion.
type Rating struct {
	id         uuid.UUID
	customerID int64
	bookingID  *int64
	stars      Stars
	feedback   Feedback
	createdAt  time.Time
}

func NewRating(id uuid.UUID, customerID int64, bookingID *int64, starsValue int, feedbackText string, now time.Time) (*Rating, error) {
	stars, err := NewStars(starsValue)
	if err != nil {
		return nil, err
	}

	feedback, err := NewFeedback(feedbackText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Rating{
		id:         id,
		customerID: customerID,
		bookingID:  bookingID,
		stars:      stars,
		feedback:   feedback,
		createdAt:  now,
	}, nil
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) CustomerID() int64    { return r.customerID }
func (r *Rating) BookingID() *int64    { return r.bookingID }
func (r *Rating) Stars() Stars         { return r.stars }
func (r *Rating) Feedback() Feedback   { return r.feedback }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
