package response

import (
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
)

type RatingResponse struct {
	ID           string  `json:"id"`
	CustomerID   int64   `json:"customer_id"`
	BookingID    *int64  `json:"booking_id,omitempty"`
	CustomerName *string `json:"customer_name,omitempty"`
	Stars        int     `json:"stars"`
	Feedback     string  `json:"feedback,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

func FromRatingList(views []*queries.RatingView) []*RatingResponse {
	res := make([]*RatingResponse, len(views))
	for i, v := range views {
		res[i] = &RatingResponse{
			ID:           v.ID.String(),
			CustomerID:   v.CustomerID,
			BookingID:    v.BookingID,
			CustomerName: v.CustomerName,
			Stars:        v.Stars,
			Feedback:     v.Feedback,
			CreatedAt:    v.CreatedAt.Unix(),
		}
	}
	return res
}

type RateResponse struct {
	RatingID      string `json:"rating_id"`
	FeedbackAsked bool   `json:"feedback_asked"`
}

func FromRateResult(r *commands.RateResult) *RateResponse {
	return &RateResponse{
		RatingID:      r.RatingID.String(),
		FeedbackAsked: r.FeedbackAsked,
	}
}
