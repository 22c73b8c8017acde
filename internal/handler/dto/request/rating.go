package request

import "booking-engine/internal/usecase/commands"

type CreateRatingRequest struct {
	CustomerID int64  `json:"customer_id" binding:"required"`
	Stars      int    `json:"stars" binding:"required,min=1,max=5"`
	Feedback   string `json:"feedback" binding:"omitempty,max=1000"`
}

func (r *CreateRatingRequest) ToCommand() commands.RateRequest {
	return commands.RateRequest{
		CustomerID: r.CustomerID,
		Stars:      r.Stars,
		Feedback:   r.Feedback,
	}
}
