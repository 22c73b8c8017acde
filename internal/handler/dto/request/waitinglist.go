package request

import "booking-engine/internal/usecase/commands"

type JoinWaitingListRequest struct {
	CustomerID int64  `json:"customer_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"required"`
	Service    string `json:"service" binding:"required"`
}

func (r *JoinWaitingListRequest) ToCommand() commands.JoinWaitingListRequest {
	return commands.JoinWaitingListRequest{
		CustomerID: r.CustomerID,
		Name:       r.Name,
		Phone:      r.Phone,
		Service:    r.Service,
	}
}
