package request

import "booking-engine/internal/usecase/commands"

type CreateBookingRequest struct {
	CustomerID int64  `json:"customer_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"required"`
	Service    string `json:"service" binding:"required"`
	Day        string `json:"day" binding:"required"`
	SlotTime   string `json:"slot_time" binding:"required"`
	Urgency    string `json:"urgency" binding:"omitempty,oneof=normal emergency"`
}

func (r *CreateBookingRequest) ToCommand() commands.ReserveRequest {
	return commands.ReserveRequest{
		CustomerID: r.CustomerID,
		Name:       r.Name,
		Phone:      r.Phone,
		Service:    r.Service,
		Day:        r.Day,
		SlotTime:   r.SlotTime,
		Urgency:    r.Urgency,
	}
}
