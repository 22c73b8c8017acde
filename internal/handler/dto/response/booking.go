package response

import (
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
)

type BookingResponse struct {
	CustomerID    int64  `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	Day           string `json:"day"`
	SlotTime      string `json:"slot_time"`
	ScheduledDate string `json:"scheduled_date"`
	Urgency       string `json:"urgency"`
	Status        string `json:"status"`
	AppointmentAt int64  `json:"appointment_at"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		CustomerID:    v.CustomerID,
		CustomerName:  v.CustomerName,
		Phone:         v.Phone,
		Service:       v.Service,
		Day:           v.Day,
		SlotTime:      v.SlotTime,
		ScheduledDate: v.ScheduledDate.Format("2006-01-02"),
		Urgency:       v.Urgency,
		Status:        v.Status,
		AppointmentAt: v.AppointmentAt.Unix(),
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type ReserveResponse struct {
	Replaced      bool   `json:"replaced"`
	AppointmentAt string `json:"appointment_at"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		Replaced:      r.Replaced,
		AppointmentAt: r.AppointmentAt,
	}
}
