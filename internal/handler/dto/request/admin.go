package request

type ApplyEventRequest struct {
	Event string `json:"event" binding:"required,oneof=confirm complete no_show cancel"`
}
