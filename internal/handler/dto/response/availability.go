package response

import "booking-engine/internal/usecase/queries"

type OpenDayResponse struct {
	Day   string   `json:"day"`
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

func FromOpenDays(days []*queries.OpenDayView) []*OpenDayResponse {
	res := make([]*OpenDayResponse, len(days))
	for i, d := range days {
		res[i] = &OpenDayResponse{
			Day:   d.Day,
			Date:  d.Date.Format("2006-01-02"),
			Slots: d.Slots,
		}
	}
	return res
}
