package response

import "booking-engine/internal/usecase/queries"

type StatsResponse struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByService     map[string]int64 `json:"by_service"`
	RatingsCount  int64            `json:"ratings_count"`
	AverageStars  *float64         `json:"average_stars,omitempty"`
	WaitingCount  int64            `json:"waiting_count"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		TotalBookings: v.TotalBookings,
		ByStatus:      v.ByStatus,
		ByService:     v.ByService,
		RatingsCount:  v.RatingsCount,
		AverageStars:  v.AverageStars,
		WaitingCount:  v.WaitingCount,
	}
}

type WaitingEntryResponse struct {
	Position     int    `json:"position"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Service      string `json:"service"`
	JoinedAt     int64  `json:"joined_at"`
}

func FromWaitingList(views []*queries.WaitingEntryView) []*WaitingEntryResponse {
	res := make([]*WaitingEntryResponse, len(views))
	for i, v := range views {
		res[i] = &WaitingEntryResponse{
			Position:     v.Position,
			CustomerID:   v.CustomerID,
			CustomerName: v.CustomerName,
			Phone:        v.Phone,
			Service:      v.Service,
			JoinedAt:     v.JoinedAt.Unix(),
		}
	}
	return res
}
