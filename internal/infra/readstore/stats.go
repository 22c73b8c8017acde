package readstore

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(q db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: q}
}

func (r *StatsReadStore) Overview(ctx context.Context) (*queries.StatsView, error) {
	view := &queries.StatsView{
		ByStatus:  make(map[string]int64),
		ByService: make(map[string]int64),
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		view.ByStatus[status] = count
		view.TotalBookings += count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read status counts", err)
	}

	serviceRows, err := r.db.Query(ctx, `SELECT service, COUNT(*) FROM bookings GROUP BY service`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by service", err)
	}
	defer serviceRows.Close()
	for serviceRows.Next() {
		var service string
		var count int64
		if err := serviceRows.Scan(&service, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service count", err)
		}
		view.ByService[service] = count
	}
	if err := serviceRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service counts", err)
	}

	var avg pgtype.Float8
	err = r.db.QueryRow(ctx, `SELECT COUNT(*), AVG(stars) FROM ratings`).
		Scan(&view.RatingsCount, &avg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate ratings", err)
	}
	if avg.Valid {
		view.AverageStars = &avg.Float64
	}

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM waiting_list`).Scan(&view.WaitingCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count waiting list", err)
	}

	return view, nil
}
