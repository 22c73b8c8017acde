package readstore

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type WaitingListReadStore struct {
	db db.DBTX
}

func NewWaitingListReadStore(q db.DBTX) *WaitingListReadStore {
	return &WaitingListReadStore{db: q}
}

func (r *WaitingListReadStore) List(ctx context.Context) ([]*queries.WaitingEntryView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT customer_id, customer_name, phone, service, joined_at
		 FROM waiting_list ORDER BY joined_at, customer_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waiting list", err)
	}
	defer rows.Close()

	var views []*queries.WaitingEntryView
	for rows.Next() {
		var (
			view     queries.WaitingEntryView
			joinedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.CustomerID, &view.CustomerName, &view.Phone,
			&view.Service, &joinedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waiting list entry", err)
		}
		view.JoinedAt = joinedAt.Time
		view.Position = len(views) + 1
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read waiting list", err)
	}
	return views, nil
}
