package repository

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/waitinglist"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type WaitingListRepository struct{}

func NewWaitingListRepository() shared.WaitingListRepository {
	return &WaitingListRepository{}
}

const upsertWaitingEntrySQL = `
INSERT INTO waiting_list (customer_id, customer_name, phone, service, joined_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (customer_id) DO UPDATE
SET customer_name = EXCLUDED.customer_name,
    phone         = EXCLUDED.phone,
    service       = EXCLUDED.service,
    joined_at     = EXCLUDED.joined_at`

// Upsert re-joining an already queued customer refreshes their details and
// sends them to the back of the queue.
func (r *WaitingListRepository) Upsert(ctx context.Context, tx db.DBTX, e *waitinglist.Entry) error {
	_, err := tx.Exec(ctx, upsertWaitingEntrySQL,
		e.CustomerID(),
		e.Name().String(),
		e.Phone().String(),
		e.Service().String(),
		pgconv.TimeToPgtype(e.JoinedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert waiting list entry", err)
	}
	return nil
}

func (r *WaitingListRepository) Delete(ctx context.Context, tx db.DBTX, customerID int64) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM waiting_list WHERE customer_id = $1`, customerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete waiting list entry", err)
	}
	return tag.RowsAffected() > 0, nil
}

const listWaitingSQL = `
SELECT customer_id, customer_name, phone, service, joined_at
FROM waiting_list
ORDER BY joined_at, customer_id`

func (r *WaitingListRepository) ListOldestFirst(ctx context.Context, tx db.DBTX) ([]*waitinglist.Entry, error) {
	rows, err := tx.Query(ctx, listWaitingSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waiting list", err)
	}
	defer rows.Close()

	var entries []*waitinglist.Entry
	for rows.Next() {
		var (
			customerID int64
			name       string
			phone      string
			service    string
			joinedAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&customerID, &name, &phone, &service, &joinedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waiting list entry", err)
		}
		entries = append(entries, waitinglist.Reconstruct(
			customerID,
			booking.ReconstructName(name),
			booking.ReconstructPhone(phone),
			booking.ReconstructServiceType(service),
			joinedAt.Time,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read waiting list", err)
	}
	return entries, nil
}
