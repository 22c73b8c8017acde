package readstore

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RatingReadStore struct {
	db db.DBTX
}

func NewRatingReadStore(q db.DBTX) *RatingReadStore {
	return &RatingReadStore{db: q}
}

const listRatingsSQL = `
SELECT r.id, r.customer_id, r.booking_id, b.customer_name, r.stars, r.feedback, r.created_at
FROM ratings r
LEFT JOIN bookings b ON b.id = r.booking_id
ORDER BY r.created_at DESC`

func (r *RatingReadStore) ListNewestFirst(ctx context.Context) ([]*queries.RatingView, error) {
	rows, err := r.db.Query(ctx, listRatingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings", err)
	}
	defer rows.Close()

	var views []*queries.RatingView
	for rows.Next() {
		var (
			view      queries.RatingView
			bookingID pgtype.Int8
			name      pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.CustomerID, &bookingID, &name,
			&view.Stars, &view.Feedback, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating view", err)
		}
		view.BookingID = pgconv.Int64PtrFromPgtype(bookingID)
		if name.Valid {
			view.CustomerName = &name.String
		}
		view.CreatedAt = createdAt.Time
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ratings", err)
	}
	return views, nil
}
