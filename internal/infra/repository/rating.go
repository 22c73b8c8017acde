package repository

import (
	"context"

	"booking-engine/internal/domain/rating"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"
)

type RatingRepository struct{}

func NewRatingRepository() shared.RatingRepository {
	return &RatingRepository{}
}

const insertRatingSQL = `
INSERT INTO ratings (id, customer_id, booking_id, stars, feedback, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *RatingRepository) Insert(ctx context.Context, tx db.DBTX, rt *rating.Rating) error {
	_, err := tx.Exec(ctx, insertRatingSQL,
		pgconv.UUIDToPgtype(rt.ID()),
		rt.CustomerID(),
		pgconv.Int64PtrToPgtype(rt.BookingID()),
		rt.Stars().Value(),
		rt.Feedback().String(),
		pgconv.TimeToPgtype(rt.CreatedAt()),
	)
	if err != nil {
		return infra.ClassifyPgError("failed to insert rating", err)
	}
	return nil
}
