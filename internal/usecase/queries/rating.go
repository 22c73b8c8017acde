package queries

import "context"

type RatingReadStore interface {
	ListNewestFirst(ctx context.Context) ([]*RatingView, error)
}

type RatingQueries interface {
	List(ctx context.Context) ([]*RatingView, error)
}

type ratingQueriesImpl struct {
	store RatingReadStore
}

func NewRatingQueries(store RatingReadStore) RatingQueries {
	return &ratingQueriesImpl{store: store}
}

func (q *ratingQueriesImpl) List(ctx context.Context) ([]*RatingView, error) {
	return q.store.ListNewestFirst(ctx)
}
