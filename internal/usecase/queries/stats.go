package queries

import "context"

type StatsReadStore interface {
	Overview(ctx context.Context) (*StatsView, error)
}

type WaitingListReadStore interface {
	List(ctx context.Context) ([]*WaitingEntryView, error)
}

type AdminQueries interface {
	Stats(ctx context.Context) (*StatsView, error)
	WaitingList(ctx context.Context) ([]*WaitingEntryView, error)
}

type adminQueriesImpl struct {
	stats   StatsReadStore
	waiting WaitingListReadStore
}

func NewAdminQueries(stats StatsReadStore, waiting WaitingListReadStore) AdminQueries {
	return &adminQueriesImpl{stats: stats, waiting: waiting}
}

func (q *adminQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	return q.stats.Overview(ctx)
}

func (q *adminQueriesImpl) WaitingList(ctx context.Context) ([]*WaitingEntryView, error) {
	return q.waiting.List(ctx)
}
