package queries

import "context"

type SubscriberQueries interface {
	List(ctx context.Context) ([]*SubscriberView, error)
}

type subscriberQueriesImpl struct {
	store SubscriberReadStore
}

func NewSubscriberQueries(store SubscriberReadStore) SubscriberQueries {
	return &subscriberQueriesImpl{store: store}
}

func (q *subscriberQueriesImpl) List(ctx context.Context) ([]*SubscriberView, error) {
	return q.store.List(ctx)
}
