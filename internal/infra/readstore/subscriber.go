package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type SubscriberViewQueries interface {
	GetSubscriberByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Subscribers, error)
	ListSubscribers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Subscribers, error)
}

type SubscriberReadStore struct {
	queries SubscriberViewQueries
	db      sqlc.DBTX
}

func NewSubscriberReadStore(queries SubscriberViewQueries, db sqlc.DBTX) *SubscriberReadStore {
	return &SubscriberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriberReadStore) FindByEmail(ctx context.Context, email string) (*queries.SubscriberView, error) {
	row, err := r.queries.GetSubscriberByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscriber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscriber by email", err)
	}
	return toSubscriberView(row), nil
}

func (r *SubscriberReadStore) List(ctx context.Context) ([]*queries.SubscriberView, error) {
	rows, err := r.queries.ListSubscribers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers", err)
	}

	views := make([]*queries.SubscriberView, len(rows))
	for i, row := range rows {
		views[i] = toSubscriberView(row)
	}
	return views, nil
}

func toSubscriberView(row sqlc.Subscribers) *queries.SubscriberView {
	return &queries.SubscriberView{
		ID:        row.ID,
		Email:     row.Email,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
