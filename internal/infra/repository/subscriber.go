package repository

import (
	"context"

	"hotel-booking/internal/domain/subscriber"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

type SubscriberWriteQueries interface {
	CreateSubscriber(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubscriberParams) error
	DeleteSubscriberByEmail(ctx context.Context, db sqlc.DBTX, email string) (int64, error)
}

type SubscriberRepository struct {
	queries SubscriberWriteQueries
	db      sqlc.DBTX
}

func NewSubscriberRepository(queries SubscriberWriteQueries, db sqlc.DBTX) *SubscriberRepository {
	return &SubscriberRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *subscriber.Subscriber) error {
	err := r.queries.CreateSubscriber(ctx, r.db, sqlc.CreateSubscriberParams{
		ID:        s.ID(),
		Email:     s.Email().String(),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create subscriber", err)
	}
	return nil
}

func (r *SubscriberRepository) DeleteByEmail(ctx context.Context, email string) error {
	n, err := r.queries.DeleteSubscriberByEmail(ctx, r.db, email)
	if err != nil {
		return infra.WrapRepoErr("failed to delete subscriber", err)
	}
	if n == 0 {
		return infra.NewNotFound("subscriber not found")
	}
	return nil
}
