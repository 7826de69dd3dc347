package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type PromotionViewQueries interface {
	ListPromotions(ctx context.Context, db sqlc.DBTX) ([]sqlc.Promotions, error)
}

type PromotionReadStore struct {
	queries PromotionViewQueries
	db      sqlc.DBTX
}

func NewPromotionReadStore(queries PromotionViewQueries, db sqlc.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PromotionReadStore) List(ctx context.Context) ([]*queries.PromotionView, error) {
	rows, err := r.queries.ListPromotions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}

	views := make([]*queries.PromotionView, len(rows))
	for i, row := range rows {
		views[i] = &queries.PromotionView{
			ID:              row.ID,
			Kind:            row.Kind,
			Date:            pgconv.DateFromPgtype(row.TargetDate),
			Description:     row.Description,
			DiscountPercent: int(row.DiscountPercent),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
