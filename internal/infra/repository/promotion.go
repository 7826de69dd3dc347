package repository

import (
	"context"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

type PromotionWriteQueries interface {
	CreatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromotionParams) error
}

type PromotionRepository struct {
	queries PromotionWriteQueries
	db      sqlc.DBTX
}

func NewPromotionRepository(queries PromotionWriteQueries, db sqlc.DBTX) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on promotions_kind_target_date_key for one promotion per kind and night.
func (r *PromotionRepository) Create(ctx context.Context, p *campaign.Promotion) error {
	err := r.queries.CreatePromotion(ctx, r.db, sqlc.CreatePromotionParams{
		ID:              p.ID(),
		Kind:            p.Kind(),
		TargetDate:      pgconv.DateToPgtype(p.Day()),
		Description:     p.Description(),
		DiscountPercent: int32(p.DiscountPercent()), // #nosec G115 -- percent is 1..100
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}
