package repository

import (
	"context"
	"math"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

type LoyaltyWriteQueries interface {
	AddLoyaltyPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.AddLoyaltyPointsParams) (int32, error)
	RevokeLoyaltyPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.RevokeLoyaltyPointsParams) (int32, error)
}

type LoyaltyRepository struct {
	queries LoyaltyWriteQueries
	db      sqlc.DBTX
}

func NewLoyaltyRepository(queries LoyaltyWriteQueries, db sqlc.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LoyaltyRepository) AddPoints(ctx context.Context, guest string, points int, at time.Time) (int, error) {
	balance, err := r.queries.AddLoyaltyPoints(ctx, r.db, sqlc.AddLoyaltyPointsParams{
		GuestIdentity: guest,
		Points:        clampInt32(points),
		UpdatedAt:     pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add loyalty points", err)
	}
	return int(balance), nil
}

// RevokePoints is a no-op for guests without an account.
func (r *LoyaltyRepository) RevokePoints(ctx context.Context, guest string, points int, at time.Time) (int, error) {
	balance, err := r.queries.RevokeLoyaltyPoints(ctx, r.db, sqlc.RevokeLoyaltyPointsParams{
		Points:        clampInt32(points),
		UpdatedAt:     pgconv.TimeToPgtype(at),
		GuestIdentity: guest,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to revoke loyalty points", err)
	}
	return int(balance), nil
}

func clampInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}
