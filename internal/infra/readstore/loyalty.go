package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type LoyaltyViewQueries interface {
	GetLoyaltyAccount(ctx context.Context, db sqlc.DBTX, guestIdentity string) (sqlc.LoyaltyAccounts, error)
}

type LoyaltyReadStore struct {
	queries LoyaltyViewQueries
	db      sqlc.DBTX
}

func NewLoyaltyReadStore(queries LoyaltyViewQueries, db sqlc.DBTX) *LoyaltyReadStore {
	return &LoyaltyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LoyaltyReadStore) FindByGuest(ctx context.Context, guest string) (*queries.LoyaltyAccountView, error) {
	row, err := r.queries.GetLoyaltyAccount(ctx, r.db, guest)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get loyalty account", err)
	}

	updatedAt := pgconv.TimeFromPgtype(row.UpdatedAt)
	return &queries.LoyaltyAccountView{
		Guest:     row.GuestIdentity,
		Points:    int(row.Points),
		UpdatedAt: &updatedAt,
	}, nil
}
