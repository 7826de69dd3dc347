package queries

import (
	"context"
	"strings"

	"hotel-booking/internal/domain/loyalty"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

type LoyaltyQueries interface {
	GetAccount(ctx context.Context, guest string) (*LoyaltyAccountView, error)
}

type loyaltyQueriesImpl struct {
	store LoyaltyReadStore
}

func NewLoyaltyQueries(store LoyaltyReadStore) LoyaltyQueries {
	return &loyaltyQueriesImpl{store: store}
}

// GetAccount reports a zero balance for guests who never booked.
func (q *loyaltyQueriesImpl) GetAccount(ctx context.Context, guest string) (*LoyaltyAccountView, error) {
	guest = strings.TrimSpace(guest)
	if guest == "" {
		return nil, errs.ErrInvalidGuest
	}

	acct, err := q.store.FindByGuest(ctx, guest)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		acct = &LoyaltyAccountView{Guest: guest}
	}

	promo := loyalty.PromotionFor(acct.Points)
	acct.Tier = promo.Tier.String()
	acct.PercentOff = promo.PercentOff
	return acct, nil
}
