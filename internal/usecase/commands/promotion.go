package commands

import (
	"context"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LaunchPromotionResult struct {
	Day           time.Time
	TotalRooms    int
	OccupiedRooms int
	Rate          float64
	// Launched is false when occupancy is high enough that no discount is needed.
	Launched        bool
	PromotionID     uuid.UUID
	Description     string
	DiscountPercent int
}

type PromotionCommands interface {
	// LaunchLowOccupancy starts a discount for the night of day (YYYY-MM-DD,
	// empty for today) when fewer than half of the rooms are booked.
	LaunchLowOccupancy(ctx context.Context, day string) (*LaunchPromotionResult, error)
}

type promotionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromotionUseCase(uow shared.UnitOfWork, clk clock.Clock) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *promotionUseCaseImpl) LaunchLowOccupancy(ctx context.Context, day string) (*LaunchPromotionResult, error) {
	now := uc.clock.Now()
	d, err := campaign.ParseDay(day, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDay)
	}

	var result *LaunchPromotionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		occ, derr := tx.Reads().Occupancy(ctx, d)
		if derr != nil {
			return derr
		}
		result = &LaunchPromotionResult{
			Day:           d,
			TotalRooms:    occ.TotalRooms,
			OccupiedRooms: occ.OccupiedRooms,
			Rate:          occ.Rate(),
		}
		if !occ.NeedsPromotion() {
			return nil
		}

		p := campaign.NewLowOccupancyPromotion(d, now)
		if derr = tx.Promotions().Create(ctx, p); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrPromotionAlreadyActive)
			}
			return derr
		}

		result.Launched = true
		result.PromotionID = p.ID()
		result.Description = p.Description()
		result.DiscountPercent = p.DiscountPercent()

		return enqueueNotification(ctx, tx, topicPromotionLaunched, map[string]any{
			"promotion_id":     p.ID(),
			"date":             d.Format(campaign.DayLayout),
			"discount_percent": p.DiscountPercent(),
			"occupancy_rate":   occ.Rate(),
		}, now)
	})
	if err != nil {
		return nil, markStorageFailure(markKind(err, infra.KindDuplicateKey, errs.ErrPromotionAlreadyActive))
	}
	return result, nil
}
