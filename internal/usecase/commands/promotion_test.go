//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PromotionCommandsTestSuite struct {
	suite.Suite
	ctx        context.Context
	store      *memstore.Store
	clock      *clock.MockClock
	booking    commands.BookingCommands
	promotions commands.PromotionCommands
	roomIDs    []uuid.UUID
}

func (s *PromotionCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	rooms := commands.NewRoomUseCase(s.store, s.clock)
	s.booking = commands.NewBookingUseCase(s.store, reservation.NewFactory(s.clock, reservation.NewNightlyPriceCalculator()), s.clock)
	s.promotions = commands.NewPromotionUseCase(s.store, s.clock)

	s.roomIDs = nil
	for n := 101; n <= 104; n++ {
		created, err := rooms.CreateRoom(s.ctx, commands.CreateRoomInput{Number: n, Type: "standard", PriceCents: 10000})
		s.Require().NoError(err)
		s.roomIDs = append(s.roomIDs, created.RoomID)
	}
}

func TestPromotionCommandsSuite(t *testing.T) {
	suite.Run(t, new(PromotionCommandsTestSuite))
}

// occupy books the first n rooms for the night of 2025-01-10.
func (s *PromotionCommandsTestSuite) occupy(n int) {
	for i := 0; i < n; i++ {
		_, err := s.booking.Book(s.ctx, commands.BookRoomInput{
			RoomID: s.roomIDs[i], CheckIn: "2025-01-10", CheckOut: "2025-01-11", Guest: fmt.Sprintf("guest-%d", i),
		})
		s.Require().NoError(err)
	}
}

func (s *PromotionCommandsTestSuite) launchJobs() []*shared.NotificationJob {
	var due []*shared.NotificationJob
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		due, cerr = tx.Notifications().ClaimDue(ctx, s.clock.Now(), 100)
		return cerr
	}))
	var jobs []*shared.NotificationJob
	for _, j := range due {
		if j.Topic == "promotion.launched" {
			jobs = append(jobs, j)
		}
	}
	return jobs
}

func (s *PromotionCommandsTestSuite) TestLaunch_BelowThreshold() {
	s.occupy(1)

	res, err := s.promotions.LaunchLowOccupancy(s.ctx, "2025-01-10")
	s.Require().NoError(err)

	s.True(res.Launched)
	s.Equal(4, res.TotalRooms)
	s.Equal(1, res.OccupiedRooms)
	s.InDelta(0.25, res.Rate, 1e-9)
	s.NotEqual(uuid.Nil, res.PromotionID)
	s.Equal(campaign.LowOccupancyDiscountPercent, res.DiscountPercent)

	views, err := s.store.PromotionReads().List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(res.PromotionID, views[0].ID)
	s.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), views[0].Date)

	jobs := s.launchJobs()
	s.Require().Len(jobs, 1)
	var payload map[string]any
	s.Require().NoError(json.Unmarshal(jobs[0].Payload, &payload))
	s.Equal("2025-01-10", payload["date"])
	s.EqualValues(20, payload["discount_percent"])
}

func (s *PromotionCommandsTestSuite) TestLaunch_NotNeeded() {
	tests := []struct {
		name     string
		occupied int
	}{
		{name: "exactly half", occupied: 2},
		{name: "fully booked", occupied: 4},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.occupy(tt.occupied)

			res, err := s.promotions.LaunchLowOccupancy(s.ctx, "2025-01-10")
			s.Require().NoError(err)
			s.False(res.Launched)
			s.Equal(tt.occupied, res.OccupiedRooms)

			views, err := s.store.PromotionReads().List(s.ctx)
			s.Require().NoError(err)
			s.Empty(views)
			s.Empty(s.launchJobs())
		})
	}
}

func (s *PromotionCommandsTestSuite) TestLaunch_NoRooms() {
	promotions := commands.NewPromotionUseCase(memstore.New(), s.clock)

	res, err := promotions.LaunchLowOccupancy(s.ctx, "2025-01-10")
	s.Require().NoError(err)
	s.False(res.Launched)
	s.Zero(res.TotalRooms)
}

func (s *PromotionCommandsTestSuite) TestLaunch_OncePerNight() {
	_, err := s.promotions.LaunchLowOccupancy(s.ctx, "2025-01-10")
	s.Require().NoError(err)

	_, err = s.promotions.LaunchLowOccupancy(s.ctx, "2025-01-10")
	s.ErrorIs(err, errs.ErrPromotionAlreadyActive)

	res, err := s.promotions.LaunchLowOccupancy(s.ctx, "2025-01-11")
	s.Require().NoError(err)
	s.True(res.Launched)

	views, err := s.store.PromotionReads().List(s.ctx)
	s.Require().NoError(err)
	s.Len(views, 2)
}

func (s *PromotionCommandsTestSuite) TestLaunch_Day() {
	s.Run("empty day is today", func() {
		res, err := s.promotions.LaunchLowOccupancy(s.ctx, "")
		s.Require().NoError(err)
		s.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), res.Day)
	})

	s.Run("malformed day", func() {
		_, err := s.promotions.LaunchLowOccupancy(s.ctx, "2025-1-10")
		s.ErrorIs(err, errs.ErrInvalidDay)
	})
}
