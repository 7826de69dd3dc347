//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type QueriesTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memstore.Store
	clock   *clock.MockClock
	rooms      commands.RoomCommands
	booking    commands.BookingCommands
	promotions commands.PromotionCommands

	availability    queries.AvailabilityQueries
	reservations    queries.ReservationQueries
	recommendations queries.RecommendationQueries
	loyalty         queries.LoyaltyQueries
	roomQueries     queries.RoomQueries
	analytics       queries.AnalyticsQueries

	roomIDs map[int]uuid.UUID
}

func (s *QueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.rooms = commands.NewRoomUseCase(s.store, s.clock)
	s.booking = commands.NewBookingUseCase(s.store, reservation.NewFactory(s.clock, reservation.NewNightlyPriceCalculator()), s.clock)

	roomReads := s.store.RoomReads()
	reservationReads := s.store.ReservationReads()
	s.availability = queries.NewAvailabilityQueries(roomReads, reservationReads)
	s.reservations = queries.NewReservationQueries(roomReads, reservationReads)
	s.recommendations = queries.NewRecommendationQueries(roomReads, reservationReads)
	s.loyalty = queries.NewLoyaltyQueries(s.store.LoyaltyReads())
	s.roomQueries = queries.NewRoomQueries(roomReads)
	s.analytics = queries.NewAnalyticsQueries(roomReads, reservationReads, s.store.PromotionReads(), s.clock)
	s.promotions = commands.NewPromotionUseCase(s.store, s.clock)

	s.roomIDs = make(map[int]uuid.UUID)
	for _, r := range []struct {
		number int
		typ    string
		cents  int64
	}{
		{101, "budget", 8000},
		{102, "standard", 11000},
		{103, "standard", 12500},
		{201, "deluxe", 15000},
		{301, "suite", 40000},
	} {
		created, err := s.rooms.CreateRoom(s.ctx, commands.CreateRoomInput{Number: r.number, Type: r.typ, PriceCents: r.cents})
		s.Require().NoError(err)
		s.roomIDs[r.number] = created.RoomID
	}
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) book(number int, in, out, guest string) *commands.BookingResult {
	res, err := s.booking.Book(s.ctx, commands.BookRoomInput{RoomID: s.roomIDs[number], CheckIn: in, CheckOut: out, Guest: guest})
	s.Require().NoError(err)
	return res
}

func (s *QueriesTestSuite) TestIsAvailable_MatchesOverlapPredicate() {
	s.book(101, "2025-01-10", "2025-01-15", "alice")

	tests := []struct {
		in, out   string
		available bool
	}{
		{"2025-01-15", "2025-01-20", true},
		{"2025-01-05", "2025-01-10", true},
		{"2025-01-12", "2025-01-13", false},
		{"2025-01-09", "2025-01-11", false},
		{"2025-01-14", "2025-01-16", false},
		{"2025-01-01", "2025-01-31", false},
	}
	booked, _ := reservation.ParseStayRange("2025-01-10", "2025-01-15")
	for _, tt := range tests {
		s.Run(tt.in+"/"+tt.out, func() {
			view, err := s.availability.IsAvailable(s.ctx, s.roomIDs[101], tt.in, tt.out)
			s.Require().NoError(err)
			s.Equal(tt.available, view.Available)

			stay, _ := reservation.ParseStayRange(tt.in, tt.out)
			s.Equal(!booked.Overlaps(stay), view.Available)
		})
	}
}

func (s *QueriesTestSuite) TestIsAvailable_Errors() {
	_, err := s.availability.IsAvailable(s.ctx, uuid.New(), "2025-01-10", "2025-01-12")
	s.ErrorIs(err, errs.ErrRoomNotFound)

	_, err = s.availability.IsAvailable(s.ctx, s.roomIDs[101], "2025-01-10", "2025-01-10")
	s.ErrorIs(err, errs.ErrInvalidDateRange)
}

func (s *QueriesTestSuite) TestIsAvailable_CanceledReservationIgnored() {
	res := s.book(101, "2025-01-10", "2025-01-15", "alice")
	s.Require().NoError(s.booking.Cancel(s.ctx, res.ReservationID))

	view, err := s.availability.IsAvailable(s.ctx, s.roomIDs[101], "2025-01-10", "2025-01-15")
	s.Require().NoError(err)
	s.True(view.Available)
}

func (s *QueriesTestSuite) TestListAvailableRooms() {
	s.book(101, "2025-01-10", "2025-01-15", "alice")
	s.book(201, "2025-01-14", "2025-01-16", "bob")

	rooms, err := s.availability.ListAvailableRooms(s.ctx, "2025-01-12", "2025-01-14")
	s.Require().NoError(err)

	var numbers []int
	for _, r := range rooms {
		numbers = append(numbers, r.Number)
	}
	s.Equal([]int{102, 103, 201, 301}, numbers)
}

func (s *QueriesTestSuite) TestReservationsListByGuest_Paginates() {
	for i := 0; i < 5; i++ {
		s.clock.Add(time.Minute)
		in := time.Date(2025, 2, 1+i*2, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
		out := time.Date(2025, 2, 2+i*2, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
		s.book(102, in, out, "alice")
	}

	page, err := s.reservations.ListByGuest(s.ctx, "alice", "", 2)
	s.Require().NoError(err)
	s.Len(page.Items, 2)
	s.Require().NotNil(page.NextCursor)
	s.Equal(102, page.Items[0].RoomNumber)

	seen := map[uuid.UUID]bool{}
	for _, it := range page.Items {
		seen[it.ID] = true
	}
	cursor := *page.NextCursor
	for cursor != "" {
		next, err := s.reservations.ListByGuest(s.ctx, "alice", cursor, 2)
		s.Require().NoError(err)
		for _, it := range next.Items {
			s.False(seen[it.ID], "pages must not overlap")
			seen[it.ID] = true
		}
		cursor = ""
		if next.NextCursor != nil {
			cursor = *next.NextCursor
		}
	}
	s.Len(seen, 5)

	_, err = s.reservations.ListByGuest(s.ctx, "alice", "garbage", 2)
	s.ErrorIs(err, errs.ErrInvalidCursor)

	_, err = s.reservations.ListByGuest(s.ctx, " ", "", 2)
	s.ErrorIs(err, errs.ErrInvalidGuest)
}

func (s *QueriesTestSuite) TestReservationGetByID() {
	res := s.book(103, "2025-03-01", "2025-03-04", "carol")

	view, err := s.reservations.GetByID(s.ctx, res.ReservationID)
	s.Require().NoError(err)
	s.Equal(103, view.RoomNumber)
	s.Equal(int64(3*12500), view.TotalPriceCents)

	_, err = s.reservations.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrReservationNotFound)
}

func (s *QueriesTestSuite) TestRecommendations_ForGuest() {
	s.book(102, "2025-01-10", "2025-01-12", "alice")

	recs, err := s.recommendations.ForGuest(s.ctx, "alice", "", "", 2)
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal(103, recs[0].Number, "closest price to 110.00 that alice has not booked")
	s.Equal(101, recs[1].Number)

	none, err := s.recommendations.ForGuest(s.ctx, "nobody", "", "", 2)
	s.Require().NoError(err)
	s.Empty(none)

	// 103 is taken for the requested stay, so it drops out.
	s.book(103, "2025-04-01", "2025-04-05", "bob")
	recs, err = s.recommendations.ForGuest(s.ctx, "alice", "2025-04-02", "2025-04-03", 1)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal(101, recs[0].Number)
}

func (s *QueriesTestSuite) TestRecommendations_SimilarRooms() {
	recs, err := s.recommendations.SimilarRooms(s.ctx, s.roomIDs[201], 0)
	s.Require().NoError(err)
	s.Require().Len(recs, queries.DefaultRecommendationCount)
	s.Equal([]int{103, 102, 101}, []int{recs[0].Number, recs[1].Number, recs[2].Number})

	_, err = s.recommendations.SimilarRooms(s.ctx, uuid.New(), 3)
	s.ErrorIs(err, errs.ErrRoomNotFound)
}

func (s *QueriesTestSuite) TestLoyaltyAccount() {
	acct, err := s.loyalty.GetAccount(s.ctx, "dave")
	s.Require().NoError(err)
	s.Equal(0, acct.Points)
	s.Equal("standard", acct.Tier)

	for i := 0; i < 6; i++ {
		in := time.Date(2025, 5, 1+i*2, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
		out := time.Date(2025, 5, 2+i*2, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
		s.book(301, in, out, "dave")
	}

	acct, err = s.loyalty.GetAccount(s.ctx, "dave")
	s.Require().NoError(err)
	s.Equal(600, acct.Points)
	s.Equal("preferred", acct.Tier)
	s.Equal(25, acct.PercentOff)
}

func (s *QueriesTestSuite) TestRoomQueries() {
	list, err := s.roomQueries.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 5)
	s.Equal(101, list[0].Number)

	_, err = s.roomQueries.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrRoomNotFound)
}

func (s *QueriesTestSuite) TestReservationsListByRoom() {
	later := s.book(101, "2025-02-01", "2025-02-03", "bob")
	earlier := s.book(101, "2025-01-10", "2025-01-12", "alice")
	canceled := s.book(101, "2025-01-20", "2025-01-22", "carol")
	s.Require().NoError(s.booking.Cancel(s.ctx, canceled.ReservationID))
	s.book(102, "2025-01-10", "2025-01-12", "dave")

	views, err := s.reservations.ListByRoom(s.ctx, s.roomIDs[101])
	s.Require().NoError(err)
	s.Require().Len(views, 3)
	s.Equal(earlier.ReservationID, views[0].ID)
	s.Equal(canceled.ReservationID, views[1].ID)
	s.Equal(reservation.StatusCanceled.String(), views[1].Status)
	s.Equal(later.ReservationID, views[2].ID)
	for _, v := range views {
		s.Equal(101, v.RoomNumber)
	}

	views, err = s.reservations.ListByRoom(s.ctx, s.roomIDs[201])
	s.Require().NoError(err)
	s.Empty(views)

	_, err = s.reservations.ListByRoom(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrRoomNotFound)
}

func (s *QueriesTestSuite) TestOccupancy() {
	s.book(101, "2025-01-10", "2025-01-12", "alice")
	s.book(102, "2025-01-11", "2025-01-13", "bob")
	s.book(103, "2025-01-11", "2025-01-12", "carol")
	canceled := s.book(201, "2025-01-11", "2025-01-12", "dave")
	s.Require().NoError(s.booking.Cancel(s.ctx, canceled.ReservationID))

	tests := []struct {
		day       string
		occupied  int
		suggested bool
	}{
		{"2025-01-10", 1, true},
		{"2025-01-11", 3, false},
		// checkout day is free
		{"2025-01-12", 1, true},
		{"2025-01-13", 0, true},
	}
	for _, tt := range tests {
		s.Run(tt.day, func() {
			view, err := s.analytics.Occupancy(s.ctx, tt.day)
			s.Require().NoError(err)
			s.Equal(5, view.TotalRooms)
			s.Equal(tt.occupied, view.OccupiedRooms)
			s.InDelta(float64(tt.occupied)/5, view.Rate, 1e-9)
			s.Equal(tt.suggested, view.PromotionSuggested)
		})
	}

	s.Run("empty date means today", func() {
		view, err := s.analytics.Occupancy(s.ctx, "")
		s.Require().NoError(err)
		s.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), view.Date)
	})

	s.Run("malformed date", func() {
		_, err := s.analytics.Occupancy(s.ctx, "01/11/2025")
		s.ErrorIs(err, errs.ErrInvalidDay)
	})
}

func (s *QueriesTestSuite) TestInsights() {
	s.book(101, "2025-01-10", "2025-01-12", "alice")
	s.book(102, "2025-01-20", "2025-01-22", "bob")
	s.book(103, "2025-02-01", "2025-02-03", "carol")
	canceled := s.book(201, "2025-03-01", "2025-03-02", "dave")
	s.Require().NoError(s.booking.Cancel(s.ctx, canceled.ReservationID))

	view, err := s.analytics.Insights(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, view.TotalReservations)
	s.Equal([]*queries.MonthCount{
		{Month: "2025-01", Reservations: 2},
		{Month: "2025-02", Reservations: 1},
	}, view.PeakTimes)
	s.Equal([]*queries.RoomTypeCount{
		{RoomType: "standard", Reservations: 2},
		{RoomType: "budget", Reservations: 1},
	}, view.GuestPreferences)
}

func (s *QueriesTestSuite) TestPromotions_ListedAfterLaunch() {
	views, err := s.analytics.Promotions(s.ctx)
	s.Require().NoError(err)
	s.Empty(views)

	for _, day := range []string{"2025-01-10", "2025-01-12"} {
		launched, err := s.promotions.LaunchLowOccupancy(s.ctx, day)
		s.Require().NoError(err)
		s.Require().True(launched.Launched)
	}

	views, err = s.analytics.Promotions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal("2025-01-12", views[0].Date.Format("2006-01-02"))
	s.Equal("2025-01-10", views[1].Date.Format("2006-01-02"))
	s.Equal(20, views[0].DiscountPercent)
}
