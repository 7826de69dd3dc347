//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memstore.Store
	clock   *clock.MockClock
	rooms   commands.RoomCommands
	booking commands.BookingCommands
	roomID  uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.rooms = commands.NewRoomUseCase(s.store, s.clock)
	factory := reservation.NewFactory(s.clock, reservation.NewNightlyPriceCalculator())
	s.booking = commands.NewBookingUseCase(s.store, factory, s.clock)

	created, err := s.rooms.CreateRoom(s.ctx, commands.CreateRoomInput{Number: 101, Type: "standard", PriceCents: 12000})
	s.Require().NoError(err)
	s.roomID = created.RoomID
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) book(in, out, guest string) (*commands.BookingResult, error) {
	return s.booking.Book(s.ctx, commands.BookRoomInput{RoomID: s.roomID, CheckIn: in, CheckOut: out, Guest: guest})
}

func (s *BookingCommandsTestSuite) TestBook_Success() {
	res, err := s.book("2025-01-10", "2025-01-15", "alice")
	s.Require().NoError(err)

	s.Equal(s.roomID, res.RoomID)
	s.Equal(101, res.RoomNumber)
	s.Equal("alice", res.Guest)
	s.Equal("confirmed", res.Status)
	s.Equal(int64(5*12000), res.TotalPriceCents)
	s.Equal(100, res.PointsAwarded)

	acct, err := s.store.LoyaltyReads().FindByGuest(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(100, acct.Points)

	var jobs []*shared.NotificationJob
	s.Require().NoError(s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		jobs, cerr = tx.Notifications().ClaimDue(ctx, s.clock.Now(), 10)
		return cerr
	}))
	s.Require().Len(jobs, 1)
	s.Equal("reservation.created", jobs[0].Topic)
}

func (s *BookingCommandsTestSuite) TestBook_Errors() {
	_, err := s.book("2025-01-10", "2025-01-15", "alice")
	s.Require().NoError(err)

	tests := []struct {
		name    string
		roomID  *uuid.UUID
		in, out string
		guest   string
		want    error
	}{
		{name: "nested stay", in: "2025-01-12", out: "2025-01-13", guest: "bob", want: errs.ErrRoomUnavailable},
		{name: "same stay", in: "2025-01-10", out: "2025-01-15", guest: "bob", want: errs.ErrRoomUnavailable},
		{name: "overlapping tail", in: "2025-01-14", out: "2025-01-16", guest: "bob", want: errs.ErrRoomUnavailable},
		{name: "check-in equals check-out", in: "2025-02-01", out: "2025-02-01", guest: "bob", want: errs.ErrInvalidDateRange},
		{name: "check-out before check-in", in: "2025-02-05", out: "2025-02-01", guest: "bob", want: errs.ErrInvalidDateRange},
		{name: "malformed date", in: "2025/02/01", out: "2025-02-03", guest: "bob", want: errs.ErrInvalidDateRange},
		{name: "empty guest", in: "2025-02-01", out: "2025-02-03", guest: "   ", want: errs.ErrInvalidGuest},
		{name: "unknown room", roomID: ptrUUID(uuid.New()), in: "2025-02-01", out: "2025-02-03", guest: "bob", want: errs.ErrRoomNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			roomID := s.roomID
			if tt.roomID != nil {
				roomID = *tt.roomID
			}
			_, err := s.booking.Book(s.ctx, commands.BookRoomInput{RoomID: roomID, CheckIn: tt.in, CheckOut: tt.out, Guest: tt.guest})
			s.ErrorIs(err, tt.want)
		})
	}
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }

func (s *BookingCommandsTestSuite) TestBook_AdjacentStaysAllowed() {
	_, err := s.book("2025-01-10", "2025-01-15", "alice")
	s.Require().NoError(err)

	_, err = s.book("2025-01-15", "2025-01-20", "bob")
	s.NoError(err)
	_, err = s.book("2025-01-05", "2025-01-10", "carol")
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCancel_ThenRebookSameInterval() {
	first, err := s.book("2025-01-10", "2025-01-15", "alice")
	s.Require().NoError(err)

	s.Require().NoError(s.booking.Cancel(s.ctx, first.ReservationID))

	acct, err := s.store.LoyaltyReads().FindByGuest(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, acct.Points, "points awarded by the booking are revoked")

	_, err = s.book("2025-01-10", "2025-01-15", "bob")
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCancel_RepeatedAndUnknown() {
	res, err := s.book("2025-01-10", "2025-01-15", "alice")
	s.Require().NoError(err)
	s.Require().NoError(s.booking.Cancel(s.ctx, res.ReservationID))

	for i := 0; i < 2; i++ {
		s.ErrorIs(s.booking.Cancel(s.ctx, res.ReservationID), errs.ErrReservationNotFound)
	}
	s.ErrorIs(s.booking.Cancel(s.ctx, uuid.New()), errs.ErrReservationNotFound)

	view, err := s.store.ReservationReads().FindByID(s.ctx, res.ReservationID)
	s.Require().NoError(err)
	s.Equal("canceled", view.Status)
}

func TestBook_ConcurrentOverlappingExactlyOneSucceeds(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	rooms := commands.NewRoomUseCase(store, clk)
	booking := commands.NewBookingUseCase(store, reservation.NewFactory(clk, reservation.NewNightlyPriceCalculator()), clk)

	created, err := rooms.CreateRoom(ctx, commands.CreateRoomInput{Number: 7, Type: "suite", PriceCents: 30000})
	require.NoError(t, err)

	const attempts = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		failed  int
		other   []error
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// every stay shares 2025-03-12
			in := time.Date(2025, 3, 10+i%3, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
			_, berr := booking.Book(ctx, commands.BookRoomInput{RoomID: created.RoomID, CheckIn: in, CheckOut: "2025-03-13", Guest: "guest"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case berr == nil:
				success++
			case errors.Is(berr, errs.ErrRoomUnavailable):
				failed++
			default:
				other = append(other, berr)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, success)
	assert.Equal(t, attempts-1, failed)

	active, err := store.ReservationReads().ListActiveByRoom(ctx, created.RoomID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
