//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/subscriber"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 1, 1, 9, 30, 0, 123456789, time.UTC)

func seedRoom(t *testing.T, s *memstore.Store, number int) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(number, "standard", 10000, "", testNow)
	require.NoError(t, err)
	err = s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, rm)
	})
	require.NoError(t, err)
	return rm
}

func newReservation(t *testing.T, roomID uuid.UUID, guest, in, out string, createdAt time.Time) *reservation.Reservation {
	t.Helper()
	stay, err := reservation.ParseStayRange(in, out)
	require.NoError(t, err)
	g, err := reservation.NewGuestIdentity(guest)
	require.NoError(t, err)
	res, err := reservation.NewReservation(roomID, g, stay, reservation.NewMoney(50000), 100, createdAt)
	require.NoError(t, err)
	return res
}

func TestWithin_RollbackDiscardsWrites(t *testing.T) {
	s := memstore.New()
	rm, err := room.NewRoom(101, "standard", 10000, "", testNow)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Rooms().Create(ctx, rm))
		_, rerr := tx.Reads().RoomByNumber(ctx, 101)
		require.NoError(t, rerr, "own writes are visible inside the transaction")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.RoomReads().FindByID(context.Background(), rm.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRooms_DuplicateNumberRejectedAtCommit(t *testing.T) {
	s := memstore.New()
	seedRoom(t, s, 101)

	dup, err := room.NewRoom(101, "deluxe", 20000, "", testNow)
	require.NoError(t, err)
	err = s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, dup)
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	rooms, err := s.RoomReads().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestRooms_LockByIDUnknownRoom(t *testing.T) {
	s := memstore.New()
	err := s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, lerr := tx.Rooms().LockByID(ctx, uuid.New())
		return lerr
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRooms_LockSerializesTransactions(t *testing.T) {
	s := memstore.New()
	rm := seedRoom(t, s, 101)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Rooms().LockByID(ctx, rm.ID()); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, lerr := tx.Rooms().LockByID(ctx, rm.ID())
		return lerr
	})
	require.Error(t, err, "second locker must wait for the first transaction")

	close(release)
	<-done

	err = s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, lerr := tx.Rooms().LockByID(ctx, rm.ID())
		return lerr
	})
	assert.NoError(t, err)
}

func TestReservations_OverlapBackstop(t *testing.T) {
	tests := []struct {
		name       string
		in, out    string
		expectKind *infra.RepositoryErrorKind
	}{
		{name: "nested stay conflicts", in: "2025-01-12", out: "2025-01-13", expectKind: kindPtr(infra.KindConflict)},
		{name: "straddling start conflicts", in: "2025-01-08", out: "2025-01-11", expectKind: kindPtr(infra.KindConflict)},
		{name: "adjacent after is accepted", in: "2025-01-15", out: "2025-01-20"},
		{name: "adjacent before is accepted", in: "2025-01-05", out: "2025-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := memstore.New()
			rm := seedRoom(t, s, 101)

			first := newReservation(t, rm.ID(), "alice", "2025-01-10", "2025-01-15", testNow)
			require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Reservations().Create(ctx, first)
			}))

			// constraints are checked when the transaction commits
			res := newReservation(t, rm.ID(), "bob", tt.in, tt.out, testNow)
			err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Reservations().Create(ctx, res)
			})
			if tt.expectKind != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, *tt.expectKind), "got %v", err)
				assert.Empty(t, confirmedFor(t, s, rm.ID(), "bob"))
				return
			}
			require.NoError(t, err)
			assert.Len(t, confirmedFor(t, s, rm.ID(), "bob"), 1)
		})
	}
}

func confirmedFor(t *testing.T, s *memstore.Store, roomID uuid.UUID, guest string) []*queries.ReservationView {
	t.Helper()
	views, err := s.ReservationReads().ListConfirmedByGuest(context.Background(), guest)
	require.NoError(t, err)
	out := make([]*queries.ReservationView, 0, len(views))
	for _, v := range views {
		if v.RoomID == roomID {
			out = append(out, v)
		}
	}
	return out
}

func kindPtr(k infra.RepositoryErrorKind) *infra.RepositoryErrorKind { return &k }

func TestReservations_CancelFreesInterval(t *testing.T) {
	s := memstore.New()
	rm := seedRoom(t, s, 101)
	ctx := context.Background()

	res := newReservation(t, rm.ID(), "alice", "2025-01-10", "2025-01-15", testNow)
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	}))

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reservations().LockByID(ctx, res.ID())
		if err != nil {
			return err
		}
		if err = locked.Cancel(testNow); err != nil {
			return err
		}
		return tx.Reservations().UpdateStatus(ctx, locked)
	}))

	view, err := s.ReservationReads().FindByID(ctx, res.ID())
	require.NoError(t, err)
	assert.Equal(t, "canceled", view.Status)
	require.NotNil(t, view.CanceledAt)
	assert.Equal(t, 101, view.RoomNumber)

	active, err := s.ReservationReads().ListActiveByRoom(ctx, rm.ID(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, active)

	again := newReservation(t, rm.ID(), "bob", "2025-01-10", "2025-01-15", testNow)
	assert.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, again)
	}))
}

func TestReservations_ListByGuestKeyset(t *testing.T) {
	s := memstore.New()
	rm := seedRoom(t, s, 101)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		day := 1 + i*3
		in := time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
		out := time.Date(2025, 2, day+2, 0, 0, 0, 0, time.UTC).Format(reservation.DateLayout)
		res := newReservation(t, rm.ID(), "alice", in, out, testNow.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Create(ctx, res)
		}))
		ids = append(ids, res.ID())
	}

	first, err := s.ReservationReads().ListByGuest(ctx, "alice", nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, ids[4], first[0].ID)
	assert.Equal(t, ids[3], first[1].ID)
	assert.Equal(t, 0, first[0].CreatedAt.Nanosecond()%1000, "timestamps are kept at microsecond precision")

	after := &queries.CursorPosition{CreatedAt: first[1].CreatedAt, ID: first[1].ID}
	second, err := s.ReservationReads().ListByGuest(ctx, "alice", after, 10)
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, ids[2], second[0].ID)
	assert.Equal(t, ids[0], second[2].ID)

	none, err := s.ReservationReads().ListByGuest(ctx, "bob", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoyalty_RevokeFloorsAtZero(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	var balance int
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = tx.Loyalty().AddPoints(ctx, "alice", 100, testNow)
		return err
	}))
	assert.Equal(t, 100, balance)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = tx.Loyalty().RevokePoints(ctx, "alice", 250, testNow)
		return err
	}))
	assert.Equal(t, 0, balance)

	acct, err := s.LoyaltyReads().FindByGuest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, acct.Points)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var rerr error
		balance, rerr = tx.Loyalty().RevokePoints(ctx, "nobody", 100, testNow)
		return rerr
	}))
	assert.Equal(t, 0, balance)
	_, err = s.LoyaltyReads().FindByGuest(ctx, "nobody")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestLoyalty_ConcurrentCreditsAllLand(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				_, err := tx.Loyalty().AddPoints(ctx, "alice", 100, testNow)
				return err
			})
		}()
	}
	wg.Wait()

	acct, err := s.LoyaltyReads().FindByGuest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, n*100, acct.Points)
}

func TestSubscribers_DuplicateAndDelete(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	email, err := subscriber.NewEmail("guest@example.com")
	require.NoError(t, err)
	create := func() error {
		return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Subscribers().Create(ctx, subscriber.NewSubscriber(email, testNow))
		})
	}

	require.NoError(t, create())
	assert.True(t, infra.IsKind(create(), infra.KindDuplicateKey))

	list, err := s.SubscriberReads().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "guest@example.com", list[0].Email)

	del := func() error {
		return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Subscribers().DeleteByEmail(ctx, "guest@example.com")
		})
	}
	require.NoError(t, del())
	assert.True(t, infra.IsKind(del(), infra.KindNotFound))
}

func TestNotifications_ClaimAndMark(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().CreateJob(ctx, "email", "reservation.created", []byte(`{"a":1}`), testNow); err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, "email", "reservation.created", []byte(`{"a":2}`), testNow.Add(time.Hour))
	}))

	var claimed []*shared.NotificationJob
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Notifications().ClaimDue(ctx, testNow, 10)
		if err != nil {
			return err
		}
		for _, j := range claimed {
			if err = tx.Notifications().MarkSent(ctx, j.ID, testNow); err != nil {
				return err
			}
		}
		return nil
	}))
	require.Len(t, claimed, 1, "only the job due now is claimed")
	assert.JSONEq(t, `{"a":1}`, string(claimed[0].Payload))

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Notifications().ClaimDue(ctx, testNow.Add(2*time.Hour), 10)
		return err
	}))
	require.Len(t, claimed, 1, "sent jobs are not claimed again")
	assert.JSONEq(t, `{"a":2}`, string(claimed[0].Payload))
}

func TestPromotions_OnePerKindAndNight(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	night := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	create := func(p *campaign.Promotion) error {
		return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Promotions().Create(ctx, p)
		})
	}

	first := campaign.NewLowOccupancyPromotion(night, testNow)
	require.NoError(t, create(first))

	err := create(campaign.NewLowOccupancyPromotion(night.Add(6*time.Hour), testNow))
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	require.NoError(t, create(campaign.NewLowOccupancyPromotion(night.AddDate(0, 0, 1), testNow)))

	views, err := s.PromotionReads().List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, night.AddDate(0, 0, 1), views[0].Date)
	assert.Equal(t, first.ID(), views[1].ID)
}

func TestOccupancy_CountsConfirmedStaysCoveringTheNight(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	a := seedRoom(t, s, 101)
	b := seedRoom(t, s, 102)
	seedRoom(t, s, 103)

	canceled := newReservation(t, b.ID(), "bob", "2025-01-10", "2025-01-12", testNow)
	require.NoError(t, canceled.Cancel(testNow))
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, newReservation(t, a.ID(), "alice", "2025-01-10", "2025-01-12", testNow)); err != nil {
			return err
		}
		return tx.Reservations().Create(ctx, canceled)
	}))

	night := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	for d, want := range map[int]int{9: 0, 10: 1, 11: 1, 12: 0} {
		got, err := s.ReservationReads().CountOccupiedRooms(ctx, night(d))
		require.NoError(t, err)
		assert.Equal(t, want, got, "night of the %d", d)
	}

	total, err := s.RoomReads().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Reservations().Create(ctx, newReservation(t, b.ID(), "carol", "2025-01-11", "2025-01-12", testNow)))
		occ, oerr := tx.Reads().Occupancy(ctx, night(11))
		require.NoError(t, oerr)
		assert.Equal(t, 3, occ.TotalRooms)
		assert.Equal(t, 2, occ.OccupiedRooms, "own writes are counted")
		return nil
	})
	require.NoError(t, err)
}
