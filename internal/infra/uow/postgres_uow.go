package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in a READ COMMITTED transaction. Booking correctness does
// not depend on the isolation level: the room row lock taken by
// Rooms().LockByID serializes check-then-insert per room, and the
// reservations_no_overlap constraint rejects anything that slips past.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := newPgTx(u.q, pgxTx)

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized repositories
	roomRepo         shared.RoomRepository
	reservationRepo  shared.ReservationRepository
	subscriberRepo   shared.SubscriberRepository
	loyaltyRepo      shared.LoyaltyRepository
	notificationRepo shared.NotificationRepository
	promotionRepo    shared.PromotionRepository
	commandReads     shared.CommandReads
}

func newPgTx(q *sqlc.Queries, dbtx sqlc.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.q, t.dbtx)
	}
	return t.roomRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Subscribers() shared.SubscriberRepository {
	if t.subscriberRepo == nil {
		t.subscriberRepo = repository.NewSubscriberRepository(t.q, t.dbtx)
	}
	return t.subscriberRepo
}

func (t *pgTx) Loyalty() shared.LoyaltyRepository {
	if t.loyaltyRepo == nil {
		t.loyaltyRepo = repository.NewLoyaltyRepository(t.q, t.dbtx)
	}
	return t.loyaltyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Promotions() shared.PromotionRepository {
	if t.promotionRepo == nil {
		t.promotionRepo = repository.NewPromotionRepository(t.q, t.dbtx)
	}
	return t.promotionRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			rooms:        readstore.NewRoomReadStore(t.q, t.dbtx),
			reservations: readstore.NewReservationReadStore(t.q, t.dbtx),
			subscribers:  readstore.NewSubscriberReadStore(t.q, t.dbtx),
		}
	}
	return t.commandReads
}

type commandReads struct {
	rooms        *readstore.RoomReadStore
	reservations *readstore.ReservationReadStore
	subscribers  *readstore.SubscriberReadStore
}

func (r *commandReads) RoomByNumber(ctx context.Context, number int) (*shared.RoomSnapshot, error) {
	room, err := r.rooms.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{ID: room.ID, Number: room.Number}, nil
}

func (r *commandReads) SubscriberByEmail(ctx context.Context, email string) (*shared.SubscriberSnapshot, error) {
	sub, err := r.subscribers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.SubscriberSnapshot{ID: sub.ID, Email: sub.Email}, nil
}

func (r *commandReads) Occupancy(ctx context.Context, day time.Time) (campaign.Occupancy, error) {
	total, err := r.rooms.Count(ctx)
	if err != nil {
		return campaign.Occupancy{}, err
	}
	occupied, err := r.reservations.CountOccupiedRooms(ctx, day)
	if err != nil {
		return campaign.Occupancy{}, err
	}
	return campaign.Occupancy{Day: day, TotalRooms: total, OccupiedRooms: occupied}, nil
}
