package components

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is everything the use cases need from a storage backend. Both
// backends provide the same set so the rest of the graph does not change.
type Persistence struct {
	fx.Out

	UoW          shared.UnitOfWork
	Rooms        queries.RoomReadStore
	Reservations queries.ReservationReadStore
	Subscribers  queries.SubscriberReadStore
	Loyalty      queries.LoyaltyReadStore
	Promotions   queries.PromotionReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return NewMemoryPersistence(memstore.New()), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return NewPostgresPersistence(pool), nil
}

func NewPostgresPersistence(pool *pgxpool.Pool) Persistence {
	q := sqlc.New()
	return Persistence{
		UoW:          uow.NewPostgresUoW(pool, q),
		Rooms:        readstore.NewRoomReadStore(q, pool),
		Reservations: readstore.NewReservationReadStore(q, pool),
		Subscribers:  readstore.NewSubscriberReadStore(q, pool),
		Loyalty:      readstore.NewLoyaltyReadStore(q, pool),
		Promotions:   readstore.NewPromotionReadStore(q, pool),
	}
}

func NewMemoryPersistence(store *memstore.Store) Persistence {
	return Persistence{
		UoW:          store,
		Rooms:        store.RoomReads(),
		Reservations: store.ReservationReads(),
		Subscribers:  store.SubscriberReads(),
		Loyalty:      store.LoyaltyReads(),
		Promotions:   store.PromotionReads(),
	}
}
