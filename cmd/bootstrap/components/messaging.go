package components

import (
	"context"
	"log/slog"
	"sync"

	"hotel-booking/internal/infra/messaging"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/outbox"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	if cfg.Messaging.AMQPURL == "" {
		logger.Info("AMQP_URL not set; notifications are logged only")
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewRabbitPublisher(cfg.Messaging.AMQPURL, cfg.Messaging.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewRelay(uow shared.UnitOfWork, pub outbox.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *outbox.Relay {
	return outbox.NewRelay(uow, pub, clk, outbox.Config{
		BatchSize:   cfg.Relay.BatchSize,
		MaxAttempts: cfg.Relay.MaxAttempts,
		BaseBackoff: cfg.Relay.BaseBackoff,
	}, logger)
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, cfg config.Config, logger *slog.Logger) {
	if !cfg.Relay.Enabled {
		logger.Info("outbox relay disabled")
		return
	}

	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			wg.Add(1)
			go func() {
				defer wg.Done()
				relay.Run(ctx, cfg.Relay.Interval)
			}()
			logger.Info("outbox relay started", slog.Duration("interval", cfg.Relay.Interval))
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}
