// Package outbox delivers notification jobs written by commands in their own
// transactions. Delivery is at least once: a job published just before its
// transaction fails to commit is published again on the next pass.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

const maxBackoff = 5 * time.Minute

type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

type Config struct {
	BatchSize   int
	MaxAttempts int
	BaseBackoff time.Duration
}

type Relay struct {
	uow    shared.UnitOfWork
	pub    Publisher
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger
}

func NewRelay(uow shared.UnitOfWork, pub Publisher, clk clock.Clock, cfg Config, logger *slog.Logger) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = time.Second
	}
	return &Relay{uow: uow, pub: pub, clock: clk, cfg: cfg, logger: logger}
}

// Run polls until ctx is canceled.
func (r *Relay) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("outbox relay pass failed", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce claims one batch of due jobs and settles each of them. It returns
// how many jobs were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := r.pub.Publish(ctx, job.Topic, job.Payload); perr != nil {
				if err = r.settleFailure(ctx, tx, job, perr, now); err != nil {
					return err
				}
				continue
			}
			if err = tx.Notifications().MarkSent(ctx, job.ID, now); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (r *Relay) settleFailure(ctx context.Context, tx shared.Tx, job *shared.NotificationJob, cause error, now time.Time) error {
	attempts := job.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		r.logger.Error("notification job failed permanently",
			slog.String("job_id", job.ID.String()),
			slog.String("topic", job.Topic),
			slog.Int("attempts", attempts),
			slog.Any("error", cause),
		)
		return tx.Notifications().MarkFailed(ctx, job.ID, cause.Error())
	}

	retryAt := now.Add(Backoff(r.cfg.BaseBackoff, attempts))
	r.logger.Warn("notification job will be retried",
		slog.String("job_id", job.ID.String()),
		slog.String("topic", job.Topic),
		slog.Int("attempts", attempts),
		slog.Time("retry_at", retryAt),
		slog.Any("error", cause),
	)
	return tx.Notifications().MarkRetry(ctx, job.ID, retryAt, cause.Error())
}

// Backoff doubles base for every failed attempt, capped at five minutes.
func Backoff(base time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := base
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return min(d, maxBackoff)
}
