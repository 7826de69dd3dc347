package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

const (
	notificationKindEmail = "email"

	topicReservationCreated  = "reservation.created"
	topicReservationCanceled = "reservation.canceled"
	topicSubscriberCreated   = "subscriber.created"
	topicPromotionLaunched   = "promotion.launched"
)

// enqueueNotification writes an outbox job in the caller's transaction so the
// notification exists iff the change that triggered it commits.
func enqueueNotification(ctx context.Context, tx shared.Tx, topic string, payload map[string]any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, notificationKindEmail, topic, body, runAt)
}

// markStorageFailure tags infrastructure errors that no command maps to a
// client-facing kind, so handlers can tell them apart from validation errors.
func markStorageFailure(err error) error {
	if err == nil {
		return nil
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) && !isClientError(err) {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return err
}

// markKind maps a constraint hit to a client-facing error. The in-memory
// backend reports constraints at commit, after the callback has returned.
func markKind(err error, kind infra.RepositoryErrorKind, mark error) error {
	if err != nil && !isClientError(err) && infra.IsKind(err, kind) {
		return errs.Mark(err, mark)
	}
	return err
}

func isClientError(err error) bool {
	for _, target := range []error{
		errs.ErrRoomNotFound,
		errs.ErrRoomUnavailable,
		errs.ErrDuplicateRoomNumber,
		errs.ErrReservationNotFound,
		errs.ErrAlreadySubscribed,
		errs.ErrSubscriberNotFound,
		errs.ErrPromotionAlreadyActive,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
