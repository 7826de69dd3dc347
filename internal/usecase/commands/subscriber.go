package commands

import (
	"context"

	"hotel-booking/internal/domain/subscriber"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscribeResult struct {
	SubscriberID uuid.UUID
	Email        string
}

type SubscriberCommands interface {
	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)
	Unsubscribe(ctx context.Context, email string) error
}

type subscriberUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubscriberUseCase(uow shared.UnitOfWork, clk clock.Clock) SubscriberCommands {
	return &subscriberUseCaseImpl{uow: uow, clock: clk}
}

func (uc *subscriberUseCaseImpl) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	addr, err := subscriber.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidEmail)
	}
	sub := subscriber.NewSubscriber(addr, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().SubscriberByEmail(ctx, addr.String())
		switch {
		case derr == nil:
			return errs.ErrAlreadySubscribed
		case !infra.IsKind(derr, infra.KindNotFound):
			return derr
		}

		if derr = tx.Subscribers().Create(ctx, sub); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrAlreadySubscribed)
			}
			return derr
		}

		return enqueueNotification(ctx, tx, topicSubscriberCreated, map[string]any{
			"subscriber_id": sub.ID(),
			"email":         addr.String(),
		}, uc.clock.Now())
	})
	if err != nil {
		return nil, markStorageFailure(markKind(err, infra.KindDuplicateKey, errs.ErrAlreadySubscribed))
	}
	return &SubscribeResult{SubscriberID: sub.ID(), Email: addr.String()}, nil
}

func (uc *subscriberUseCaseImpl) Unsubscribe(ctx context.Context, email string) error {
	addr, err := subscriber.NewEmail(email)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidEmail)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Subscribers().DeleteByEmail(ctx, addr.String()); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrSubscriberNotFound)
			}
			return derr
		}
		return nil
	})
	return markStorageFailure(markKind(err, infra.KindNotFound, errs.ErrSubscriberNotFound))
}
