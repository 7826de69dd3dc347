package commands

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	Number      int
	Type        string
	PriceCents  int64
	Description string
}

type CreateRoomResult struct {
	RoomID uuid.UUID
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (*CreateRoomResult, error)
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (*CreateRoomResult, error) {
	rm, err := room.NewRoom(in.Number, in.Type, in.PriceCents, in.Description, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().RoomByNumber(ctx, rm.Number())
		switch {
		case derr == nil:
			return errs.ErrDuplicateRoomNumber
		case !infra.IsKind(derr, infra.KindNotFound):
			return derr
		}

		if derr = tx.Rooms().Create(ctx, rm); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateRoomNumber)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, markStorageFailure(markKind(err, infra.KindDuplicateKey, errs.ErrDuplicateRoomNumber))
	}
	return &CreateRoomResult{RoomID: rm.ID()}, nil
}
