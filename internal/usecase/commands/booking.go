package commands

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookRoomInput carries plain request data. Dates use the YYYY-MM-DD layout.
type BookRoomInput struct {
	RoomID   uuid.UUID
	CheckIn  string
	CheckOut string
	Guest    string
}

type BookingResult struct {
	ReservationID   uuid.UUID
	RoomID          uuid.UUID
	RoomNumber      int
	Guest           string
	CheckIn         time.Time
	CheckOut        time.Time
	Status          string
	TotalPriceCents int64
	PointsAwarded   int
	CreatedAt       time.Time
}

type BookingCommands interface {
	Book(ctx context.Context, in BookRoomInput) (*BookingResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, factory: factory, clock: clk}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, in BookRoomInput) (*BookingResult, error) {
	stay, err := reservation.ParseStayRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	guest, err := reservation.NewGuestIdentity(in.Guest)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidGuest)
	}

	var (
		booked     *reservation.Reservation
		roomNumber int
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := tx.Rooms().LockByID(ctx, in.RoomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrRoomNotFound)
			}
			return derr
		}

		// The room lock is held from here until commit, so no other booking
		// can slip in between the conflict check and the insert.
		existing, derr := tx.Reservations().ListActiveByRoom(ctx, rm.ID(), stay.CheckIn())
		if derr != nil {
			return derr
		}

		res, derr := uc.factory.CreateReservation(rm, guest, stay, existing)
		if derr != nil {
			if errors.Is(derr, reservation.ErrStayConflict) {
				return errs.Mark(derr, errs.ErrRoomUnavailable)
			}
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		if derr = tx.Reservations().Create(ctx, res); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, errs.ErrRoomUnavailable)
			}
			return derr
		}

		if _, derr = tx.Loyalty().AddPoints(ctx, guest.String(), res.PointsAwarded(), res.CreatedAt()); derr != nil {
			return derr
		}

		if derr = enqueueNotification(ctx, tx, topicReservationCreated, reservationPayload(res), uc.clock.Now()); derr != nil {
			return derr
		}

		booked = res
		roomNumber = rm.Number()
		return nil
	})
	if err != nil {
		return nil, markStorageFailure(markKind(err, infra.KindConflict, errs.ErrRoomUnavailable))
	}

	return toBookingResult(booked, roomNumber), nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().LockByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrReservationNotFound)
			}
			return derr
		}

		now := uc.clock.Now()
		if derr = res.Cancel(now); derr != nil {
			if errors.Is(derr, reservation.ErrReservationCanceled) {
				return errs.Mark(derr, errs.ErrReservationNotFound)
			}
			return derr
		}

		if derr = tx.Reservations().UpdateStatus(ctx, res); derr != nil {
			return derr
		}

		if res.PointsAwarded() > 0 {
			if _, derr = tx.Loyalty().RevokePoints(ctx, res.Guest().String(), res.PointsAwarded(), now); derr != nil {
				return derr
			}
		}

		return enqueueNotification(ctx, tx, topicReservationCanceled, reservationPayload(res), now)
	})
	return markStorageFailure(err)
}

func toBookingResult(res *reservation.Reservation, roomNumber int) *BookingResult {
	return &BookingResult{
		ReservationID:   res.ID(),
		RoomID:          res.RoomID(),
		RoomNumber:      roomNumber,
		Guest:           res.Guest().String(),
		CheckIn:         res.Stay().CheckIn(),
		CheckOut:        res.Stay().CheckOut(),
		Status:          res.Status().String(),
		TotalPriceCents: res.TotalPrice().Cents(),
		PointsAwarded:   res.PointsAwarded(),
		CreatedAt:       res.CreatedAt(),
	}
}

func reservationPayload(res *reservation.Reservation) map[string]any {
	return map[string]any{
		"reservation_id":    res.ID(),
		"room_id":           res.RoomID(),
		"guest":             res.Guest().String(),
		"check_in":          res.Stay().CheckIn().Format(reservation.DateLayout),
		"check_out":         res.Stay().CheckOut().Format(reservation.DateLayout),
		"status":            res.Status().String(),
		"total_price_cents": res.TotalPrice().Cents(),
	}
}
