package memstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/domain/loyalty"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/subscriber"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errDuplicateRoomNumber = errors.New("duplicate key value violates unique constraint \"rooms_room_number_key\"")
	errDuplicateEmail      = errors.New("duplicate key value violates unique constraint \"subscribers_email_key\"")
	errDuplicateID         = errors.New("duplicate key value violates primary key")
	errUnknownRoom         = errors.New("reservation references unknown room")
	errOverlap             = errors.New("conflicting key value violates exclusion constraint \"reservations_no_overlap\"")
	errDuplicatePromotion  = errors.New("duplicate key value violates unique constraint \"promotions_kind_target_date_key\"")
)

type roomRepository struct {
	tx *memTx
}

func (r *roomRepository) Create(_ context.Context, rm *room.Room) error {
	rec := roomRecord{
		ID:          rm.ID(),
		Number:      rm.Number(),
		Type:        rm.Type(),
		PriceCents:  rm.Price().Cents(),
		Description: rm.Description(),
		CreatedAt:   pgTime(rm.CreatedAt()),
	}
	r.tx.stage(func(st *state) error {
		if _, exists := st.rooms[rec.ID]; exists {
			return infra.WrapRepoErr("failed to create room", errDuplicateID, infra.KindDuplicateKey)
		}
		if _, taken := st.roomByNumber(rec.Number); taken {
			return infra.WrapRepoErr("failed to create room", errDuplicateRoomNumber, infra.KindDuplicateKey)
		}
		st.rooms[rec.ID] = rec
		return nil
	})
	return nil
}

func (r *roomRepository) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	if _, ok := r.tx.view().rooms[id]; !ok {
		return nil, infra.NewNotFound("room not found")
	}
	if err := r.tx.lockRoom(ctx, id); err != nil {
		return nil, err
	}
	rec, ok := r.tx.view().rooms[id]
	if !ok {
		return nil, infra.NewNotFound("room not found")
	}
	return toRoom(rec), nil
}

type reservationRepository struct {
	tx *memTx
}

func (r *reservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	rec := reservationRecord{
		ID:              res.ID(),
		RoomID:          res.RoomID(),
		Guest:           res.Guest().String(),
		CheckIn:         res.Stay().CheckIn(),
		CheckOut:        res.Stay().CheckOut(),
		Status:          res.Status().String(),
		TotalPriceCents: res.TotalPrice().Cents(),
		PointsAwarded:   res.PointsAwarded(),
		CreatedAt:       pgTime(res.CreatedAt()),
		CanceledAt:      pgTimePtr(res.CanceledAt()),
	}
	r.tx.stage(func(st *state) error {
		if _, exists := st.reservations[rec.ID]; exists {
			return infra.WrapRepoErr("failed to create reservation", errDuplicateID, infra.KindDuplicateKey)
		}
		if _, ok := st.rooms[rec.RoomID]; !ok {
			return infra.WrapRepoErr("failed to create reservation", errUnknownRoom, infra.KindForeignKeyViolated)
		}
		if rec.Status == reservation.StatusConfirmed.String() {
			for _, other := range st.reservations {
				if other.RoomID != rec.RoomID || other.Status != reservation.StatusConfirmed.String() {
					continue
				}
				if reservation.Overlaps(other.CheckIn, other.CheckOut, rec.CheckIn, rec.CheckOut) {
					return infra.WrapRepoErr("failed to create reservation", errOverlap, infra.KindConflict)
				}
			}
		}
		st.reservations[rec.ID] = rec
		return nil
	})
	return nil
}

func (r *reservationRepository) ListActiveByRoom(_ context.Context, roomID uuid.UUID, from time.Time) ([]*reservation.Reservation, error) {
	recs := activeByRoom(r.tx.view(), roomID, from)
	out := make([]*reservation.Reservation, 0, len(recs))
	for _, rec := range recs {
		res, err := toReservation(rec)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

// LockByID locks the room the reservation belongs to, which is the same lock
// bookings of that room take.
func (r *reservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rec, ok := r.tx.view().reservations[id]
	if !ok {
		return nil, infra.NewNotFound("reservation not found")
	}
	if err := r.tx.lockRoom(ctx, rec.RoomID); err != nil {
		return nil, err
	}
	rec, ok = r.tx.view().reservations[id]
	if !ok {
		return nil, infra.NewNotFound("reservation not found")
	}

	res, err := toReservation(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *reservationRepository) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	id := res.ID()
	status := res.Status().String()
	canceledAt := pgTimePtr(res.CanceledAt())
	r.tx.stage(func(st *state) error {
		rec, ok := st.reservations[id]
		if !ok {
			return infra.NewNotFound("reservation not found")
		}
		rec.Status = status
		rec.CanceledAt = canceledAt
		st.reservations[id] = rec
		return nil
	})
	return nil
}

func activeByRoom(st *state, roomID uuid.UUID, from time.Time) []reservationRecord {
	var out []reservationRecord
	for _, rec := range st.reservations {
		if rec.RoomID == roomID && rec.Status == reservation.StatusConfirmed.String() && rec.CheckOut.After(from) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckIn.Before(out[j].CheckIn)
	})
	return out
}

type subscriberRepository struct {
	tx *memTx
}

func (r *subscriberRepository) Create(_ context.Context, s *subscriber.Subscriber) error {
	rec := subscriberRecord{
		ID:        s.ID(),
		Email:     s.Email().String(),
		CreatedAt: pgTime(s.CreatedAt()),
	}
	r.tx.stage(func(st *state) error {
		if _, taken := st.subscribers[rec.Email]; taken {
			return infra.WrapRepoErr("failed to create subscriber", errDuplicateEmail, infra.KindDuplicateKey)
		}
		st.subscribers[rec.Email] = rec
		return nil
	})
	return nil
}

func (r *subscriberRepository) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := r.tx.view().subscribers[email]; !ok {
		return infra.NewNotFound("subscriber not found")
	}
	r.tx.stage(func(st *state) error {
		if _, ok := st.subscribers[email]; !ok {
			return infra.NewNotFound("subscriber not found")
		}
		delete(st.subscribers, email)
		return nil
	})
	return nil
}

type loyaltyRepository struct {
	tx *memTx
}

// Points are staged as deltas so that concurrent bookings by the same guest
// both land, as with the UPSERT in Postgres.
func (r *loyaltyRepository) AddPoints(_ context.Context, guest string, points int, at time.Time) (int, error) {
	at = pgTime(at)
	r.tx.stage(func(st *state) error {
		acct := st.loyalty[guest]
		acct.Guest = guest
		acct.Points += points
		acct.UpdatedAt = at
		st.loyalty[guest] = acct
		return nil
	})
	return r.tx.view().loyalty[guest].Points, nil
}

func (r *loyaltyRepository) RevokePoints(_ context.Context, guest string, points int, at time.Time) (int, error) {
	if _, ok := r.tx.view().loyalty[guest]; !ok {
		return 0, nil
	}
	at = pgTime(at)
	r.tx.stage(func(st *state) error {
		acct, ok := st.loyalty[guest]
		if !ok {
			return nil
		}
		acct.Points = loyalty.Revoke(acct.Points, points)
		acct.UpdatedAt = at
		st.loyalty[guest] = acct
		return nil
	})
	return r.tx.view().loyalty[guest].Points, nil
}

type promotionRepository struct {
	tx *memTx
}

func (r *promotionRepository) Create(_ context.Context, p *campaign.Promotion) error {
	rec := promotionRecord{
		ID:              p.ID(),
		Kind:            p.Kind(),
		Day:             p.Day(),
		Description:     p.Description(),
		DiscountPercent: p.DiscountPercent(),
		CreatedAt:       pgTime(p.CreatedAt()),
	}
	r.tx.stage(func(st *state) error {
		if _, exists := st.promotions[rec.ID]; exists {
			return infra.WrapRepoErr("failed to create promotion", errDuplicateID, infra.KindDuplicateKey)
		}
		for _, other := range st.promotions {
			if other.Kind == rec.Kind && other.Day.Equal(rec.Day) {
				return infra.WrapRepoErr("failed to create promotion", errDuplicatePromotion, infra.KindDuplicateKey)
			}
		}
		st.promotions[rec.ID] = rec
		return nil
	})
	return nil
}

type notificationRepository struct {
	tx *memTx
}

func (r *notificationRepository) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	now := pgTime(time.Now())
	rec := jobRecord{
		NotificationJob: shared.NotificationJob{
			ID:        uuid.New(),
			Kind:      kind,
			Topic:     topic,
			Payload:   append([]byte(nil), payload...),
			Status:    shared.JobStatusQueued,
			RunAt:     pgTime(runAt),
			CreatedAt: now,
		},
		UpdatedAt: now,
	}
	r.tx.stage(func(st *state) error {
		st.jobs[rec.ID] = rec
		return nil
	})
	return nil
}

// ClaimDue holds the outbox lock until the transaction ends, so at most one
// relay works the queue at a time.
func (r *notificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*shared.NotificationJob, error) {
	if err := r.tx.lockOutbox(ctx); err != nil {
		return nil, err
	}

	var due []jobRecord
	for _, j := range r.tx.view().jobs {
		if j.Status == shared.JobStatusQueued && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	sort.Slice(due, func(i, k int) bool {
		if !due[i].RunAt.Equal(due[k].RunAt) {
			return due[i].RunAt.Before(due[k].RunAt)
		}
		return compareUUID(due[i].ID, due[k].ID) < 0
	})
	if limit >= 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]*shared.NotificationJob, len(due))
	for i, j := range due {
		job := j.NotificationJob
		out[i] = &job
	}
	return out, nil
}

func (r *notificationRepository) MarkSent(_ context.Context, id uuid.UUID, at time.Time) error {
	r.updateJob(id, func(j *jobRecord) {
		j.Status = shared.JobStatusSent
		j.Attempts++
		j.LastError = nil
		j.UpdatedAt = pgTime(at)
	})
	return nil
}

func (r *notificationRepository) MarkRetry(_ context.Context, id uuid.UUID, runAt time.Time, lastErr string) error {
	r.updateJob(id, func(j *jobRecord) {
		j.Attempts++
		j.RunAt = pgTime(runAt)
		j.LastError = &lastErr
		j.UpdatedAt = pgTime(time.Now())
	})
	return nil
}

func (r *notificationRepository) MarkFailed(_ context.Context, id uuid.UUID, lastErr string) error {
	r.updateJob(id, func(j *jobRecord) {
		j.Status = shared.JobStatusFailed
		j.Attempts++
		j.LastError = &lastErr
		j.UpdatedAt = pgTime(time.Now())
	})
	return nil
}

// updateJob mirrors UPDATE ... WHERE id = $1: a missing row is not an error.
func (r *notificationRepository) updateJob(id uuid.UUID, mutate func(j *jobRecord)) {
	r.tx.stage(func(st *state) error {
		j, ok := st.jobs[id]
		if !ok {
			return nil
		}
		mutate(&j)
		st.jobs[id] = j
		return nil
	})
}
