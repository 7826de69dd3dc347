// Package memstore is a process-local storage backend. It implements the
// same unit of work and read stores as the Postgres backend and is used for
// local runs without a database and in tests.
package memstore

import (
	"context"
	"sync"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	state *state

	locksMu   sync.Mutex
	roomLocks map[uuid.UUID]chan struct{}
	outbox    chan struct{}
}

func New() *Store {
	return &Store{
		state:     newState(),
		roomLocks: make(map[uuid.UUID]chan struct{}),
		outbox:    make(chan struct{}, 1),
	}
}

// Within runs fn against a private journal. Writes become visible to other
// transactions only when fn returns nil and every staged write applies
// cleanly; otherwise nothing is kept.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(s)
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) roomLock(id uuid.UUID) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.roomLocks[id]
	if !ok {
		l = make(chan struct{}, 1)
		s.roomLocks[id] = l
	}
	return l
}

func acquire(ctx context.Context, l chan struct{}) error {
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return infra.WrapRepoErr("lock wait canceled", ctx.Err(), infra.KindDBFailure)
	}
}
