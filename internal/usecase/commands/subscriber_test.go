//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberCommands(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uc := commands.NewSubscriberUseCase(store, clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	res, err := uc.Subscribe(ctx, "  Guest@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", res.Email)

	_, err = uc.Subscribe(ctx, "guest@example.com")
	assert.ErrorIs(t, err, errs.ErrAlreadySubscribed)

	_, err = uc.Subscribe(ctx, "not-an-email")
	assert.ErrorIs(t, err, errs.ErrInvalidEmail)

	require.NoError(t, uc.Unsubscribe(ctx, "GUEST@example.com"))
	assert.ErrorIs(t, uc.Unsubscribe(ctx, "guest@example.com"), errs.ErrSubscriberNotFound)

	list, err := store.SubscriberReads().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
