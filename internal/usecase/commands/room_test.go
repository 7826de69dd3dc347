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

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uc := commands.NewRoomUseCase(store, clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	created, err := uc.CreateRoom(ctx, commands.CreateRoomInput{Number: 101, Type: "standard", PriceCents: 9900, Description: "garden view"})
	require.NoError(t, err)

	view, err := store.RoomReads().FindByID(ctx, created.RoomID)
	require.NoError(t, err)
	assert.Equal(t, 101, view.Number)
	assert.Equal(t, "garden view", view.Description)
	assert.InDelta(t, 99.0, view.Price(), 0.001)

	tests := []struct {
		name string
		in   commands.CreateRoomInput
		want error
	}{
		{name: "duplicate number", in: commands.CreateRoomInput{Number: 101, Type: "deluxe", PriceCents: 100}, want: errs.ErrDuplicateRoomNumber},
		{name: "zero number", in: commands.CreateRoomInput{Number: 0, Type: "deluxe", PriceCents: 100}, want: errs.ErrDomainValidation},
		{name: "empty type", in: commands.CreateRoomInput{Number: 102, Type: " ", PriceCents: 100}, want: errs.ErrDomainValidation},
		{name: "negative price", in: commands.CreateRoomInput{Number: 102, Type: "deluxe", PriceCents: -1}, want: errs.ErrDomainValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateRoom(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
