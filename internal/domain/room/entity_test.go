//go:build unit

package room_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		r, err := room.NewRoom(204, "  suite ", 45050, " corner ", now)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, 204, r.Number())
		assert.Equal(t, "suite", r.Type())
		assert.Equal(t, int64(45050), r.Price().Cents())
		assert.InDelta(t, 450.50, r.Price().Amount(), 1e-9)
		assert.Equal(t, "corner", r.Description())
		assert.Equal(t, now, r.CreatedAt())
	})

	tests := []struct {
		name   string
		number int
		typ    string
		price  int64
		desc   string
		errIs  error
	}{
		{"zero number", 0, "single", 100, "", room.ErrInvalidRoomNumber},
		{"empty type", 1, " ", 100, "", room.ErrEmptyRoomType},
		{"long type", 1, strings.Repeat("x", room.MaxRoomTypeLength+1), 100, "", room.ErrRoomTypeTooLong},
		{"negative price", 1, "single", -1, "", room.ErrNegativePrice},
		{"long description", 1, "single", 100, strings.Repeat("x", room.MaxDescriptionLength+1), room.ErrDescriptionTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := room.NewRoom(tt.number, tt.typ, tt.price, tt.desc, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
