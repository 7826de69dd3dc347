//go:build unit

package subscriber_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/subscriber"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	valid := []struct {
		in   string
		want string
	}{
		{"guest@example.com", "guest@example.com"},
		{"  Guest.Name+tag@Example.COM ", "guest.name+tag@example.com"},
		{"a@b.co", "a@b.co"},
	}
	for _, tt := range valid {
		t.Run("valid "+tt.in, func(t *testing.T) {
			e, err := subscriber.NewEmail(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}

	invalid := []string{"", "plain", "no-at.example.com", "a@b", "a@@b.com", "a b@c.com"}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := subscriber.NewEmail(in)
			assert.ErrorIs(t, err, subscriber.ErrInvalidEmail)
		})
	}
}

func TestNewSubscriber(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	email, err := subscriber.NewEmail("guest@example.com")
	require.NoError(t, err)

	s := subscriber.NewSubscriber(email, now)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, email, s.Email())
	assert.Equal(t, now, s.CreatedAt())
}
