//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 1, 10, 8, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	pos, err := DecodeAfterCursor(EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.True(t, ts.Equal(pos.CreatedAt))
	assert.Equal(t, id, pos.ID)
}

func TestDecodeAfterCursor(t *testing.T) {
	t.Run("empty cursor means first page", func(t *testing.T) {
		pos, err := DecodeAfterCursor("")
		assert.NoError(t, err)
		assert.Nil(t, pos)
	})

	invalid := map[string]string{
		"not base64":      "%%%",
		"unknown version": base64.URLEncoding.EncodeToString([]byte("v9:1-" + uuid.NewString())),
		"missing id":      base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		"bad timestamp":   base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":        base64.URLEncoding.EncodeToString([]byte("v1:12345-nope")),
	}
	for name, cursor := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeAfterCursor(cursor)
			assert.ErrorIs(t, err, errs.ErrInvalidCursor)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-3))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
