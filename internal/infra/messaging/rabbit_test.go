//go:build unit

package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeConfirmation struct {
	acked bool
	err   error
	block bool
}

func (f fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	if f.block {
		<-ctx.Done()
		return false, ctx.Err()
	}
	return f.acked, f.err
}

func TestAwaitConfirm(t *testing.T) {
	t.Run("ack", func(t *testing.T) {
		assert.NoError(t, awaitConfirm(context.Background(), "reservation.created", fakeConfirmation{acked: true}))
	})

	t.Run("nack is an error", func(t *testing.T) {
		err := awaitConfirm(context.Background(), "reservation.created", fakeConfirmation{acked: false})
		assert.ErrorIs(t, err, ErrPublishNacked)
		assert.Contains(t, err.Error(), "reservation.created")
	})

	t.Run("gives up when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := awaitConfirm(ctx, "promotion.launched", fakeConfirmation{block: true})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
