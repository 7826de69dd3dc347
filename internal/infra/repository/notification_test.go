//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/shared"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create queues the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			CreateNotificationJob(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
				assert.Equal(t, "reservation.confirmed", arg.Kind)
				assert.Equal(t, shared.JobStatusQueued, arg.Status)
				assert.JSONEq(t, `{"a":1}`, string(arg.Payload))
				return nil
			})

		require.NoError(t, repo.CreateJob(ctx, "reservation.confirmed", "reservations", []byte(`{"a":1}`), fixedNow))
	})

	t.Run("claim maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().
			ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{RunAt: pgTimestamptz(fixedNow), Limit: 10}).
			Return([]sqlc.NotificationJobs{{
				ID:        id,
				Kind:      "reservation.canceled",
				Topic:     "reservations",
				Payload:   []byte(`{}`),
				RunAt:     pgTimestamptz(fixedNow.Add(-time.Minute)),
				Attempts:  2,
				Status:    shared.JobStatusQueued,
				LastError: pgtype.Text{String: "broker down", Valid: true},
			}}, nil)

		jobs, err := repo.ClaimDue(ctx, fixedNow, 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, id, jobs[0].ID)
		assert.Equal(t, 2, jobs[0].Attempts)
		require.NotNil(t, jobs[0].LastError)
		assert.Equal(t, "broker down", *jobs[0].LastError)
	})

	t.Run("retry records the error and the next run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		id := uuid.New()
		next := fixedNow.Add(4 * time.Second)
		mockQueries.EXPECT().
			MarkNotificationJobRetry(ctx, mockDB, sqlc.MarkNotificationJobRetryParams{
				ID:        id,
				RunAt:     pgTimestamptz(next),
				LastError: pgtype.Text{String: "nack", Valid: true},
			}).
			Return(nil)

		require.NoError(t, repo.MarkRetry(ctx, id, next, "nack"))
	})
}

func pgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
