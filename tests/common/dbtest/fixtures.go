//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom inserts a room directly, bypassing the command layer.
func CreateTestRoom(t *testing.T, db DBLike, number int, roomType string, priceCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, room_number, room_type, price_cents) VALUES ($1, $2, $3, $4)",
		roomID, number, roomType, priceCents)
	require.NoError(t, err)
	return roomID
}

// CountConfirmed returns the confirmed reservations held by roomID.
func CountConfirmed(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE room_id = $1 AND status = 'confirmed'", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountJobs returns the queued notification jobs of the given kind.
func CountJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		truncateSQL.Store(buildTruncateSQL(ctx, pool))
	})
	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, stmt)
	return err
}

func buildTruncateSQL(ctx context.Context, pool *pgxpool.Pool) string {
	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'
	    AND tablename NOT IN ('atlas_schema_revisions')`)
	if err != nil {
		return ""
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return ""
		}
		tables = append(tables, name)
	}
	if rows.Err() != nil {
		return ""
	}
	if len(tables) == 0 {
		return "SELECT 1"
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;"
}
