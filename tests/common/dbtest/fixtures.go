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

	"mrbs/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

// lighter argon2 cost so fixtures stay fast; verification reads the params from the hash
var fixtureParams = password.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func testPasswordHash(t *testing.T) string {
	t.Helper()
	passwordHashOnce.Do(func() {
		var err error
		passwordHash, err = password.HashPasswordWithParams(TestPassword, fixtureParams)
		require.NoError(t, err)
	})
	return passwordHash
}

// CreateTestUser inserts a user whose password is TestPassword.
func CreateTestUser(t *testing.T, db DBLike, username, displayName string, level int) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (username, display_name, password_hash, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id`,
		username, displayName, testPasswordHash(t), level).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func RoomID(t *testing.T, db DBLike, displayName string) int64 {
	t.Helper()

	var roomID int64
	err := db.QueryRow(context.Background(), "SELECT id FROM rooms WHERE display_name = $1", displayName).Scan(&roomID)
	require.NoError(t, err)
	return roomID
}

func CountSessions(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM sessions").Scan(&n)
	require.NoError(t, err)
	return n
}

// AgeSessions moves every session's creation time into the past.
func AgeSessions(t *testing.T, db DBLike, by time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE sessions SET created_at = created_at - make_interval(secs => $1)", by.Seconds())
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (display_name) VALUES
		    ('Main Hall'),
		    ('Annex')
		ON CONFLICT (display_name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
