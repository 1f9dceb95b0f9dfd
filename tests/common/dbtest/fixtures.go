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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is what fixtures need from a connection; satisfied by pools and
// transactions alike.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestDish(t *testing.T, db DBLike, name, category string, active bool) uuid.UUID {
	t.Helper()

	dishID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO dishes (id, name, category, is_active) VALUES ($1, $2, $3, $4)",
		dishID, name, category, active)
	require.NoError(t, err)

	return dishID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO dishes (id, name, category, is_active) VALUES
		    (gen_random_uuid(), 'Chalow', 'rice', true),
		    (gen_random_uuid(), 'Sabzi Palak', 'sabzi', true)
		ON CONFLICT DO NOTHING;
	`)
	return err
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
		if len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", ")))
	})

	sql, _ := truncateSQL.Load().(string)
	if sql == "" {
		return fmt.Errorf("failed to build truncate statement")
	}

	if _, err := pool.Exec(ctx, sql); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
