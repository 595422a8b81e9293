package daily

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "daily.db")+"?_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE daily_results (
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		seed       INTEGER NOT NULL,
		moves      INTEGER NOT NULL,
		hints      INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE(user_id, date)
	)`)
	require.NoError(t, err)
	return db
}

func TestInsertAndAlreadyPlayed(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()

	played, err := s.AlreadyPlayed(ctx, "u1", "2024-03-14")
	require.NoError(t, err)
	require.False(t, played)

	err = s.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-14", Seed: 9, Moves: 40, Hints: 1, ElapsedMs: 61000})
	require.NoError(t, err)

	played, err = s.AlreadyPlayed(ctx, "u1", "2024-03-14")
	require.NoError(t, err)
	require.True(t, played)

	// Other users and other dates stay unaffected.
	played, err = s.AlreadyPlayed(ctx, "u2", "2024-03-14")
	require.NoError(t, err)
	require.False(t, played)
	played, err = s.AlreadyPlayed(ctx, "u1", "2024-03-15")
	require.NoError(t, err)
	require.False(t, played)
}

func TestInsertResultIgnoresDuplicates(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()

	first := Result{UserID: "u1", Date: "2024-03-14", Seed: 9, Moves: 40, Hints: 0, ElapsedMs: 50000}
	require.NoError(t, s.InsertResult(ctx, first))
	// A second finish on the same day must keep the first result.
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-14", Seed: 9, Moves: 10, Hints: 0, ElapsedMs: 1}))

	rows, err := s.Leaderboard(ctx, "2024-03-14", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 40, rows[0].Moves)
}

func TestLeaderboardOrdering(t *testing.T) {
	s := NewStore(testDB(t))
	ctx := context.Background()

	require.NoError(t, s.InsertResult(ctx, Result{UserID: "slow", Date: "2024-03-14", Seed: 9, Moves: 44, Hints: 0, ElapsedMs: 90000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "fast", Date: "2024-03-14", Seed: 9, Moves: 40, Hints: 2, ElapsedMs: 30000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "mid", Date: "2024-03-14", Seed: 9, Moves: 40, Hints: 0, ElapsedMs: 60000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "other_day", Date: "2024-03-15", Seed: 10, Moves: 5, Hints: 0, ElapsedMs: 1}))

	rows, err := s.Leaderboard(ctx, "2024-03-14", 20)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "fast", rows[0].UserID)
	require.Equal(t, "mid", rows[1].UserID)
	require.Equal(t, "slow", rows[2].UserID)

	// limit caps the result set
	rows, err = s.Leaderboard(ctx, "2024-03-14", 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
