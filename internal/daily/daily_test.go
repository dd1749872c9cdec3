package daily

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	got := DateKey(time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
	if got != "2024-03-11" {
		t.Fatalf("DateKey = %q, want 2024-03-11", got)
	}
}

func TestChallengeDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	idx1, seed1 := Challenge(day, "salt", 3)
	idx2, seed2 := Challenge(day.Add(7*time.Hour), "salt", 3) // same date, later time
	if idx1 != idx2 || seed1 != seed2 {
		t.Fatal("same date produced different challenges")
	}
	if idx1 < 0 || idx1 >= 3 {
		t.Fatalf("level index %d out of range", idx1)
	}

	idx3, seed3 := Challenge(day.AddDate(0, 0, 1), "salt", 3)
	if idx1 == idx3 && seed1 == seed3 {
		t.Fatal("next day produced an identical challenge")
	}

	_, seedOther := Challenge(day, "other_salt", 3)
	if seedOther == seed1 {
		t.Fatal("different salts produced the same seed")
	}
}

func TestChallengeDegenerateLevelCount(t *testing.T) {
	if idx, seed := Challenge(time.Now(), "salt", 0); idx != 0 || seed != 0 {
		t.Fatalf("zero level count: (%d, %d)", idx, seed)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(`CREATE TABLE daily_results (
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		level      INTEGER NOT NULL,
		matches    INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		UNIQUE(user_id, date)
	)`); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return NewStore(db)
}

func TestStoreOnceAndLeaderboard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	played, err := st.AlreadyPlayed(ctx, "u1", "2024-03-11")
	if err != nil || played {
		t.Fatalf("fresh user: played=%v err=%v", played, err)
	}

	if err := st.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-11", Level: 1, Matches: 22, ElapsedMs: 90000}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// second insert for the same day is silently ignored, not an error
	if err := st.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-11", Level: 1, Matches: 22, ElapsedMs: 10}); err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if err := st.InsertResult(ctx, Result{UserID: "u2", Date: "2024-03-11", Level: 1, Matches: 22, ElapsedMs: 45000}); err != nil {
		t.Fatalf("insert u2: %v", err)
	}
	if err := st.InsertResult(ctx, Result{UserID: "u3", Date: "2024-03-12", Level: 0, Matches: 44, ElapsedMs: 1000}); err != nil {
		t.Fatalf("insert u3: %v", err)
	}

	played, err = st.AlreadyPlayed(ctx, "u1", "2024-03-11")
	if err != nil || !played {
		t.Fatalf("after insert: played=%v err=%v", played, err)
	}

	rows, err := st.Leaderboard(ctx, "2024-03-11", 20)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("leaderboard rows: %d", len(rows))
	}
	// fastest first; the ignored duplicate must not have replaced u1's time
	if rows[0].UserID != "u2" || rows[0].ElapsedMs != 45000 {
		t.Fatalf("leaderboard[0]: %+v", rows[0])
	}
	if rows[1].UserID != "u1" || rows[1].ElapsedMs != 90000 {
		t.Fatalf("leaderboard[1]: %+v", rows[1])
	}

	if rows, err := st.Leaderboard(ctx, "2024-03-11", 1); err != nil || len(rows) != 1 {
		t.Fatalf("limited leaderboard: %v rows=%d", err, len(rows))
	}
}
