package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// History is an append-only activity log (captures, resolutions, deletions)
// kept in sqlite next to the JSON store. It exists for the `history` command
// and is strictly best-effort: a failed append never blocks a mutation.
type History struct {
	db *sql.DB
}

type HistoryEntry struct {
	ID      string
	At      time.Time
	Event   string
	WorryID string
	Detail  string
}

func OpenHistory(dir string) (*History, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "history.sqlite"))
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	// WAL + busy_timeout keep occasional CLI/TUI overlap from "database is
	// locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	schema := `CREATE TABLE IF NOT EXISTS events (
		event_id TEXT PRIMARY KEY,
		at_unixms INTEGER NOT NULL,
		event TEXT NOT NULL,
		worry_id TEXT NOT NULL,
		detail TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &History{db: db}, nil
}

// Record implements Recorder. Errors are intentionally dropped; the log is
// derived convenience data, never the source of truth.
func (h *History) Record(event string, worryID string, detail string) {
	if h == nil {
		return
	}
	_, _ = h.db.Exec(
		`INSERT INTO events (event_id, at_unixms, event, worry_id, detail) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().UnixMilli(), event, worryID, detail,
	)
}

// Clear deletes every logged event. Worry text lives in the detail column,
// so a full data reset must empty the log too.
func (h *History) Clear() error {
	if h == nil {
		return nil
	}
	_, err := h.db.Exec(`DELETE FROM events`)
	return err
}

// Recent returns the newest entries, most recent first.
func (h *History) Recent(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.Query(
		`SELECT event_id, at_unixms, event, worry_id, detail FROM events ORDER BY at_unixms DESC, event_id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ms int64
		if err := rows.Scan(&e.ID, &ms, &e.Event, &e.WorryID, &e.Detail); err != nil {
			return nil, err
		}
		e.At = time.UnixMilli(ms)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
