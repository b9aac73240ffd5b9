package telemetry

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const telemetrySchema = `
CREATE TABLE IF NOT EXISTS gesture_events (
	id        INTEGER PRIMARY KEY,
	kind      TEXT    NOT NULL,
	timestamp TEXT    NOT NULL,
	direction TEXT    NOT NULL DEFAULT '',
	tab_id    TEXT    NOT NULL DEFAULT '',
	private   INTEGER NOT NULL DEFAULT 0,
	message   TEXT    NOT NULL DEFAULT '',
	detail    TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_gesture_events_kind_ts ON gesture_events(kind, timestamp DESC);
`

const maxQueryLimit = 500

// SQLiteRecorder is a Recorder backed by a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) a SQLite database at dbPath, runs the
// gesture_events schema, and returns a ready-to-use recorder.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db for telemetry: %w", err)
	}

	if _, err := db.Exec(telemetrySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run telemetry schema: %w", err)
	}

	return &SQLiteRecorder{db: db}, nil
}

// Emit inserts a telemetry event. If the event's Timestamp is zero, it is
// set to time.Now(). Emit is synchronous and safe to call from the bubbletea
// Update goroutine.
func (r *SQLiteRecorder) Emit(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	const q = `
		INSERT INTO gesture_events (kind, timestamp, direction, tab_id, private, message, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	private := 0
	if e.Private {
		private = 1
	}

	_, _ = r.db.Exec(q,
		string(e.Kind),
		formatTime(e.Timestamp),
		e.Direction,
		e.TabID,
		private,
		e.Message,
		e.Detail,
	)
}

// Query returns events matching the filter, ordered newest-first.
// Limit is capped at 500.
func (r *SQLiteRecorder) Query(f QueryFilter) ([]Event, error) {
	limit := f.Limit
	if limit <= 0 || limit > maxQueryLimit {
		limit = maxQueryLimit
	}

	var conditions []string
	var args []any

	if f.TabID != "" {
		conditions = append(conditions, "tab_id = ?")
		args = append(args, f.TabID)
	}
	if len(f.Kinds) > 0 {
		placeholders := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			placeholders[i] = "?"
			args = append(args, string(k))
		}
		conditions = append(conditions, "kind IN ("+strings.Join(placeholders, ", ")+")")
	}
	if !f.After.IsZero() {
		conditions = append(conditions, "timestamp > ?")
		args = append(args, formatTime(f.After))
	}
	if !f.Before.IsZero() {
		conditions = append(conditions, "timestamp < ?")
		args = append(args, formatTime(f.Before))
	}

	q := `
		SELECT id, kind, timestamp, direction, tab_id, private, message, detail
		FROM gesture_events
	`
	if len(conditions) > 0 {
		q += " WHERE " + strings.Join(conditions, " AND ")
	}
	q += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT %d", limit)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query telemetry events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var ts string
		var private int
		if err := rows.Scan(
			&e.ID,
			(*string)(&e.Kind),
			&ts,
			&e.Direction,
			&e.TabID,
			&private,
			&e.Message,
			&e.Detail,
		); err != nil {
			return nil, fmt.Errorf("scan telemetry event: %w", err)
		}
		e.Timestamp = parseTime(ts)
		e.Private = private != 0
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate telemetry events: %w", err)
	}
	return events, nil
}

// Reset deletes all recorded events.
func (r *SQLiteRecorder) Reset() error {
	if _, err := r.db.Exec(`DELETE FROM gesture_events`); err != nil {
		return fmt.Errorf("reset telemetry: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

// formatTime formats a time.Time as RFC3339Nano for storage.
// Zero time returns empty string.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses an RFC3339Nano string.
// Returns zero time on empty or invalid input.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
