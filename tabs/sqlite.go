package tabs

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register sqlite driver
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS session_tabs (
	id       TEXT    PRIMARY KEY,
	url      TEXT    NOT NULL DEFAULT '',
	title    TEXT    NOT NULL DEFAULT '',
	private  INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	selected INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_session_tabs_order ON session_tabs(private, position);
`

// Session persists the tab collection across runs in a SQLite database.
type Session struct {
	db *sql.DB
}

// OpenSession opens (or creates) the session database at dbPath and runs the
// schema. Use ":memory:" for an in-memory database (useful in tests).
func OpenSession(dbPath string) (*Session, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec(sessionSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run session schema: %w", err)
	}
	return &Session{db: db}, nil
}

// Save replaces the persisted session with the store's current state.
func (s *Session) Save(store *Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin session save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM session_tabs`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	const q = `
		INSERT INTO session_tabs (id, url, title, private, position, selected)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, private := range []bool{false, true} {
		selected, _ := store.SelectedID(private)
		for i, tab := range store.Tabs(private) {
			isSelected := 0
			if tab.ID == selected {
				isSelected = 1
			}
			if _, err := tx.Exec(q, tab.ID, tab.URL, tab.Title, boolInt(private), i, isSelected); err != nil {
				return fmt.Errorf("insert session tab: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session save: %w", err)
	}
	return nil
}

// Load rebuilds a store from the persisted session.
func (s *Session) Load() (*Store, error) {
	rows, err := s.db.Query(`
		SELECT id, url, title, private, selected
		FROM session_tabs
		ORDER BY private, position
	`)
	if err != nil {
		return nil, fmt.Errorf("query session tabs: %w", err)
	}
	defer rows.Close()

	store := NewStore()
	for rows.Next() {
		var tab Tab
		var private, selected int
		if err := rows.Scan(&tab.ID, &tab.URL, &tab.Title, &private, &selected); err != nil {
			return nil, fmt.Errorf("scan session tab: %w", err)
		}
		tab.Private = private != 0
		list := store.list(tab.Private)
		*list = append(*list, tab)
		if selected != 0 {
			store.selected[tab.Private] = tab.ID
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session tabs: %w", err)
	}
	return store, nil
}

// Reset deletes all persisted tabs.
func (s *Session) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM session_tabs`); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Session) Close() error {
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
