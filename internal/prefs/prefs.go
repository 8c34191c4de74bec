package prefs

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	keyProfileID         = "profile_id"
	keySelectedHousehold = "selected_household_id"
)

// Store persists the small set of values that survive restarts: the logged-in
// profile id and the selected household id.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the preference database at path and runs migrations.
// Pass ":memory:" for an in-memory database in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping prefs db: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get pref %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set pref %q: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM prefs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete pref %q: %w", key, err)
	}
	return nil
}

// ProfileID returns the persisted logged-in profile id, or "" if none.
func (s *Store) ProfileID() (string, error) {
	return s.get(keyProfileID)
}

func (s *Store) SetProfileID(id string) error {
	return s.set(keyProfileID, id)
}

// SelectedHousehold returns the persisted household selection, or "" if none.
func (s *Store) SelectedHousehold() (string, error) {
	return s.get(keySelectedHousehold)
}

func (s *Store) SetSelectedHousehold(id string) error {
	return s.set(keySelectedHousehold, id)
}

func (s *Store) ClearSelectedHousehold() error {
	return s.delete(keySelectedHousehold)
}

// Clear wipes every persisted preference. Used on logout.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM prefs`); err != nil {
		return fmt.Errorf("clear prefs: %w", err)
	}
	return nil
}
