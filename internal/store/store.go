// Package store provides SQLite-based persistence for the session and sent-message history.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/xonecas/chatbridge/internal/config"
)

//go:embed schema.sql
var schema string

const (
	currentSchemaVersion = 1
	databaseFile         = "chatbridge.db"
)

// Store is the durable key/value and history store behind the login flow.
type Store struct {
	db *sql.DB
}

// New opens the database in the data directory.
func New() (*Store, error) {
	dir, err := config.EnsureDataDir()
	if err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return Open(filepath.Join(dir, databaseFile))
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection: the TUI is the only writer, and ":memory:" databases are per-connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens an in-memory database for testing.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}
	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// schemaVersion returns the stored version, or 0 for a fresh database.
func (s *Store) schemaVersion() int {
	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return 0
	}
	return version
}

// migrate is forward-only: anything older than the current schema is dropped and
// recreated. Nothing stored here is irreplaceable; the user just logs in again.
func (s *Store) migrate() error {
	version := s.schemaVersion()
	if version == currentSchemaVersion {
		return nil
	}

	if version != 0 {
		log.Info().Int("from", version).Int("to", currentSchemaVersion).Msg("Resetting local store")
		if _, err := s.db.Exec(`
			DROP TABLE IF EXISTS history;
			DROP TABLE IF EXISTS session;
			DROP TABLE IF EXISTS schema_version;
		`); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
