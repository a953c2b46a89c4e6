package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/chiru-app/chiru/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations. Parent
// directories are created as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// LoadOrDefault returns the document stored under key, or the default
// document when the slot is missing or its payload does not parse.
func (s *SQLiteStore) LoadOrDefault(ctx context.Context, key string) model.AppData {
	var data string
	err := s.db.GetContext(ctx, &data, "SELECT data FROM documents WHERE key = ?", key)
	if err != nil {
		// A missing slot and a broken database both behave like a fresh
		// install.
		return model.DefaultAppData()
	}

	var doc model.AppData
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return model.DefaultAppData()
	}
	normalize(&doc)
	return doc
}

// Save serializes the document and overwrites the slot in one statement.
func (s *SQLiteStore) Save(ctx context.Context, key string, doc model.AppData) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO documents (key, data, updated_at)
		VALUES (?, ?, ?)`,
		key, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", key, err)
	}

	return nil
}

// Delete removes the slot.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting document %s: %w", key, err)
	}
	return nil
}

// normalize fills in nil collections and missing defaults on documents
// written by older versions, so the rest of the app never sees nil slices.
func normalize(doc *model.AppData) {
	if doc.Profile.Name == "" {
		doc.Profile.Name = "User"
	}
	if doc.Theme == "" {
		doc.Theme = "midnight-pulse"
	}
	if doc.Subjects == nil {
		doc.Subjects = []model.Subject{}
	}
	if doc.Habits == nil {
		doc.Habits = []model.Habit{}
	}
	if doc.Videos == nil {
		doc.Videos = []model.Video{}
	}
	if doc.Todos == nil {
		doc.Todos = []model.TodoList{}
	}
}
