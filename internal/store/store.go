package store

import (
	"context"

	"github.com/chiru-app/chiru/internal/model"
)

// DefaultSlot is the document key used by the application. Other slots
// exist only so tests and future tooling can keep documents side by side.
const DefaultSlot = "chiru-app-data"

// Store is the persistence interface for the application document. The
// whole document is written and read as one unit; there is no partial
// update surface.
type Store interface {
	// LoadOrDefault returns the document stored under key. A missing slot
	// or an unreadable payload yields the default document, never an
	// error: local state must not be able to brick startup.
	LoadOrDefault(ctx context.Context, key string) model.AppData

	// Save overwrites the document stored under key.
	Save(ctx context.Context, key string, doc model.AppData) error

	// Delete removes the slot entirely, so the next load starts fresh.
	Delete(ctx context.Context, key string) error

	Close() error
}
