package store

import (
	"context"
	"testing"
	"time"
)

func TestLoadOrDefaultCorruptPayload(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer s.Close()

	_, err = s.db.Exec(
		"INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)",
		DefaultSlot, "{this is not json", time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("seeding corrupt payload: %v", err)
	}

	doc := s.LoadOrDefault(context.Background(), DefaultSlot)
	if doc.Profile.Name != "User" || doc.Theme != "midnight-pulse" {
		t.Errorf("corrupt slot returned %+v, want the default document", doc)
	}
}

func TestLoadOrDefaultNormalizesPartialDocument(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer s.Close()

	// A document written by hand or by an older version may omit
	// collections entirely.
	_, err = s.db.Exec(
		"INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)",
		DefaultSlot, `{"profile":{"name":"Ada"},"theme":"light"}`, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("seeding partial payload: %v", err)
	}

	doc := s.LoadOrDefault(context.Background(), DefaultSlot)
	if doc.Profile.Name != "Ada" || doc.Theme != "light" {
		t.Errorf("partial slot returned %+v", doc)
	}
	if doc.Subjects == nil || doc.Habits == nil || doc.Videos == nil || doc.Todos == nil {
		t.Error("collections were not normalized to empty slices")
	}
}
