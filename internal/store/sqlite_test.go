package store_test

import (
	"context"
	"testing"

	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/store"
	"github.com/chiru-app/chiru/tests/testutil"
)

func TestLoadOrDefaultMissingSlot(t *testing.T) {
	s := testutil.NewTestStore(t)

	doc := s.LoadOrDefault(context.Background(), store.DefaultSlot)
	if doc.Profile.Name != "User" {
		t.Errorf("default profile name = %q, want User", doc.Profile.Name)
	}
	if doc.Theme != "midnight-pulse" {
		t.Errorf("default theme = %q, want midnight-pulse", doc.Theme)
	}
	if doc.Subjects == nil || doc.Habits == nil || doc.Videos == nil || doc.Todos == nil {
		t.Error("default document has nil collections")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	doc := model.DefaultAppData()
	doc.Profile.Name = "Ada"
	doc.Theme = "hacker-terminal"
	doc.Habits = []model.Habit{{
		ID:             "h1",
		Name:           "Meditate",
		Category:       "Mindfulness",
		CompletedDates: []string{"2026-08-31", "2026-09-01"},
	}}
	doc.Todos = []model.TodoList{{
		ID:   "p1",
		Name: "Work",
		Items: []model.TodoItem{{
			ID:        "t1",
			Title:     "Ship release",
			Priority:  model.PriorityP1,
			DueDate:   "2026-09-02",
			Subtasks:  []model.Subtask{{ID: "s1", Text: "Tag build"}},
			CreatedAt: "2026-09-01T10:00:00Z",
		}},
	}}

	if err := s.Save(ctx, store.DefaultSlot, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.LoadOrDefault(ctx, store.DefaultSlot)
	if got.Profile.Name != "Ada" || got.Theme != "hacker-terminal" {
		t.Errorf("loaded profile/theme = %q/%q", got.Profile.Name, got.Theme)
	}
	if len(got.Habits) != 1 || len(got.Habits[0].CompletedDates) != 2 {
		t.Errorf("loaded habits = %+v", got.Habits)
	}
	if len(got.Todos) != 1 || len(got.Todos[0].Items) != 1 {
		t.Fatalf("loaded todos = %+v", got.Todos)
	}
	if got.Todos[0].Items[0].Subtasks[0].Text != "Tag build" {
		t.Error("subtask did not survive the round trip")
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first := model.DefaultAppData()
	first.Profile.Name = "First"
	if err := s.Save(ctx, store.DefaultSlot, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := model.DefaultAppData()
	second.Profile.Name = "Second"
	if err := s.Save(ctx, store.DefaultSlot, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.LoadOrDefault(ctx, store.DefaultSlot)
	if got.Profile.Name != "Second" {
		t.Errorf("profile name = %q, want Second", got.Profile.Name)
	}
}

func TestLoadOrDefaultSeparateSlots(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	doc := model.DefaultAppData()
	doc.Profile.Name = "Ada"
	if err := s.Save(ctx, "slot-a", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	other := s.LoadOrDefault(ctx, "slot-b")
	if other.Profile.Name != "User" {
		t.Errorf("untouched slot returned %q, want the default document", other.Profile.Name)
	}
}

func TestDeleteResetsSlot(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	doc := model.DefaultAppData()
	doc.Profile.Name = "Ada"
	if err := s.Save(ctx, store.DefaultSlot, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, store.DefaultSlot); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := s.LoadOrDefault(ctx, store.DefaultSlot)
	if got.Profile.Name != "User" {
		t.Errorf("profile after delete = %q, want User", got.Profile.Name)
	}
}
