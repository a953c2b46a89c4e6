package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chiru-app/chiru/internal/model"
)

var snapNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)

func fakeGemini(t *testing.T, status int, reply string, capture *apiRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decoding request body: %v", err)
			}
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": reply}}}},
			},
		})
	}))
}

func TestSummarizeProgressOffline(t *testing.T) {
	g := New("", "", 0)
	got := g.SummarizeProgress(context.Background(), model.DefaultAppData(), snapNow)
	if got != OfflineMessage {
		t.Errorf("got %q, want the offline message", got)
	}
}

func TestRewriteTextOffline(t *testing.T) {
	g := New("", "", 0)
	got := g.RewriteText(context.Background(), "text", "shorten")
	if got != OfflineMessage {
		t.Errorf("got %q, want the offline message", got)
	}
}

func TestSummarizeProgress(t *testing.T) {
	var captured apiRequest
	srv := fakeGemini(t, http.StatusOK, "**You're doing great!** Keep the streak going.", &captured)
	defer srv.Close()

	g := New("test-key", "", 0)
	g.baseURL = srv.URL

	doc := model.DefaultAppData()
	doc.Habits = []model.Habit{{
		Name:           "Meditate",
		Category:       "Mindfulness",
		CompletedDates: []string{"2026-09-01"},
	}}

	got := g.SummarizeProgress(context.Background(), doc, snapNow)
	if !strings.Contains(got, "doing great") {
		t.Errorf("summary = %q", got)
	}

	if len(captured.Contents) != 1 || len(captured.Contents[0].Parts) != 1 {
		t.Fatalf("request contents = %+v", captured.Contents)
	}
	prompt := captured.Contents[0].Parts[0].Text
	for _, want := range []string{"Chiru", "Meditate", `"current_streak": 1`, "under 75 words"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestSummarizeProgressServerError(t *testing.T) {
	srv := fakeGemini(t, http.StatusInternalServerError, "", nil)
	defer srv.Close()

	g := New("test-key", "", 0)
	g.baseURL = srv.URL

	got := g.SummarizeProgress(context.Background(), model.DefaultAppData(), snapNow)
	if got != ErrorMessage {
		t.Errorf("got %q, want the fixed error message", got)
	}
}

func TestSummarizeProgressUnreachable(t *testing.T) {
	g := New("test-key", "", 0)
	g.baseURL = "http://127.0.0.1:1"

	got := g.SummarizeProgress(context.Background(), model.DefaultAppData(), snapNow)
	if got != ErrorMessage {
		t.Errorf("got %q, want the fixed error message", got)
	}
}

func TestRewriteText(t *testing.T) {
	var captured apiRequest
	srv := fakeGemini(t, http.StatusOK, "Shorter note.", &captured)
	defer srv.Close()

	g := New("test-key", "", 0)
	g.baseURL = srv.URL

	got := g.RewriteText(context.Background(), "A very long note about algebra.", "make it shorter")
	if got != "Shorter note." {
		t.Errorf("rewritten = %q", got)
	}

	prompt := captured.Contents[0].Parts[0].Text
	for _, want := range []string{"make it shorter", "A very long note about algebra.", "ONLY with the rewritten text"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSnapshot(t *testing.T) {
	doc := model.AppData{
		Subjects: []model.Subject{{
			Name: "Algebra",
			Topics: []model.Topic{{
				SubTopics: []model.SubTopic{
					{Completed: true},
					{Completed: false},
				},
			}},
			SessionTimestamps: []string{"2026-09-01", "2026-08-31"},
		}},
		Habits: []model.Habit{{
			Name:           "Run",
			Category:       "Fitness",
			CompletedDates: []string{"2026-08-20"},
		}},
		Videos: []model.Video{{
			Name:            "Lecture",
			TotalDuration:   600,
			WatchedDuration: 150,
		}},
		Todos: []model.TodoList{{
			Name: "Work",
			Items: []model.TodoItem{
				{Title: "Done", Completed: true},
				{Title: "Overdue", DueDate: "2026-08-30"},
			},
		}},
	}

	snap := buildSnapshot(doc, snapNow)

	if s := snap.Subjects[0]; s.Progress != 50 || s.StudyStreak != 2 || s.SubtopicsTotal != 2 {
		t.Errorf("subject snapshot = %+v", s)
	}
	if h := snap.Habits[0]; h.CurrentStreak != 0 {
		t.Errorf("stale habit streak = %d, want 0", h.CurrentStreak)
	}
	if v := snap.Videos[0]; v.Progress != 25 {
		t.Errorf("video progress = %v, want 25", v.Progress)
	}
	if td := snap.Todos[0]; td.TotalTasks != 2 || td.IncompleteTasks != 1 || td.OverdueTasks != 1 {
		t.Errorf("todo snapshot = %+v", td)
	}
}

func TestTranscript(t *testing.T) {
	tr := NewTranscript()
	tr.Add(RoleUser, "Summarize my progress")
	tr.Add(RoleAssistant, "You're doing great.")

	entries := tr.Entries()
	if len(entries) != 2 || entries[0].Role != RoleUser || entries[1].Role != RoleAssistant {
		t.Fatalf("entries = %+v", entries)
	}

	for i := 0; i < 30; i++ {
		tr.Add(RoleUser, "again")
	}
	if tr.Len() != 20 {
		t.Errorf("len after overflow = %d, want 20", tr.Len())
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("len after reset = %d, want 0", tr.Len())
	}
}
