package core

import (
	"testing"

	"github.com/chiru-app/chiru/internal/model"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{name: "zero total", completed: 0, total: 0, want: 0},
		{name: "zero completed", completed: 0, total: 4, want: 0},
		{name: "half", completed: 2, total: 4, want: 50},
		{name: "all", completed: 4, total: 4, want: 100},
		{name: "third", completed: 1, total: 3, want: 100.0 / 3},
		{name: "negative total", completed: 1, total: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.completed, tt.total)
			if got != tt.want {
				t.Errorf("Progress(%d, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("Progress(%d, %d) = %v, out of [0,100]", tt.completed, tt.total, got)
			}
		})
	}
}

func TestSubjectProgress(t *testing.T) {
	subject := model.Subject{
		Name: "Algebra",
		Topics: []model.Topic{
			{
				Name: "Linear Equations",
				SubTopics: []model.SubTopic{
					{ID: "a", Name: "Single variable", Completed: true},
					{ID: "b", Name: "Systems"},
				},
			},
		},
	}

	if got := SubjectProgress(subject); got != 50 {
		t.Fatalf("SubjectProgress = %v, want 50", got)
	}

	subject.Topics[0].SubTopics[1].Completed = true
	if got := SubjectProgress(subject); got != 100 {
		t.Fatalf("SubjectProgress after completing all = %v, want 100", got)
	}
}

func TestSubjectProgressNoSubtopics(t *testing.T) {
	subject := model.Subject{
		Name:   "History",
		Topics: []model.Topic{{Name: "Antiquity"}},
	}
	if got := SubjectProgress(subject); got != 0 {
		t.Errorf("SubjectProgress with no subtopics = %v, want 0", got)
	}
}

func TestVideoProgress(t *testing.T) {
	tests := []struct {
		name    string
		watched int
		total   int
		want    float64
	}{
		{name: "unwatched", watched: 0, total: 600, want: 0},
		{name: "partial", watched: 150, total: 600, want: 25},
		{name: "complete", watched: 600, total: 600, want: 100},
		{name: "zero total", watched: 10, total: 0, want: 0},
		{name: "over total capped", watched: 700, total: 600, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := model.Video{WatchedDuration: tt.watched, TotalDuration: tt.total}
			if got := VideoProgress(v); got != tt.want {
				t.Errorf("VideoProgress = %v, want %v", got, tt.want)
			}
		})
	}
}
