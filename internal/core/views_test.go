package core

import (
	"testing"

	"github.com/chiru-app/chiru/internal/model"
)

func viewsFixture() model.AppData {
	today := DateKey(testNow)
	tomorrow := DateKey(testNow.AddDate(0, 0, 1))
	nextWeek := DateKey(testNow.AddDate(0, 0, 7))
	yesterday := DateKey(testNow.AddDate(0, 0, -1))

	return model.AppData{
		Todos: []model.TodoList{
			{
				ID:   "work",
				Name: "Work",
				Items: []model.TodoItem{
					{ID: "w1", Title: "Standup notes", Priority: model.PriorityP3, DueDate: today, CreatedAt: "2026-08-30T09:00:00Z"},
					{ID: "w2", Title: "Ship release", Priority: model.PriorityP1, DueDate: today, CreatedAt: "2026-08-30T10:00:00Z"},
					{ID: "w3", Title: "Plan offsite", Priority: model.PriorityP2, DueDate: nextWeek, CreatedAt: "2026-08-29T09:00:00Z"},
					{ID: "w4", Title: "Old report", Priority: model.PriorityP2, DueDate: yesterday, CreatedAt: "2026-08-20T09:00:00Z"},
					{ID: "w5", Title: "Done thing", Priority: model.PriorityP4, Completed: true, CreatedAt: "2026-08-31T09:00:00Z"},
				},
			},
			{
				ID:   "home",
				Name: "Home",
				Items: []model.TodoItem{
					{ID: "h1", Title: "Water plants", Priority: model.PriorityP4, DueDate: tomorrow, CreatedAt: "2026-08-28T09:00:00Z"},
					{ID: "h2", Title: "Paid bills", Priority: model.PriorityP3, Completed: true, CreatedAt: "2026-09-01T08:00:00Z"},
				},
			},
		},
	}
}

func taskIDs(refs []TaskRef) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.Task.ID
	}
	return ids
}

func sameIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTodayTasks(t *testing.T) {
	got := taskIDs(TodayTasks(viewsFixture(), testNow))
	want := []string{"w2", "w1"}
	if !sameIDs(got, want) {
		t.Errorf("TodayTasks = %v, want %v", got, want)
	}
}

func TestUpcomingTasks(t *testing.T) {
	got := taskIDs(UpcomingTasks(viewsFixture(), testNow))
	want := []string{"h1", "w3"}
	if !sameIDs(got, want) {
		t.Errorf("UpcomingTasks = %v, want %v", got, want)
	}
}

func TestCompletedTasks(t *testing.T) {
	got := taskIDs(CompletedTasks(viewsFixture()))
	want := []string{"h2", "w5"}
	if !sameIDs(got, want) {
		t.Errorf("CompletedTasks = %v, want %v", got, want)
	}
}

func TestProjectTasksOrdering(t *testing.T) {
	items := ProjectTasks(viewsFixture(), "work")
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	wantOrder := []string{"w2", "w3", "w4", "w1", "w5"}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Fatalf("position %d = %s, want %s (full order %v)", i, items[i].ID, want, items)
		}
	}

	if got := ProjectTasks(viewsFixture(), "missing"); got != nil {
		t.Errorf("unknown project returned %v, want nil", got)
	}
}

func TestIsOverdue(t *testing.T) {
	today := DateKey(testNow)
	yesterday := DateKey(testNow.AddDate(0, 0, -1))

	tests := []struct {
		name string
		task model.TodoItem
		want bool
	}{
		{name: "past due", task: model.TodoItem{DueDate: yesterday}, want: true},
		{name: "due today", task: model.TodoItem{DueDate: today}, want: false},
		{name: "no due date", task: model.TodoItem{}, want: false},
		{name: "completed past due", task: model.TodoItem{DueDate: yesterday, Completed: true}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.task, testNow); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllProjectStats(t *testing.T) {
	stats := AllProjectStats(viewsFixture(), testNow)
	if len(stats) != 2 {
		t.Fatalf("got %d stats, want 2", len(stats))
	}

	work := stats[0]
	if work.Name != "Work" || work.Total != 5 || work.Incomplete != 4 || work.Overdue != 1 {
		t.Errorf("work stats = %+v", work)
	}
	home := stats[1]
	if home.Total != 2 || home.Incomplete != 1 || home.Overdue != 0 {
		t.Errorf("home stats = %+v", home)
	}
}

func TestChildProjects(t *testing.T) {
	doc := model.AppData{Todos: []model.TodoList{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "d", Name: "D", ParentID: "b"},
	}}

	roots := ChildProjects(doc, "")
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Errorf("roots = %v", roots)
	}
	children := ChildProjects(doc, "a")
	if len(children) != 2 {
		t.Errorf("children of a = %v", children)
	}
}
