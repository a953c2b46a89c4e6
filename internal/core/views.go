package core

import (
	"sort"
	"time"

	"github.com/chiru-app/chiru/internal/model"
)

// TaskRef is a task together with the project it lives in, for views that
// cut across projects.
type TaskRef struct {
	Task        model.TodoItem
	ProjectID   string
	ProjectName string
}

// IsOverdue reports whether an incomplete task's due date has passed.
// Tasks due today are not overdue.
func IsOverdue(t model.TodoItem, now time.Time) bool {
	return !t.Completed && t.DueDate != "" && t.DueDate < DateKey(now)
}

func collectTasks(doc model.AppData, keep func(model.TodoItem) bool) []TaskRef {
	var refs []TaskRef
	for _, l := range doc.Todos {
		for _, t := range l.Items {
			if keep(t) {
				refs = append(refs, TaskRef{Task: t, ProjectID: l.ID, ProjectName: l.Name})
			}
		}
	}
	return refs
}

// TodayTasks lists incomplete tasks due today across all projects, most
// urgent priority first.
func TodayTasks(doc model.AppData, now time.Time) []TaskRef {
	today := DateKey(now)
	refs := collectTasks(doc, func(t model.TodoItem) bool {
		return !t.Completed && t.DueDate == today
	})
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Task.Priority < refs[j].Task.Priority
	})
	return refs
}

// UpcomingTasks lists incomplete tasks with a due date after today,
// soonest first.
func UpcomingTasks(doc model.AppData, now time.Time) []TaskRef {
	today := DateKey(now)
	refs := collectTasks(doc, func(t model.TodoItem) bool {
		return !t.Completed && t.DueDate != "" && t.DueDate > today
	})
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Task.DueDate < refs[j].Task.DueDate
	})
	return refs
}

// CompletedTasks lists completed tasks across all projects, most recently
// created first.
func CompletedTasks(doc model.AppData) []TaskRef {
	refs := collectTasks(doc, func(t model.TodoItem) bool { return t.Completed })
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Task.CreatedAt > refs[j].Task.CreatedAt
	})
	return refs
}

// ProjectTasks lists one project's tasks, incomplete before completed and
// by priority within each group. An unknown project yields nil.
func ProjectTasks(doc model.AppData, projectID string) []model.TodoItem {
	var items []model.TodoItem
	for _, l := range doc.Todos {
		if l.ID == projectID {
			items = append([]model.TodoItem(nil), l.Items...)
			break
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Completed != items[j].Completed {
			return !items[i].Completed
		}
		return items[i].Priority < items[j].Priority
	})
	return items
}

// ChildProjects lists the projects nested directly under parentID; the
// empty string selects the roots.
func ChildProjects(doc model.AppData, parentID string) []model.TodoList {
	var out []model.TodoList
	for _, l := range doc.Todos {
		if l.ParentID == parentID {
			out = append(out, l)
		}
	}
	return out
}

// ProjectStats summarizes one project's task load.
type ProjectStats struct {
	ProjectID  string
	Name       string
	Total      int
	Incomplete int
	Overdue    int
}

// AllProjectStats computes per-project task counts, in document order.
func AllProjectStats(doc model.AppData, now time.Time) []ProjectStats {
	stats := make([]ProjectStats, 0, len(doc.Todos))
	for _, l := range doc.Todos {
		st := ProjectStats{ProjectID: l.ID, Name: l.Name, Total: len(l.Items)}
		for _, t := range l.Items {
			if !t.Completed {
				st.Incomplete++
			}
			if IsOverdue(t, now) {
				st.Overdue++
			}
		}
		stats = append(stats, st)
	}
	return stats
}
