package core

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chiru-app/chiru/internal/model"
)

func findProject(doc *model.AppData, id string) *model.TodoList {
	for i := range doc.Todos {
		if doc.Todos[i].ID == id {
			return &doc.Todos[i]
		}
	}
	return nil
}

func findTask(l *model.TodoList, id string) *model.TodoItem {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

func applyAddProject(doc *model.AppData, c AddProject) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	// A new project gets a fresh ID, so attaching it under an existing
	// parent can never close a cycle.
	if c.ParentID != "" && findProject(doc, c.ParentID) == nil {
		return
	}
	doc.Todos = append(doc.Todos, model.TodoList{
		ID:       uuid.NewString(),
		Name:     name,
		Color:    c.Color,
		Items:    []model.TodoItem{},
		ParentID: c.ParentID,
	})
}

func applyRenameProject(doc *model.AppData, c RenameProject) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	if l := findProject(doc, c.ProjectID); l != nil {
		l.Name = name
	}
}

func applySetProjectColor(doc *model.AppData, c SetProjectColor) {
	if l := findProject(doc, c.ProjectID); l != nil {
		l.Color = c.Color
	}
}

// descendantClosure expands a set of project IDs with every project that
// transitively nests under one of them. The loop re-scans until no new
// member appears, so it terminates even if stored parent links were
// somehow cyclic.
func descendantClosure(lists []model.TodoList, ids []string) map[string]struct{} {
	closure := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		closure[id] = struct{}{}
	}
	for {
		grew := false
		for _, l := range lists {
			if _, in := closure[l.ID]; in {
				continue
			}
			if l.ParentID == "" {
				continue
			}
			if _, parentIn := closure[l.ParentID]; parentIn {
				closure[l.ID] = struct{}{}
				grew = true
			}
		}
		if !grew {
			return closure
		}
	}
}

// applyDeleteProjects discards the named projects, every descendant
// project, and all of their tasks.
func applyDeleteProjects(doc *model.AppData, c DeleteProjects) {
	if len(c.IDs) == 0 {
		return
	}
	closure := descendantClosure(doc.Todos, c.IDs)
	kept := doc.Todos[:0]
	for _, l := range doc.Todos {
		if _, gone := closure[l.ID]; !gone {
			kept = append(kept, l)
		}
	}
	doc.Todos = kept
}

func applyAddTask(doc *model.AppData, c AddTask, now time.Time) {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return
	}
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	priority := c.Priority
	switch priority {
	case model.PriorityP1, model.PriorityP2, model.PriorityP3, model.PriorityP4:
	default:
		priority = model.PriorityP4
	}
	l.Items = append(l.Items, model.TodoItem{
		ID:          uuid.NewString(),
		Title:       title,
		Description: c.Description,
		Priority:    priority,
		DueDate:     c.DueDate,
		Subtasks:    []model.Subtask{},
		CreatedAt:   now.Format(time.RFC3339),
	})
}

func applyUpdateTask(doc *model.AppData, c UpdateTask) {
	if strings.TrimSpace(c.Task.Title) == "" {
		return
	}
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	for i := range l.Items {
		if l.Items[i].ID == c.Task.ID {
			l.Items[i] = c.Task.Clone()
			return
		}
	}
}

func applyDeleteTask(doc *model.AppData, c DeleteTask) {
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	for i := range l.Items {
		if l.Items[i].ID == c.TaskID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return
		}
	}
}

func applyToggleTask(doc *model.AppData, c ToggleTask) {
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	if t := findTask(l, c.TaskID); t != nil {
		t.Completed = !t.Completed
	}
}

func applyAddSubtask(doc *model.AppData, c AddSubtask) {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return
	}
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	t := findTask(l, c.TaskID)
	if t == nil {
		return
	}
	t.Subtasks = append(t.Subtasks, model.Subtask{
		ID:   uuid.NewString(),
		Text: text,
	})
}

func applyToggleSubtask(doc *model.AppData, c ToggleSubtask) {
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	t := findTask(l, c.TaskID)
	if t == nil {
		return
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == c.SubtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			return
		}
	}
}

func applyDeleteSubtask(doc *model.AppData, c DeleteSubtask) {
	l := findProject(doc, c.ProjectID)
	if l == nil {
		return
	}
	t := findTask(l, c.TaskID)
	if t == nil {
		return
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == c.SubtaskID {
			t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
			return
		}
	}
}

// applyMoveTask relocates one task between projects. The task keeps its
// identity and content; it is removed from the source and appended to the
// destination in the same step, so it is never duplicated or dropped.
func applyMoveTask(doc *model.AppData, c MoveTask) {
	if c.FromProjectID == c.ToProjectID {
		return
	}
	src := findProject(doc, c.FromProjectID)
	dst := findProject(doc, c.ToProjectID)
	if src == nil || dst == nil {
		return
	}
	for i := range src.Items {
		if src.Items[i].ID == c.TaskID {
			task := src.Items[i]
			src.Items = append(src.Items[:i], src.Items[i+1:]...)
			dst.Items = append(dst.Items, task)
			return
		}
	}
}
