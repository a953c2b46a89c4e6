package core

import (
	"testing"

	"github.com/chiru-app/chiru/internal/model"
)

func addProject(t *testing.T, doc model.AppData, name, parentID string) (model.AppData, string) {
	t.Helper()
	out := Apply(doc, AddProject{Name: name, ParentID: parentID}, testNow)
	if len(out.Todos) != len(doc.Todos)+1 {
		t.Fatalf("AddProject(%q) did not create a project", name)
	}
	return out, out.Todos[len(out.Todos)-1].ID
}

func addTask(t *testing.T, doc model.AppData, projectID, title string) (model.AppData, string) {
	t.Helper()
	out := Apply(doc, AddTask{ProjectID: projectID, Title: title, Priority: model.PriorityP3}, testNow)
	l := findProject(&out, projectID)
	if l == nil || len(l.Items) == 0 {
		t.Fatalf("AddTask(%q) did not create a task", title)
	}
	return out, l.Items[len(l.Items)-1].ID
}

func TestAddProject(t *testing.T) {
	doc := model.DefaultAppData()
	doc, rootID := addProject(t, doc, "Work", "")

	// Nesting under an existing project works.
	doc, childID := addProject(t, doc, "Reports", rootID)
	if got := findProject(&doc, childID).ParentID; got != rootID {
		t.Errorf("child ParentID = %q, want %q", got, rootID)
	}

	// An unknown parent is rejected.
	out := Apply(doc, AddProject{Name: "Orphan", ParentID: "no-such-project"}, testNow)
	if len(out.Todos) != len(doc.Todos) {
		t.Error("AddProject accepted an unknown parent")
	}

	out = Apply(doc, AddProject{Name: "  "}, testNow)
	if len(out.Todos) != len(doc.Todos) {
		t.Error("AddProject accepted a blank name")
	}
}

func TestRenameAndRecolorProject(t *testing.T) {
	doc, id := addProject(t, model.DefaultAppData(), "Work", "")

	doc = Apply(doc, RenameProject{ProjectID: id, Name: "Job"}, testNow)
	if findProject(&doc, id).Name != "Job" {
		t.Error("RenameProject did not stick")
	}

	doc = Apply(doc, RenameProject{ProjectID: id, Name: " "}, testNow)
	if findProject(&doc, id).Name != "Job" {
		t.Error("RenameProject accepted a blank name")
	}

	doc = Apply(doc, SetProjectColor{ProjectID: id, Color: "bg-teal-500"}, testNow)
	if findProject(&doc, id).Color != "bg-teal-500" {
		t.Error("SetProjectColor did not stick")
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	// Work -> Reports -> Q3, plus an unrelated root.
	doc := model.DefaultAppData()
	doc, workID := addProject(t, doc, "Work", "")
	doc, reportsID := addProject(t, doc, "Reports", workID)
	doc, q3ID := addProject(t, doc, "Q3", reportsID)
	doc, homeID := addProject(t, doc, "Home", "")
	doc, _ = addTask(t, doc, q3ID, "Draft summary")

	doc = Apply(doc, DeleteProjects{IDs: []string{workID}}, testNow)

	if len(doc.Todos) != 1 {
		t.Fatalf("got %d projects after cascade, want 1", len(doc.Todos))
	}
	if doc.Todos[0].ID != homeID {
		t.Errorf("survivor = %q, want the unrelated root %q", doc.Todos[0].ID, homeID)
	}
	for _, gone := range []string{workID, reportsID, q3ID} {
		if findProject(&doc, gone) != nil {
			t.Errorf("project %s survived the cascade", gone)
		}
	}
}

func TestDeleteProjectsIgnoresUnknownIDs(t *testing.T) {
	doc, id := addProject(t, model.DefaultAppData(), "Work", "")
	out := Apply(doc, DeleteProjects{IDs: []string{"missing"}}, testNow)
	if len(out.Todos) != 1 || out.Todos[0].ID != id {
		t.Error("deleting an unknown project ID changed the forest")
	}
}

func TestTaskLifecycle(t *testing.T) {
	doc, projectID := addProject(t, model.DefaultAppData(), "Work", "")
	doc, taskID := addTask(t, doc, projectID, "Write report")

	task := *findTask(findProject(&doc, projectID), taskID)
	if task.CreatedAt == "" {
		t.Error("task has no creation timestamp")
	}
	if task.Priority != model.PriorityP3 {
		t.Errorf("priority = %q, want P3", task.Priority)
	}

	task.Title = "Write quarterly report"
	task.DueDate = "2026-09-05"
	doc = Apply(doc, UpdateTask{ProjectID: projectID, Task: task}, testNow)
	got := findTask(findProject(&doc, projectID), taskID)
	if got.Title != "Write quarterly report" || got.DueDate != "2026-09-05" {
		t.Errorf("updated task = %+v", got)
	}

	doc = Apply(doc, ToggleTask{ProjectID: projectID, TaskID: taskID}, testNow)
	if !findTask(findProject(&doc, projectID), taskID).Completed {
		t.Error("ToggleTask did not complete the task")
	}
	doc = Apply(doc, ToggleTask{ProjectID: projectID, TaskID: taskID}, testNow)
	if findTask(findProject(&doc, projectID), taskID).Completed {
		t.Error("second ToggleTask did not reopen the task")
	}

	doc = Apply(doc, DeleteTask{ProjectID: projectID, TaskID: taskID}, testNow)
	if findTask(findProject(&doc, projectID), taskID) != nil {
		t.Error("DeleteTask left the task behind")
	}
}

func TestSubtasks(t *testing.T) {
	doc, projectID := addProject(t, model.DefaultAppData(), "Work", "")
	doc, taskID := addTask(t, doc, projectID, "Write report")

	doc = Apply(doc, AddSubtask{ProjectID: projectID, TaskID: taskID, Text: "Outline"}, testNow)
	doc = Apply(doc, AddSubtask{ProjectID: projectID, TaskID: taskID, Text: "Draft"}, testNow)
	task := findTask(findProject(&doc, projectID), taskID)
	if len(task.Subtasks) != 2 {
		t.Fatalf("got %d subtasks, want 2", len(task.Subtasks))
	}

	subID := task.Subtasks[0].ID
	doc = Apply(doc, ToggleSubtask{ProjectID: projectID, TaskID: taskID, SubtaskID: subID}, testNow)
	if !findTask(findProject(&doc, projectID), taskID).Subtasks[0].Completed {
		t.Error("ToggleSubtask did not complete the subtask")
	}

	doc = Apply(doc, DeleteSubtask{ProjectID: projectID, TaskID: taskID, SubtaskID: subID}, testNow)
	task = findTask(findProject(&doc, projectID), taskID)
	if len(task.Subtasks) != 1 || task.Subtasks[0].Text != "Draft" {
		t.Errorf("subtasks after delete = %+v", task.Subtasks)
	}
}

func TestMoveTaskRoundTrip(t *testing.T) {
	doc := model.DefaultAppData()
	doc, srcID := addProject(t, doc, "Work", "")
	doc, dstID := addProject(t, doc, "Home", "")
	doc, taskID := addTask(t, doc, srcID, "Buy groceries")
	before := docJSON(t, doc)

	moved := Apply(doc, MoveTask{TaskID: taskID, FromProjectID: srcID, ToProjectID: dstID}, testNow)
	if len(findProject(&moved, srcID).Items) != 0 {
		t.Fatal("task still present in the source project")
	}
	if len(findProject(&moved, dstID).Items) != 1 {
		t.Fatal("task missing from the destination project")
	}

	// Moving back restores the original document exactly.
	back := Apply(moved, MoveTask{TaskID: taskID, FromProjectID: dstID, ToProjectID: srcID}, testNow)
	if docJSON(t, back) != before {
		t.Error("round-trip move did not restore the document")
	}
}

func TestMoveTaskNoOps(t *testing.T) {
	doc := model.DefaultAppData()
	doc, srcID := addProject(t, doc, "Work", "")
	doc, dstID := addProject(t, doc, "Home", "")
	doc, taskID := addTask(t, doc, srcID, "Buy groceries")
	before := docJSON(t, doc)

	cases := []struct {
		name string
		cmd  MoveTask
	}{
		{"same project", MoveTask{TaskID: taskID, FromProjectID: srcID, ToProjectID: srcID}},
		{"unknown source", MoveTask{TaskID: taskID, FromProjectID: "missing", ToProjectID: dstID}},
		{"unknown destination", MoveTask{TaskID: taskID, FromProjectID: srcID, ToProjectID: "missing"}},
		{"unknown task", MoveTask{TaskID: "missing", FromProjectID: srcID, ToProjectID: dstID}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(doc, tt.cmd, testNow)
			if docJSON(t, out) != before {
				t.Error("no-op move changed the document")
			}
		})
	}
}
