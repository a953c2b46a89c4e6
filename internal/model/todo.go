package model

// Task priority levels, most urgent first. String order matches urgency
// order, so sorting by the raw value sorts by priority.
const (
	PriorityP1 = "P1" // Urgent
	PriorityP2 = "P2" // High
	PriorityP3 = "P3" // Medium
	PriorityP4 = "P4" // Low
)

// Subtask is a simple checkable entry within a task.
type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TodoItem is a task within a project list.
type TodoItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"` // "YYYY-MM-DD", empty means none
	Subtasks    []Subtask `json:"subtasks"`
	CreatedAt   string    `json:"createdAt"` // RFC 3339
}

// TodoList is a project holding tasks. Projects form a forest: a list with
// a non-empty ParentID nests under that parent.
type TodoList struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Color    string     `json:"color"`
	Items    []TodoItem `json:"items"`
	ParentID string     `json:"parentId,omitempty"`
}

// Clone returns a deep copy of the list.
func (l TodoList) Clone() TodoList {
	out := l
	out.Items = make([]TodoItem, len(l.Items))
	for i, it := range l.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// Clone returns a deep copy of the task.
func (t TodoItem) Clone() TodoItem {
	out := t
	out.Subtasks = append([]Subtask(nil), t.Subtasks...)
	return out
}
