package model

// HabitCategories lists the selectable habit categories.
var HabitCategories = []string{
	"Health", "Fitness", "Learning", "Productivity", "Mindfulness",
	"Social", "Creative", "Personal", "Other",
}

// HabitColors lists the selectable habit accent colors.
var HabitColors = []string{
	"bg-blue-500", "bg-green-500", "bg-purple-500", "bg-red-500",
	"bg-yellow-500", "bg-pink-500", "bg-indigo-500", "bg-teal-500",
}

// Habit is a recurring activity tracked by the set of days it was done.
// CompletedDates holds "YYYY-MM-DD" strings with set semantics.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Color          string   `json:"color"`
	Category       string   `json:"category"`
	CompletedDates []string `json:"completedDates"`
}

// Clone returns a deep copy of the habit.
func (h Habit) Clone() Habit {
	out := h
	out.CompletedDates = append([]string(nil), h.CompletedDates...)
	return out
}
