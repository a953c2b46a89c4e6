package core

import (
	"strings"

	"github.com/google/uuid"

	"github.com/chiru-app/chiru/internal/model"
)

func findHabit(doc *model.AppData, id string) *model.Habit {
	for i := range doc.Habits {
		if doc.Habits[i].ID == id {
			return &doc.Habits[i]
		}
	}
	return nil
}

func applyAddHabit(doc *model.AppData, c AddHabit) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	category := c.Category
	if category == "" {
		category = "Other"
	}
	doc.Habits = append(doc.Habits, model.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Color:          c.Color,
		Category:       category,
		CompletedDates: []string{},
	})
}

func applyUpdateHabit(doc *model.AppData, c UpdateHabit) {
	if strings.TrimSpace(c.Habit.Name) == "" {
		return
	}
	for i := range doc.Habits {
		if doc.Habits[i].ID == c.Habit.ID {
			doc.Habits[i] = c.Habit.Clone()
			return
		}
	}
}

// applyToggleHabitDate adds the day when absent and removes it when
// present, so CompletedDates stays a set.
func applyToggleHabitDate(doc *model.AppData, c ToggleHabitDate) {
	h := findHabit(doc, c.HabitID)
	if h == nil || c.Date == "" {
		return
	}
	for i, d := range h.CompletedDates {
		if d == c.Date {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			return
		}
	}
	h.CompletedDates = append(h.CompletedDates, c.Date)
}

func applyDeleteHabits(doc *model.AppData, c DeleteHabits) {
	doc.Habits = deleteByID(doc.Habits, func(h model.Habit) string { return h.ID }, c.IDs)
}
