package ai

import (
	"time"

	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/model"
)

// snapshot is the structured progress summary sent to the coach. Only
// aggregates go over the wire, never notes or task bodies.
type snapshot struct {
	Subjects []subjectSnapshot `json:"subjects"`
	Habits   []habitSnapshot   `json:"habits"`
	Videos   []videoSnapshot   `json:"videos"`
	Todos    []todoSnapshot    `json:"todos"`
}

type subjectSnapshot struct {
	Name               string  `json:"name"`
	Progress           float64 `json:"progress"`
	SubtopicsTotal     int     `json:"subtopics_total"`
	SubtopicsCompleted int     `json:"subtopics_completed"`
	StudyStreak        int     `json:"study_streak"`
}

type habitSnapshot struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	CurrentStreak int    `json:"current_streak"`
}

type videoSnapshot struct {
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

type todoSnapshot struct {
	ListName        string `json:"listName"`
	TotalTasks      int    `json:"totalTasks"`
	IncompleteTasks int    `json:"incompleteTasks"`
	OverdueTasks    int    `json:"overdueTasks"`
}

// buildSnapshot condenses the document into per-entity aggregates.
func buildSnapshot(doc model.AppData, now time.Time) snapshot {
	snap := snapshot{
		Subjects: make([]subjectSnapshot, 0, len(doc.Subjects)),
		Habits:   make([]habitSnapshot, 0, len(doc.Habits)),
		Videos:   make([]videoSnapshot, 0, len(doc.Videos)),
		Todos:    make([]todoSnapshot, 0, len(doc.Todos)),
	}

	for _, s := range doc.Subjects {
		var total, completed int
		for _, topic := range s.Topics {
			for _, st := range topic.SubTopics {
				total++
				if st.Completed {
					completed++
				}
			}
		}
		snap.Subjects = append(snap.Subjects, subjectSnapshot{
			Name:               s.Name,
			Progress:           core.Progress(completed, total),
			SubtopicsTotal:     total,
			SubtopicsCompleted: completed,
			StudyStreak:        core.Streak(s.SessionTimestamps, now),
		})
	}

	for _, h := range doc.Habits {
		snap.Habits = append(snap.Habits, habitSnapshot{
			Name:          h.Name,
			Category:      h.Category,
			CurrentStreak: core.Streak(h.CompletedDates, now),
		})
	}

	for _, v := range doc.Videos {
		snap.Videos = append(snap.Videos, videoSnapshot{
			Name:     v.Name,
			Progress: core.VideoProgress(v),
		})
	}

	for _, st := range core.AllProjectStats(doc, now) {
		snap.Todos = append(snap.Todos, todoSnapshot{
			ListName:        st.Name,
			TotalTasks:      st.Total,
			IncompleteTasks: st.Incomplete,
			OverdueTasks:    st.Overdue,
		})
	}

	return snap
}
