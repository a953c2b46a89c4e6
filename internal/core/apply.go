package core

import (
	"time"

	"github.com/chiru-app/chiru/internal/model"
)

// Apply executes a command against the document and returns the resulting
// document. The input is never mutated. Invalid commands, such as an empty
// name or an unknown ID, return the document unchanged rather than an
// error; the caller cannot submit anything the reducer cannot absorb.
func Apply(doc model.AppData, cmd Command, now time.Time) model.AppData {
	out := doc.Clone()
	switch c := cmd.(type) {
	case AddSubject:
		applyAddSubject(&out, c)
	case UpdateSubject:
		applyUpdateSubject(&out, c)
	case AddTopic:
		applyAddTopic(&out, c)
	case AddSubTopic:
		applyAddSubTopic(&out, c)
	case ToggleSubTopic:
		applyToggleSubTopic(&out, c)
	case SetSubjectNotes:
		applySetSubjectNotes(&out, c)
	case SetTopicNotes:
		applySetTopicNotes(&out, c)
	case AddAttachment:
		applyAddAttachment(&out, c)
	case LogStudySession:
		applyLogStudySession(&out, c, now)
	case AddHabit:
		applyAddHabit(&out, c)
	case UpdateHabit:
		applyUpdateHabit(&out, c)
	case ToggleHabitDate:
		applyToggleHabitDate(&out, c)
	case AddVideo:
		applyAddVideo(&out, c)
	case UpdateVideo:
		applyUpdateVideo(&out, c)
	case AddWatchTime:
		applyAddWatchTime(&out, c, now)
	case MarkVideoComplete:
		applyMarkVideoComplete(&out, c)
	case SetProfile:
		out.Profile = c.Profile
	case SetAPIKey:
		out.APIKey = c.Key
	case SetTheme:
		applySetTheme(&out, c)
	case DeleteSubjects:
		applyDeleteSubjects(&out, c)
	case DeleteHabits:
		applyDeleteHabits(&out, c)
	case DeleteVideos:
		applyDeleteVideos(&out, c)
	case AddProject:
		applyAddProject(&out, c)
	case RenameProject:
		applyRenameProject(&out, c)
	case SetProjectColor:
		applySetProjectColor(&out, c)
	case DeleteProjects:
		applyDeleteProjects(&out, c)
	case AddTask:
		applyAddTask(&out, c, now)
	case UpdateTask:
		applyUpdateTask(&out, c)
	case DeleteTask:
		applyDeleteTask(&out, c)
	case ToggleTask:
		applyToggleTask(&out, c)
	case AddSubtask:
		applyAddSubtask(&out, c)
	case ToggleSubtask:
		applyToggleSubtask(&out, c)
	case DeleteSubtask:
		applyDeleteSubtask(&out, c)
	case MoveTask:
		applyMoveTask(&out, c)
	}
	return out
}

// deleteByID filters a slice of IDs out of a collection, preserving order.
func deleteByID[T any](items []T, id func(T) string, ids []string) []T {
	doomed := make(map[string]struct{}, len(ids))
	for _, v := range ids {
		doomed[v] = struct{}{}
	}
	kept := items[:0]
	for _, item := range items {
		if _, gone := doomed[id(item)]; !gone {
			kept = append(kept, item)
		}
	}
	return kept
}
