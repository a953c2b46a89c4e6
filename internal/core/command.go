package core

import "github.com/chiru-app/chiru/internal/model"

// Command is a single requested change to the application document.
// The set of implementations in this package is closed; Apply ignores
// anything else.
type Command interface {
	isCommand()
}

// Subject commands.

// AddSubject creates a new subject with empty topics.
type AddSubject struct {
	Name        string
	Color       string
	Level       string
	TrackStreak bool
}

// UpdateSubject replaces the subject with the same ID wholesale.
type UpdateSubject struct {
	Subject model.Subject
}

// AddTopic appends a topic to a subject.
type AddTopic struct {
	SubjectID string
	Name      string
}

// AddSubTopic appends a subtopic to a topic.
type AddSubTopic struct {
	SubjectID string
	TopicID   string
	Name      string
}

// ToggleSubTopic flips a subtopic's completed flag.
type ToggleSubTopic struct {
	SubjectID  string
	TopicID    string
	SubTopicID string
}

// SetSubjectNotes replaces a subject's notes.
type SetSubjectNotes struct {
	SubjectID string
	Notes     string
}

// SetTopicNotes replaces a topic's notes.
type SetTopicNotes struct {
	SubjectID string
	TopicID   string
	Notes     string
}

// AddAttachment records attachment metadata on a topic.
type AddAttachment struct {
	SubjectID string
	TopicID   string
	Name      string
	Kind      string
}

// LogStudySession records a study session for today. At most one session
// per calendar day is kept.
type LogStudySession struct {
	SubjectID string
}

// Habit commands.

// AddHabit creates a new habit with no completed dates.
type AddHabit struct {
	Name     string
	Color    string
	Category string
}

// UpdateHabit replaces the habit with the same ID wholesale.
type UpdateHabit struct {
	Habit model.Habit
}

// ToggleHabitDate marks the habit done on the given "YYYY-MM-DD" day, or
// un-marks it when already present.
type ToggleHabitDate struct {
	HabitID string
	Date    string
}

// Video commands.

// AddVideo creates a new video tracker. TotalDuration is in seconds and
// must be positive.
type AddVideo struct {
	Name          string
	Color         string
	TotalDuration int
	TrackStreak   bool
	Link          string
	Description   string
}

// UpdateVideo replaces the video with the same ID wholesale. The watched
// duration is clamped into [0, total].
type UpdateVideo struct {
	Video model.Video
}

// AddWatchTime adds seconds of watch time, clamped to the total, and
// records today's session when streak tracking is on.
type AddWatchTime struct {
	VideoID string
	Seconds int
}

// MarkVideoComplete sets the watched duration to the total.
type MarkVideoComplete struct {
	VideoID string
}

// Settings commands.

// SetProfile replaces the user profile.
type SetProfile struct {
	Profile model.Profile
}

// SetAPIKey stores the AI API key in the document.
type SetAPIKey struct {
	Key string
}

// SetTheme selects a color theme by ID.
type SetTheme struct {
	Theme string
}

// DeleteSubjects removes the subjects whose IDs are listed. Unknown IDs
// are ignored.
type DeleteSubjects struct {
	IDs []string
}

// DeleteHabits removes the habits whose IDs are listed. Unknown IDs are
// ignored.
type DeleteHabits struct {
	IDs []string
}

// DeleteVideos removes the videos whose IDs are listed. Unknown IDs are
// ignored.
type DeleteVideos struct {
	IDs []string
}

// Project/task commands.

// AddProject creates a new project list. A non-empty ParentID must name an
// existing project, otherwise the command is a no-op.
type AddProject struct {
	Name     string
	Color    string
	ParentID string
}

// RenameProject changes a project's name.
type RenameProject struct {
	ProjectID string
	Name      string
}

// SetProjectColor changes a project's accent color.
type SetProjectColor struct {
	ProjectID string
	Color     string
}

// DeleteProjects removes the listed projects together with every
// descendant project and all contained tasks. Unknown IDs are ignored.
type DeleteProjects struct {
	IDs []string
}

// AddTask appends a task to a project.
type AddTask struct {
	ProjectID   string
	Title       string
	Description string
	Priority    string
	DueDate     string
}

// UpdateTask replaces the task with the same ID within a project.
type UpdateTask struct {
	ProjectID string
	Task      model.TodoItem
}

// DeleteTask removes a task from a project.
type DeleteTask struct {
	ProjectID string
	TaskID    string
}

// ToggleTask flips a task's completed flag.
type ToggleTask struct {
	ProjectID string
	TaskID    string
}

// AddSubtask appends a subtask to a task.
type AddSubtask struct {
	ProjectID string
	TaskID    string
	Text      string
}

// ToggleSubtask flips a subtask's completed flag.
type ToggleSubtask struct {
	ProjectID string
	TaskID    string
	SubtaskID string
}

// DeleteSubtask removes a subtask from a task.
type DeleteSubtask struct {
	ProjectID string
	TaskID    string
	SubtaskID string
}

// MoveTask relocates a task from one project to another in a single
// step. Moving within the same project, or naming an unknown project or
// task, leaves the document unchanged.
type MoveTask struct {
	TaskID        string
	FromProjectID string
	ToProjectID   string
}

func (AddSubject) isCommand()        {}
func (UpdateSubject) isCommand()     {}
func (AddTopic) isCommand()          {}
func (AddSubTopic) isCommand()       {}
func (ToggleSubTopic) isCommand()    {}
func (SetSubjectNotes) isCommand()   {}
func (SetTopicNotes) isCommand()     {}
func (AddAttachment) isCommand()     {}
func (LogStudySession) isCommand()   {}
func (AddHabit) isCommand()          {}
func (UpdateHabit) isCommand()       {}
func (ToggleHabitDate) isCommand()   {}
func (AddVideo) isCommand()          {}
func (UpdateVideo) isCommand()       {}
func (AddWatchTime) isCommand()      {}
func (MarkVideoComplete) isCommand() {}
func (SetProfile) isCommand()        {}
func (SetAPIKey) isCommand()         {}
func (SetTheme) isCommand()          {}
func (DeleteSubjects) isCommand()    {}
func (DeleteHabits) isCommand()      {}
func (DeleteVideos) isCommand()      {}
func (AddProject) isCommand()        {}
func (RenameProject) isCommand()     {}
func (SetProjectColor) isCommand()   {}
func (DeleteProjects) isCommand()    {}
func (AddTask) isCommand()           {}
func (UpdateTask) isCommand()        {}
func (DeleteTask) isCommand()        {}
func (ToggleTask) isCommand()        {}
func (AddSubtask) isCommand()        {}
func (ToggleSubtask) isCommand()     {}
func (DeleteSubtask) isCommand()     {}
func (MoveTask) isCommand()          {}
