package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/theme"
)

// SubmittedMsg is dispatched when a form completes; Cmd carries the
// resulting document command.
type SubmittedMsg struct {
	Cmd core.Command
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// SubmittedBatchMsg carries several commands produced by one form. They
// are applied in order.
type SubmittedBatchMsg struct {
	Cmds []core.Command
}

// RewriteRequestMsg asks the assistant to rewrite a piece of text.
type RewriteRequestMsg struct {
	Text        string
	Instruction string
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name          string
	description   string
	color         string
	level         string
	category      string
	priority      string
	dueDate       string
	duration      string
	link          string
	trackStreak   bool
	parentID      string
	targetID      string
	destinationID string
}

// Model is the Bubble Tea model for all create/edit forms. The active
// form is built on demand by one of the Start methods.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	title  string
	submit func(fb *formBindings) tea.Msg
	width  int
	height int
}

// New creates an idle form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Update handles messages for the active form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		submit := m.submit
		fb := m.fb
		m.form = nil
		return m, func() tea.Msg { return submit(fb) }
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the active form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(m.title) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Active reports whether a form is currently open.
func (m Model) Active() bool {
	return m.form != nil
}

func (m *Model) start(title string, submit func(fb *formBindings) core.Command, fields ...huh.Field) tea.Cmd {
	return m.startMsg(title, func(fb *formBindings) tea.Msg {
		return SubmittedMsg{Cmd: submit(fb)}
	}, fields...)
}

func (m *Model) startMsg(title string, submit func(fb *formBindings) tea.Msg, fields ...huh.Field) tea.Cmd {
	*m.fb = formBindings{level: model.LevelMedium, priority: model.PriorityP4, category: "Other"}
	m.title = title
	m.submit = submit
	m.form = huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(m.formWidth()).
		WithHeight(m.formHeight())
	return m.form.Init()
}

// StartSubject opens the new-subject form.
func (m *Model) StartSubject() tea.Cmd {
	return m.start("New Subject",
		func(fb *formBindings) core.Command {
			return core.AddSubject{
				Name:        fb.name,
				Color:       fb.color,
				Level:       fb.level,
				TrackStreak: fb.trackStreak,
			}
		},
		nameField(&m.fb.name, "Subject name"),
		colorField(&m.fb.color),
		huh.NewSelect[string]().
			Title("Level").
			Options(
				huh.NewOption(model.LevelSmall, model.LevelSmall),
				huh.NewOption(model.LevelMedium, model.LevelMedium),
				huh.NewOption(model.LevelLarge, model.LevelLarge),
				huh.NewOption(model.LevelInsane, model.LevelInsane),
			).
			Value(&m.fb.level),
		huh.NewConfirm().
			Title("Track study streak?").
			Value(&m.fb.trackStreak),
	)
}

// StartEditSubject opens the subject form pre-filled for editing.
func (m *Model) StartEditSubject(subject model.Subject) tea.Cmd {
	cmd := m.start("Edit Subject",
		func(fb *formBindings) core.Command {
			updated := subject.Clone()
			updated.Name = fb.name
			updated.Color = fb.color
			updated.Level = fb.level
			updated.TrackStreak = fb.trackStreak
			updated.Notes = fb.description
			return core.UpdateSubject{Subject: updated}
		},
		nameField(&m.fb.name, "Subject name"),
		colorField(&m.fb.color),
		huh.NewSelect[string]().
			Title("Level").
			Options(
				huh.NewOption(model.LevelSmall, model.LevelSmall),
				huh.NewOption(model.LevelMedium, model.LevelMedium),
				huh.NewOption(model.LevelLarge, model.LevelLarge),
				huh.NewOption(model.LevelInsane, model.LevelInsane),
			).
			Value(&m.fb.level),
		huh.NewText().
			Title("Notes").
			Placeholder("Optional notes...").
			Value(&m.fb.description),
		huh.NewConfirm().
			Title("Track study streak?").
			Value(&m.fb.trackStreak),
	)
	m.fb.name = subject.Name
	m.fb.color = subject.Color
	m.fb.level = subject.Level
	m.fb.description = subject.Notes
	m.fb.trackStreak = subject.TrackStreak
	return cmd
}

// StartTopicNotes opens the notes editor for a topic.
func (m *Model) StartTopicNotes(subjectID string, topic model.Topic) tea.Cmd {
	cmd := m.start("Topic Notes",
		func(fb *formBindings) core.Command {
			return core.SetTopicNotes{
				SubjectID: fb.parentID,
				TopicID:   fb.targetID,
				Notes:     fb.description,
			}
		},
		huh.NewText().
			Title("Notes").
			Value(&m.fb.description),
	)
	m.fb.parentID = subjectID
	m.fb.targetID = topic.ID
	m.fb.description = topic.Notes
	return cmd
}

// StartAttachment records attachment metadata on a topic.
func (m *Model) StartAttachment(subjectID, topicID string) tea.Cmd {
	cmd := m.start("Add Attachment",
		func(fb *formBindings) core.Command {
			return core.AddAttachment{
				SubjectID: fb.parentID,
				TopicID:   fb.targetID,
				Name:      fb.name,
				Kind:      fb.category,
			}
		},
		nameField(&m.fb.name, "File name"),
		huh.NewSelect[string]().
			Title("Type").
			Options(
				huh.NewOption("Image", model.AttachmentImage),
				huh.NewOption("PDF", model.AttachmentPDF),
			).
			Value(&m.fb.category),
	)
	m.fb.parentID = subjectID
	m.fb.targetID = topicID
	m.fb.category = model.AttachmentImage
	return cmd
}

// StartTopic opens the new-topic form for a subject.
func (m *Model) StartTopic(subjectID string) tea.Cmd {
	cmd := m.start("New Topic",
		func(fb *formBindings) core.Command {
			return core.AddTopic{SubjectID: fb.parentID, Name: fb.name}
		},
		nameField(&m.fb.name, "Topic name"),
	)
	m.fb.parentID = subjectID
	return cmd
}

// StartSubTopic opens the new-subtopic form for a topic.
func (m *Model) StartSubTopic(subjectID, topicID string) tea.Cmd {
	cmd := m.start("New Subtopic",
		func(fb *formBindings) core.Command {
			return core.AddSubTopic{SubjectID: fb.parentID, TopicID: fb.targetID, Name: fb.name}
		},
		nameField(&m.fb.name, "Subtopic name"),
	)
	m.fb.parentID = subjectID
	m.fb.targetID = topicID
	return cmd
}

// StartHabit opens the new-habit form.
func (m *Model) StartHabit() tea.Cmd {
	categoryOpts := make([]huh.Option[string], len(model.HabitCategories))
	for i, c := range model.HabitCategories {
		categoryOpts[i] = huh.NewOption(c, c)
	}
	habitColorOpts := make([]huh.Option[string], len(model.HabitColors))
	for i, c := range model.HabitColors {
		habitColorOpts[i] = huh.NewOption(strings.TrimPrefix(c, "bg-"), c)
	}

	return m.start("New Habit",
		func(fb *formBindings) core.Command {
			return core.AddHabit{Name: fb.name, Color: fb.color, Category: fb.category}
		},
		nameField(&m.fb.name, "Habit name"),
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOpts...).
			Value(&m.fb.category),
		huh.NewSelect[string]().
			Title("Color").
			Options(habitColorOpts...).
			Value(&m.fb.color),
	)
}

// StartEditHabit opens the habit form pre-filled for editing.
func (m *Model) StartEditHabit(habit model.Habit) tea.Cmd {
	categoryOpts := make([]huh.Option[string], len(model.HabitCategories))
	for i, c := range model.HabitCategories {
		categoryOpts[i] = huh.NewOption(c, c)
	}
	habitColorOpts := make([]huh.Option[string], len(model.HabitColors))
	for i, c := range model.HabitColors {
		habitColorOpts[i] = huh.NewOption(strings.TrimPrefix(c, "bg-"), c)
	}

	cmd := m.start("Edit Habit",
		func(fb *formBindings) core.Command {
			updated := habit.Clone()
			updated.Name = fb.name
			updated.Category = fb.category
			updated.Color = fb.color
			return core.UpdateHabit{Habit: updated}
		},
		nameField(&m.fb.name, "Habit name"),
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOpts...).
			Value(&m.fb.category),
		huh.NewSelect[string]().
			Title("Color").
			Options(habitColorOpts...).
			Value(&m.fb.color),
	)
	m.fb.name = habit.Name
	m.fb.category = habit.Category
	m.fb.color = habit.Color
	return cmd
}

// StartVideo opens the new-video form.
func (m *Model) StartVideo() tea.Cmd {
	return m.start("New Video",
		func(fb *formBindings) core.Command {
			seconds, _ := strconv.Atoi(strings.TrimSpace(fb.duration))
			return core.AddVideo{
				Name:          fb.name,
				Color:         fb.color,
				TotalDuration: seconds * 60,
				TrackStreak:   fb.trackStreak,
				Link:          fb.link,
				Description:   fb.description,
			}
		},
		nameField(&m.fb.name, "Video name"),
		huh.NewInput().
			Title("Total length (minutes)").
			Placeholder("e.g. 45").
			Value(&m.fb.duration).
			Validate(validatePositiveInt),
		colorField(&m.fb.color),
		huh.NewInput().
			Title("Link").
			Placeholder("Optional URL").
			Value(&m.fb.link),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewConfirm().
			Title("Track watch streak?").
			Value(&m.fb.trackStreak),
	)
}

// StartEditVideo opens the video form pre-filled for editing. Durations
// are kept; only the descriptive fields change.
func (m *Model) StartEditVideo(video model.Video) tea.Cmd {
	cmd := m.start("Edit Video",
		func(fb *formBindings) core.Command {
			updated := video.Clone()
			updated.Name = fb.name
			updated.Color = fb.color
			updated.Link = fb.link
			updated.Description = fb.description
			return core.UpdateVideo{Video: updated}
		},
		nameField(&m.fb.name, "Video name"),
		colorField(&m.fb.color),
		huh.NewInput().
			Title("Link").
			Value(&m.fb.link),
		huh.NewText().
			Title("Description").
			Value(&m.fb.description),
	)
	m.fb.name = video.Name
	m.fb.color = video.Color
	m.fb.link = video.Link
	m.fb.description = video.Description
	return cmd
}

// StartWatchTime opens a minutes input that logs watch time for a video.
func (m *Model) StartWatchTime(videoID string) tea.Cmd {
	cmd := m.start("Log Watch Time",
		func(fb *formBindings) core.Command {
			minutes, _ := strconv.Atoi(strings.TrimSpace(fb.duration))
			return core.AddWatchTime{VideoID: fb.targetID, Seconds: minutes * 60}
		},
		huh.NewInput().
			Title("Minutes watched").
			Placeholder("e.g. 20").
			Value(&m.fb.duration).
			Validate(validatePositiveInt),
	)
	m.fb.targetID = videoID
	return cmd
}

// StartProject opens the new-project form. A non-empty parentID nests the
// project under the currently selected one.
func (m *Model) StartProject(parentID string) tea.Cmd {
	cmd := m.start("New Project",
		func(fb *formBindings) core.Command {
			return core.AddProject{Name: fb.name, Color: fb.color, ParentID: fb.parentID}
		},
		nameField(&m.fb.name, "Project name"),
		colorField(&m.fb.color),
	)
	m.fb.parentID = parentID
	return cmd
}

// StartEditProject opens the rename/recolor form for a project.
func (m *Model) StartEditProject(project model.TodoList) tea.Cmd {
	cmd := m.startMsg("Edit Project",
		func(fb *formBindings) tea.Msg {
			return SubmittedBatchMsg{Cmds: []core.Command{
				core.RenameProject{ProjectID: fb.targetID, Name: fb.name},
				core.SetProjectColor{ProjectID: fb.targetID, Color: fb.color},
			}}
		},
		nameField(&m.fb.name, "Project name"),
		colorField(&m.fb.color),
	)
	m.fb.targetID = project.ID
	m.fb.name = project.Name
	m.fb.color = project.Color
	return cmd
}

// StartTask opens the new-task form for a project.
func (m *Model) StartTask(projectID string) tea.Cmd {
	cmd := m.start("New Task",
		func(fb *formBindings) core.Command {
			return core.AddTask{
				ProjectID:   fb.parentID,
				Title:       fb.name,
				Description: fb.description,
				Priority:    fb.priority,
				DueDate:     strings.TrimSpace(fb.dueDate),
			}
		},
		taskFields(m.fb)...,
	)
	m.fb.parentID = projectID
	return cmd
}

// StartEditTask opens the task form pre-filled with an existing task.
func (m *Model) StartEditTask(projectID string, task model.TodoItem) tea.Cmd {
	cmd := m.start("Edit Task",
		func(fb *formBindings) core.Command {
			updated := task.Clone()
			updated.Title = fb.name
			updated.Description = fb.description
			updated.Priority = fb.priority
			updated.DueDate = strings.TrimSpace(fb.dueDate)
			return core.UpdateTask{ProjectID: fb.parentID, Task: updated}
		},
		taskFields(m.fb)...,
	)
	m.fb.parentID = projectID
	m.fb.name = task.Title
	m.fb.description = task.Description
	m.fb.priority = task.Priority
	m.fb.dueDate = task.DueDate
	return cmd
}

// StartMoveTask opens a destination picker for moving a task.
func (m *Model) StartMoveTask(taskID, fromProjectID string, projects []model.TodoList) tea.Cmd {
	opts := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		if p.ID == fromProjectID {
			continue
		}
		opts = append(opts, huh.NewOption(p.Name, p.ID))
	}

	cmd := m.start("Move Task",
		func(fb *formBindings) core.Command {
			return core.MoveTask{
				TaskID:        fb.targetID,
				FromProjectID: fb.parentID,
				ToProjectID:   fb.destinationID,
			}
		},
		huh.NewSelect[string]().
			Title("Destination project").
			Options(opts...).
			Value(&m.fb.destinationID),
	)
	m.fb.targetID = taskID
	m.fb.parentID = fromProjectID
	return cmd
}

// StartSubtask opens the new-subtask form for a task.
func (m *Model) StartSubtask(projectID, taskID string) tea.Cmd {
	cmd := m.start("New Subtask",
		func(fb *formBindings) core.Command {
			return core.AddSubtask{
				ProjectID: fb.parentID,
				TaskID:    fb.targetID,
				Text:      fb.name,
			}
		},
		nameField(&m.fb.name, "Subtask"),
	)
	m.fb.parentID = projectID
	m.fb.targetID = taskID
	return cmd
}

// StartRewrite opens the rewrite helper with the given text pre-filled.
func (m *Model) StartRewrite(text string) tea.Cmd {
	cmd := m.startMsg("Rewrite Text",
		func(fb *formBindings) tea.Msg {
			return RewriteRequestMsg{Text: fb.description, Instruction: fb.name}
		},
		huh.NewText().
			Title("Text").
			Placeholder("Paste the text to rewrite...").
			Value(&m.fb.description).
			Validate(validateRequired("Text")),
		huh.NewInput().
			Title("Instruction").
			Placeholder("e.g. make it more concise").
			Value(&m.fb.name).
			Validate(validateRequired("Instruction")),
	)
	m.fb.description = text
	return cmd
}

func taskFields(fb *formBindings) []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What needs to be done?").
			Value(&fb.name).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&fb.description),
		huh.NewSelect[string]().
			Title("Priority").
			Options(
				huh.NewOption("P1 - Urgent", model.PriorityP1),
				huh.NewOption("P2 - High", model.PriorityP2),
				huh.NewOption("P3 - Medium", model.PriorityP3),
				huh.NewOption("P4 - Low", model.PriorityP4),
			).
			Value(&fb.priority),
		huh.NewInput().
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&fb.dueDate).
			Validate(validateOptionalDate),
	}
}

func nameField(value *string, title string) huh.Field {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateRequired(title))
}

func colorField(value *string) huh.Field {
	opts := make([]huh.Option[string], len(theme.FolderColors))
	for i, c := range theme.FolderColors {
		opts[i] = huh.NewOption(strings.TrimPrefix(c, "bg-"), c)
	}
	return huh.NewSelect[string]().
		Title("Color").
		Options(opts...).
		Value(value)
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}
