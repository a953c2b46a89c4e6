package core

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chiru-app/chiru/internal/model"
)

func findSubject(doc *model.AppData, id string) *model.Subject {
	for i := range doc.Subjects {
		if doc.Subjects[i].ID == id {
			return &doc.Subjects[i]
		}
	}
	return nil
}

func findTopic(s *model.Subject, id string) *model.Topic {
	for i := range s.Topics {
		if s.Topics[i].ID == id {
			return &s.Topics[i]
		}
	}
	return nil
}

func applyAddSubject(doc *model.AppData, c AddSubject) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	level := c.Level
	switch level {
	case model.LevelSmall, model.LevelMedium, model.LevelLarge, model.LevelInsane:
	default:
		level = model.LevelMedium
	}
	doc.Subjects = append(doc.Subjects, model.Subject{
		ID:                uuid.NewString(),
		Name:              name,
		Color:             c.Color,
		Level:             level,
		Topics:            []model.Topic{},
		SessionTimestamps: []string{},
		TrackStreak:       c.TrackStreak,
	})
}

func applyUpdateSubject(doc *model.AppData, c UpdateSubject) {
	if strings.TrimSpace(c.Subject.Name) == "" {
		return
	}
	for i := range doc.Subjects {
		if doc.Subjects[i].ID == c.Subject.ID {
			doc.Subjects[i] = c.Subject.Clone()
			return
		}
	}
}

func applyAddTopic(doc *model.AppData, c AddTopic) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	s := findSubject(doc, c.SubjectID)
	if s == nil {
		return
	}
	s.Topics = append(s.Topics, model.Topic{
		ID:          uuid.NewString(),
		Name:        name,
		SubTopics:   []model.SubTopic{},
		Attachments: []model.Attachment{},
	})
}

func applyAddSubTopic(doc *model.AppData, c AddSubTopic) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	s := findSubject(doc, c.SubjectID)
	if s == nil {
		return
	}
	t := findTopic(s, c.TopicID)
	if t == nil {
		return
	}
	t.SubTopics = append(t.SubTopics, model.SubTopic{
		ID:   uuid.NewString(),
		Name: name,
	})
}

func applyToggleSubTopic(doc *model.AppData, c ToggleSubTopic) {
	s := findSubject(doc, c.SubjectID)
	if s == nil {
		return
	}
	t := findTopic(s, c.TopicID)
	if t == nil {
		return
	}
	for i := range t.SubTopics {
		if t.SubTopics[i].ID == c.SubTopicID {
			t.SubTopics[i].Completed = !t.SubTopics[i].Completed
			return
		}
	}
}

func applySetSubjectNotes(doc *model.AppData, c SetSubjectNotes) {
	if s := findSubject(doc, c.SubjectID); s != nil {
		s.Notes = c.Notes
	}
}

func applySetTopicNotes(doc *model.AppData, c SetTopicNotes) {
	s := findSubject(doc, c.SubjectID)
	if s == nil {
		return
	}
	if t := findTopic(s, c.TopicID); t != nil {
		t.Notes = c.Notes
	}
}

func applyAddAttachment(doc *model.AppData, c AddAttachment) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	if c.Kind != model.AttachmentImage && c.Kind != model.AttachmentPDF {
		return
	}
	s := findSubject(doc, c.SubjectID)
	if s == nil {
		return
	}
	t := findTopic(s, c.TopicID)
	if t == nil {
		return
	}
	t.Attachments = append(t.Attachments, model.Attachment{
		ID:   uuid.NewString(),
		Name: name,
		Kind: c.Kind,
	})
}

// applyLogStudySession records one session per calendar day. A second log
// on the same day leaves the document unchanged.
func applyLogStudySession(doc *model.AppData, c LogStudySession, now time.Time) {
	s := findSubject(doc, c.SubjectID)
	if s == nil {
		return
	}
	today := DateKey(now)
	for _, ts := range s.SessionTimestamps {
		if day, ok := parseDay(ts); ok && DateKey(day) == today {
			return
		}
	}
	s.SessionTimestamps = append(s.SessionTimestamps, now.Format(time.RFC3339))
}

func applyDeleteSubjects(doc *model.AppData, c DeleteSubjects) {
	doc.Subjects = deleteByID(doc.Subjects, func(s model.Subject) string { return s.ID }, c.IDs)
}

func applySetTheme(doc *model.AppData, c SetTheme) {
	if c.Theme == "" {
		return
	}
	doc.Theme = c.Theme
}
