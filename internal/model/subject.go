package model

// Subject difficulty levels.
const (
	LevelSmall  = "Small"
	LevelMedium = "Medium"
	LevelLarge  = "Large"
	LevelInsane = "Insane"
)

// Attachment kind constants.
const (
	AttachmentImage = "image"
	AttachmentPDF   = "pdf"
)

// Attachment is a reference to an image or PDF file. Only the metadata is
// stored; there is no binary payload.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"type"`
}

// SubTopic is the smallest trackable item within a topic.
type SubTopic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Topic groups subtopics within a subject and carries its own notes.
type Topic struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Notes       string       `json:"notes"`
	SubTopics   []SubTopic   `json:"subTopics"`
	Attachments []Attachment `json:"attachments"`
}

// Subject is a study area tracked by topic/subtopic completion and,
// optionally, a daily session streak.
type Subject struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Color             string   `json:"color"`
	Level             string   `json:"level"`
	Notes             string   `json:"notes"`
	Topics            []Topic  `json:"topics"`
	SessionTimestamps []string `json:"sessionTimestamps"`
	TrackStreak       bool     `json:"trackStreak"`
}

// Clone returns a deep copy of the subject.
func (s Subject) Clone() Subject {
	out := s
	out.Topics = make([]Topic, len(s.Topics))
	for i, t := range s.Topics {
		ct := t
		ct.SubTopics = append([]SubTopic(nil), t.SubTopics...)
		ct.Attachments = append([]Attachment(nil), t.Attachments...)
		out.Topics[i] = ct
	}
	out.SessionTimestamps = append([]string(nil), s.SessionTimestamps...)
	return out
}
