package model

// Profile holds the user's identity and account-level toggles.
type Profile struct {
	Name                 string `json:"name"`
	Email                string `json:"email,omitempty"`
	Avatar               string `json:"avatar,omitempty"`
	NotificationsEnabled bool   `json:"notificationsEnabled,omitempty"`
	CloudSyncEnabled     bool   `json:"cloudSyncEnabled,omitempty"`
	LastSyncTimestamp    int64  `json:"lastSyncTimestamp,omitempty"`
}

// AppData is the whole application document. It is persisted as a single
// JSON value and replaced atomically on every change.
type AppData struct {
	Profile  Profile    `json:"profile"`
	APIKey   string     `json:"apiKey"`
	Theme    string     `json:"theme"`
	Subjects []Subject  `json:"subjects"`
	Habits   []Habit    `json:"habits"`
	Videos   []Video    `json:"videos"`
	Todos    []TodoList `json:"todos"`
}

// DefaultAppData returns the document a fresh installation starts from.
func DefaultAppData() AppData {
	return AppData{
		Profile:  Profile{Name: "User"},
		APIKey:   "",
		Theme:    "midnight-pulse",
		Subjects: []Subject{},
		Habits:   []Habit{},
		Videos:   []Video{},
		Todos:    []TodoList{},
	}
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the receiver.
func (d AppData) Clone() AppData {
	out := d
	out.Subjects = make([]Subject, len(d.Subjects))
	for i, s := range d.Subjects {
		out.Subjects[i] = s.Clone()
	}
	out.Habits = make([]Habit, len(d.Habits))
	for i, h := range d.Habits {
		out.Habits[i] = h.Clone()
	}
	out.Videos = make([]Video, len(d.Videos))
	for i, v := range d.Videos {
		out.Videos[i] = v.Clone()
	}
	out.Todos = make([]TodoList, len(d.Todos))
	for i, l := range d.Todos {
		out.Todos[i] = l.Clone()
	}
	return out
}
