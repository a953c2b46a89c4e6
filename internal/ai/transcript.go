package ai

import "sync"

// Role identifies the author of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is a single exchange shown in the assistant panel: the request
// the user made and, later, the coach's reply.
type Entry struct {
	Role    Role
	Content string
}

// Transcript keeps the ordered history of coach exchanges for the current
// session, trimming the oldest entries when the limit is reached. It is
// not persisted; the panel starts empty on every launch.
type Transcript struct {
	mu         sync.Mutex
	entries    []Entry
	maxEntries int
}

// NewTranscript creates a transcript with a default maximum of 20 entries.
func NewTranscript() *Transcript {
	return &Transcript{
		entries:    make([]Entry, 0, 20),
		maxEntries: 20,
	}
}

// Add appends an entry to the transcript. If the number of entries
// exceeds the maximum, the oldest are trimmed.
func (t *Transcript) Add(role Role, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, Entry{Role: role, Content: content})
	if len(t.entries) > t.maxEntries {
		excess := len(t.entries) - t.maxEntries
		t.entries = append(t.entries[:0:0], t.entries[excess:]...)
	}
}

// Entries returns a copy of the current transcript.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]Entry, len(t.entries))
	copy(result, t.entries)
	return result
}

// Reset clears the transcript.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = t.entries[:0]
}

// Len returns the number of entries in the transcript.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
