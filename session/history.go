package session

import "time"

// EntryKind tells questions from answers
type EntryKind int

const (
	EntryQuestion EntryKind = iota
	EntryAnswer
)

func (k EntryKind) String() string {
	if k == EntryQuestion {
		return "question"
	}
	return "answer"
}

// ChatEntry is one line of the chat history
type ChatEntry struct {
	Kind      EntryKind
	Content   string
	Timestamp time.Time
}

// History is the append-only chat log. Entries only ever arrive as a
// question immediately followed by its answer.
type History struct {
	entries []ChatEntry
}

// appendExchange appends a question and its answer
func (h *History) appendExchange(question string, askedAt time.Time, answer string, answeredAt time.Time) {
	h.entries = append(h.entries,
		ChatEntry{Kind: EntryQuestion, Content: question, Timestamp: askedAt},
		ChatEntry{Kind: EntryAnswer, Content: answer, Timestamp: answeredAt},
	)
}

// Entries returns a copy of the log in order
func (h *History) Entries() []ChatEntry {
	result := make([]ChatEntry, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Questions returns the number of questions asked
func (h *History) Questions() int {
	return len(h.entries) / 2
}

// reset drops all entries. Only a new submission does this.
func (h *History) reset() {
	h.entries = nil
}
