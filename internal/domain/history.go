package domain

// History is the navigation path of visited topics. It is never empty:
// construction seeds it with an initial topic, and the last entry is
// always the current one. Entries are only appended, truncated from the
// tail, or replaced wholesale; nothing is ever inserted.
type History struct {
	entries []string
}

// NewHistory creates a history seeded with the initial topic.
func NewHistory(initial string) *History {
	return &History{entries: []string{NormalizeTopic(initial)}}
}

// Current returns the topic being viewed.
func (h *History) Current() string {
	return h.entries[len(h.entries)-1]
}

// Entries returns a copy of the navigation path, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of visited topics.
func (h *History) Len() int {
	return len(h.entries)
}

// Append adds a newly visited topic. Re-visiting the current topic
// (case-insensitively) is a no-op; Append reports whether the history
// changed.
func (h *History) Append(topic string) bool {
	topic = NormalizeTopic(topic)
	if topic == "" || SameTopic(topic, h.Current()) {
		return false
	}
	h.entries = append(h.entries, topic)
	return true
}

// TruncateTo discards every entry after index, making it current.
// Indexes at or past the last entry are rejected: truncation only ever
// moves backwards.
func (h *History) TruncateTo(index int) bool {
	if index < 0 || index >= len(h.entries)-1 {
		return false
	}
	h.entries = h.entries[:index+1]
	return true
}

// Reset replaces the entire history with a single entry. Used by the
// random-topic picker for its fresh-start semantic.
func (h *History) Reset(topic string) {
	h.entries = []string{NormalizeTopic(topic)}
}
