package tui

import "rabbithole/internal/encyclopedia"

// Resolution cycle messages. Every message carries the token of the
// cycle it was started for; stale tokens are dropped at the publish
// point, never applied to visible state.

// ambiguityCheckedMsg reports the disambiguation step of a cycle.
// Per the fail-open policy the check itself never errors.
type ambiguityCheckedMsg struct {
	token  int
	topic  string
	result *encyclopedia.Ambiguity
}

// contentFetchedMsg reports the structured content fetch of a cycle.
// Exactly one of def and cmp is set on success.
type contentFetchedMsg struct {
	token int
	topic string
	def   *encyclopedia.Definition
	cmp   *encyclopedia.Comparison
	err   error
}

// artFetchedMsg reports the art fetch of a cycle. A failed fetch is
// substituted with the deterministic fallback box before this message
// is built, so art never carries an error.
type artFetchedMsg struct {
	token int
	topic string
	art   string
	text  string
}
