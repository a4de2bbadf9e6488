package encyclopedia

// KeyConcept is one titled facet of a definition.
type KeyConcept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Definition is the structured answer for a single-topic lookup.
type Definition struct {
	Summary     string       `json:"summary"`
	KeyConcepts []KeyConcept `json:"key_concepts"`
}

// ComparisonPoint is one similarity or difference in a comparison.
type ComparisonPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Comparison is the structured answer for an A-vs-B lookup.
type Comparison struct {
	TopicA       string
	TopicB       string
	Introduction string            `json:"introduction"`
	Similarities []ComparisonPoint `json:"similarities"`
	Differences  []ComparisonPoint `json:"differences"`
	Conclusion   string            `json:"conclusion"`
}

// Meaning is one distinct sense of an ambiguous topic. Its title is
// itself a more specific topic usable as the next lookup.
type Meaning struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Ambiguity is the answer to the "does this topic have several
// well-known senses?" check.
type Ambiguity struct {
	IsAmbiguous bool      `json:"is_ambiguous"`
	Meanings    []Meaning `json:"meanings"`
}

// Art is a stylized text drawing for a topic, with an optional secondary
// stylized-text rendering.
type Art struct {
	Art  string `json:"art"`
	Text string `json:"text"`
}
