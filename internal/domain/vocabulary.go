package domain

import "math/rand"

// Vocabulary is the curated topic list the random picker draws from.
// It is injected explicitly rather than read from a package global so
// tests can substitute their own.
type Vocabulary []string

// DefaultVocabulary returns the built-in curated topic list.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"Gravity", "Entropy", "Photosynthesis", "Serendipity", "Quasar",
		"Metamorphosis", "Labyrinth", "Algorithm", "Renaissance", "Symbiosis",
		"Paradox", "Nebula", "Alchemy", "Resonance", "Cartography",
		"Mitochondria", "Zeitgeist", "Fractal", "Monsoon", "Obsidian",
		"Synesthesia", "Permafrost", "Bioluminescence", "Palimpsest", "Tundra",
		"Cryptography", "Murmuration", "Stalactite", "Ephemeral", "Leviathan",
		"Ikigai", "Petrichor", "Archipelago", "Catalyst", "Vertigo",
		"Dialectic", "Hologram", "Pendulum", "Sonder", "Equinox",
	}
}

// Picker selects random topics from a vocabulary.
type Picker struct {
	vocab Vocabulary
	rng   *rand.Rand
}

// NewPicker creates a Picker over vocab using the given source of
// randomness.
func NewPicker(vocab Vocabulary, rng *rand.Rand) *Picker {
	return &Picker{vocab: vocab, rng: rng}
}

// Pick returns a uniformly chosen topic. If the draw lands on the
// current topic (case-insensitively), it is substituted with the next
// word in the list rather than resampled.
func (p *Picker) Pick(current string) string {
	if len(p.vocab) == 0 {
		return current
	}
	i := p.rng.Intn(len(p.vocab))
	if SameTopic(p.vocab[i], current) {
		i = (i + 1) % len(p.vocab)
	}
	return p.vocab[i]
}
