package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_AppendDistinctTopics(t *testing.T) {
	h := NewHistory("Gravity")

	assert.True(t, h.Append("Entropy"))
	assert.Equal(t, []string{"Gravity", "Entropy"}, h.Entries())
	assert.Equal(t, "Entropy", h.Current())
}

func TestHistory_AppendCurrentIsNoOp(t *testing.T) {
	h := NewHistory("Gravity")
	h.Append("Entropy")

	assert.False(t, h.Append("entropy"))
	assert.False(t, h.Append("  ENTROPY  "))
	assert.Equal(t, 2, h.Len())
}

func TestHistory_AppendEarlierTopicIsAllowed(t *testing.T) {
	h := NewHistory("Gravity")
	h.Append("Entropy")

	// Only the current entry blocks a re-append; loops in the path are fine.
	assert.True(t, h.Append("Gravity"))
	assert.Equal(t, []string{"Gravity", "Entropy", "Gravity"}, h.Entries())
}

func TestHistory_TruncateTo(t *testing.T) {
	h := NewHistory("A")
	h.Append("B")
	h.Append("C")
	h.Append("D")

	assert.True(t, h.TruncateTo(1))
	assert.Equal(t, []string{"A", "B"}, h.Entries())
	assert.Equal(t, "B", h.Current())
}

func TestHistory_TruncateToRejectsCurrentAndBeyond(t *testing.T) {
	h := NewHistory("A")
	h.Append("B")

	assert.False(t, h.TruncateTo(1)) // current
	assert.False(t, h.TruncateTo(5))
	assert.False(t, h.TruncateTo(-1))
	assert.Equal(t, 2, h.Len())
}

func TestHistory_ResetReplaces(t *testing.T) {
	h := NewHistory("A")
	h.Append("B")
	h.Append("C")

	h.Reset("Quasar")
	assert.Equal(t, []string{"Quasar"}, h.Entries())
	assert.Equal(t, "Quasar", h.Current())
}

func TestHistory_NeverEmpty(t *testing.T) {
	h := NewHistory("A")
	assert.False(t, h.TruncateTo(0))
	assert.Equal(t, 1, h.Len())
}
