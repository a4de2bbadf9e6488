package domain

import (
	"errors"
	"strings"
)

// ComparisonSeparator joins the two sides of a comparison topic.
// Detection is a plain substring match.
const ComparisonSeparator = " vs. "

// ErrMalformedComparison indicates a comparison topic with a missing side.
var ErrMalformedComparison = errors.New("comparison topic must have a term on both sides")

// NormalizeTopic trims surrounding whitespace. Topics keep their display
// casing; equality is always case-insensitive.
func NormalizeTopic(topic string) string {
	return strings.TrimSpace(topic)
}

// SameTopic reports whether two topics are equal under case-insensitive
// comparison of their trimmed forms.
func SameTopic(a, b string) bool {
	return strings.EqualFold(NormalizeTopic(a), NormalizeTopic(b))
}

// IsComparison reports whether the topic encodes an A-vs-B comparison.
func IsComparison(topic string) bool {
	return strings.Contains(topic, ComparisonSeparator)
}

// JoinComparison encodes two topics into a single composite topic.
func JoinComparison(a, b string) string {
	return NormalizeTopic(a) + ComparisonSeparator + NormalizeTopic(b)
}

// SplitComparison decodes a composite topic back into its two sides.
// A side that is empty after trimming makes the composite malformed.
func SplitComparison(topic string) (string, string, error) {
	idx := strings.Index(topic, ComparisonSeparator)
	if idx < 0 {
		return "", "", ErrMalformedComparison
	}
	a := NormalizeTopic(topic[:idx])
	b := NormalizeTopic(topic[idx+len(ComparisonSeparator):])
	if a == "" || b == "" {
		return "", "", ErrMalformedComparison
	}
	return a, b, nil
}
