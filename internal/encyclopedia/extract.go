package encyclopedia

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPayload indicates a generation response that could not be
// parsed into the expected structured shape.
var ErrInvalidPayload = errors.New("invalid generation payload")

// Validator checks a decoded payload for required keys and shapes.
// It must not mutate its input; a non-nil error is the failure reason.
type Validator[T any] func(T) error

// DecodeObject applies the shared response-hygiene contract: strip any
// surrounding markdown code fences, require the remainder to be a single
// {...} object, decode it, and run the shape validator. Every failure is
// an ErrInvalidPayload, kept distinct from transport errors.
func DecodeObject[T any](raw string, validate Validator[T]) (T, error) {
	var zero T

	payload := strings.TrimSpace(stripCodeFences(raw))
	if !strings.HasPrefix(payload, "{") || !strings.HasSuffix(payload, "}") {
		return zero, fmt.Errorf("%w: response is not a JSON object", ErrInvalidPayload)
	}

	var result T
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if validate != nil {
		if err := validate(result); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}
	return result, nil
}

// stripCodeFences removes markdown fence lines (```json ... ```) that
// models add around JSON despite instructions not to.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
