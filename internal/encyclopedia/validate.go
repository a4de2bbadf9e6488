package encyclopedia

import (
	"fmt"
	"strings"
)

// Shape validators for the four response payloads. Each confirms every
// required key is present and that required arrays are arrays (possibly
// empty), without mutating the value. A nil slice after decoding means
// the key was absent from the payload.

func validateDefinition(d Definition) error {
	if strings.TrimSpace(d.Summary) == "" {
		return fmt.Errorf("summary is missing or empty")
	}
	if d.KeyConcepts == nil {
		return fmt.Errorf("key_concepts array is missing")
	}
	return nil
}

func validateComparison(c Comparison) error {
	if strings.TrimSpace(c.Introduction) == "" {
		return fmt.Errorf("introduction is missing or empty")
	}
	if c.Similarities == nil {
		return fmt.Errorf("similarities array is missing")
	}
	if c.Differences == nil {
		return fmt.Errorf("differences array is missing")
	}
	if strings.TrimSpace(c.Conclusion) == "" {
		return fmt.Errorf("conclusion is missing or empty")
	}
	return nil
}

func validateAmbiguity(a Ambiguity) error {
	if a.IsAmbiguous && len(a.Meanings) == 0 {
		return fmt.Errorf("ambiguous response carries no meanings")
	}
	for i, m := range a.Meanings {
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("meaning %d has no title", i)
		}
	}
	return nil
}

func validateArt(a Art) error {
	if strings.TrimSpace(a.Art) == "" {
		return fmt.Errorf("art is missing or empty")
	}
	return nil
}
