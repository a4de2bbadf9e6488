package encyclopedia

import "strings"

// Topic text longer than fallbackMaxLen is cut to fallbackCutLen runes
// plus an ellipsis inside the fallback box.
const (
	fallbackMaxLen = 20
	fallbackCutLen = 17
)

// FallbackArt builds the deterministic three-line placeholder box shown
// when every art fetch attempt fails. Same topic in, same box out.
func FallbackArt(topic string) string {
	display := []rune(strings.TrimSpace(topic))
	if len(display) > fallbackMaxLen {
		display = append(display[:fallbackCutLen], []rune("...")...)
	}

	inner := " " + string(display) + " "
	border := "+" + strings.Repeat("-", len([]rune(inner))) + "+"
	return border + "\n|" + inner + "|\n" + border
}
