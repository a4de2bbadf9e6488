package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rabbithole/internal/tui/formatter"
)

// tourStepInfo is one stop of the guided feature tour.
type tourStepInfo struct {
	title string
	body  string
}

var tourSteps = []tourStepInfo{
	{"Look anything up", "Press / and type a topic. Every word of the\nresult is a link — follow it with enter and\nkeep falling down the rabbit hole."},
	{"Compare two things", "Type \"Gravity vs. Entropy\" to get a structured\ncomparison instead of a definition."},
	{"Disambiguation", "Ambiguous topics offer their distinct senses\nfirst; pick one with ↑↓ and enter."},
	{"Breadcrumbs", "Your path is the header trail. Press b to jump\nback to an earlier topic (the path after it is\ndiscarded)."},
	{"Creativity", "+ and - nudge the generation temperature;\ns opens the settings form."},
	{"Random topic", "r starts fresh somewhere unexpected. It also\nresets the trail."},
	{"Pinboard", "p pins the selected concept, P pins the art.\ntab shows the board, arrows rearrange pins."},
}

func (m appModel) renderTour() string {
	step := tourSteps[m.tourStep]

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(step.title))
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleFg.Render(step.body))
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%d/%d", m.tourStep+1, len(tourSteps))))
	b.WriteString(formatter.Dim("  enter: next  esc: done"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorHeader).
		Padding(1, 2)
	return "\n  " + strings.ReplaceAll(card.Render(b.String()), "\n", "\n  ")
}
