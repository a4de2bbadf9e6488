package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rabbithole/internal/domain"
	"rabbithole/internal/tui/formatter"
)

const artPanelWidth = 44

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modeSettings && m.settings != nil {
		return m.settings.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.tourActive {
		sections = append(sections, m.renderTour())
	} else if m.mode == modePinboard {
		sections = append(sections, m.renderPinboard())
	} else {
		sections = append(sections, m.renderArticle())
	}

	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.renderSearchBar())

	return strings.Join(sections, "\n")
}

// ── header and bars ──────────────────────────────────────────────────────────

func (m appModel) renderHeader() string {
	title := formatter.StylePurple.Render("rabbithole")

	var crumbs []string
	entries := m.history.Entries()
	for i, topic := range entries {
		switch {
		case m.crumbMode && i == m.crumbCursor:
			crumbs = append(crumbs, formatter.StyleLinkActive.Render(topic))
		case i == len(entries)-1:
			crumbs = append(crumbs, formatter.StyleBold.Render(topic))
		default:
			crumbs = append(crumbs, formatter.Dim(topic))
		}
	}
	breadcrumb := " " + formatter.Dim("›") + " " + strings.Join(crumbs, formatter.Dim(" › "))

	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + breadcrumb + "\n" + sep
}

func (m appModel) renderStatusBar() string {
	var hints []string

	if m.crumbMode {
		hints = append(hints, formatter.Dim("←→: pick crumb"), formatter.Dim("enter: go back"), formatter.Dim("esc: cancel"))
	} else if m.mode == modePinboard {
		hints = append(hints,
			formatter.Dim("n: next pin"),
			formatter.Dim("←↑↓→: move pin"),
			formatter.Dim("tab: article"),
		)
	} else {
		hints = append(hints,
			formatter.Dim("/: search"),
			formatter.Dim("←→: word"),
			formatter.Dim("enter: follow"),
			formatter.Dim("b: back"),
			formatter.Dim("r: random"),
			formatter.Dim("p: pin"),
			formatter.Dim("tab: pinboard"),
			formatter.Dim("?: tour"),
		)
	}

	temp := formatter.StyleYellow.Render(fmt.Sprintf("temp %.1f", m.temperature))
	bar := strings.Join(hints, "  ") + "  " + temp

	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + bar
}

func (m appModel) renderSearchBar() string {
	prompt := formatter.StylePurple.Render("topic") + formatter.Dim("> ")
	return prompt + m.search.View()
}

// ── article surface ──────────────────────────────────────────────────────────

func (m appModel) renderArticle() string {
	r := m.resolver

	if r.loading() {
		return "\n  " + m.spin.View() + formatter.Dim(" consulting the archives for "+r.topic+"...")
	}

	if r.state == stateAwaitingChoice && r.ambiguity != nil {
		return m.renderMeanings()
	}

	if r.errMsg != "" {
		return "\n  " + formatter.StyleRed.Render(r.errMsg)
	}

	body := m.renderContent()
	art := m.renderArtPanel()
	if art == "" {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, art)
}

func (m appModel) renderMeanings() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(formatter.Header(headerTopic(m.resolver.topic) + " has several meanings"))
	b.WriteString("\n")
	for i, meaning := range m.resolver.ambiguity.Meanings {
		cursor := "  "
		title := formatter.StyleLink.Render(meaning.Title)
		if i == m.meaningCursor {
			cursor = formatter.StyleHeader.Render("> ")
			title = formatter.StyleLinkActive.Render(meaning.Title)
		}
		b.WriteString(fmt.Sprintf("  %s%s\n    %s\n", cursor, title, formatter.Dim(meaning.Description)))
	}
	return b.String()
}

// headerTopic trims a topic for headers; long composites stay readable.
func headerTopic(topic string) string {
	runes := []rune(topic)
	if len(runes) > 40 {
		return string(runes[:37]) + "..."
	}
	return topic
}

func (m appModel) renderContent() string {
	r := m.resolver
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString("\n")

	switch {
	case r.definition != nil:
		b.WriteString("  " + formatter.Header(headerTopic(r.topic)) + "\n\n")
		b.WriteString(m.renderLinkedProse(r.definition.Summary, 0, width))
		b.WriteString("\n\n")
		offset := len(linkWords(r.definition.Summary))
		for i, c := range r.definition.KeyConcepts {
			title := formatter.StyleLink.Render(c.Title)
			if m.wordCursor == offset+i {
				title = formatter.StyleLinkActive.Render(c.Title)
			}
			b.WriteString("  " + title + "\n    " + formatter.Dim(c.Description) + "\n")
		}

	case r.comparison != nil:
		c := r.comparison
		b.WriteString("  " + formatter.Header(headerTopic(c.TopicA+" vs. "+c.TopicB)) + "\n\n")
		b.WriteString(m.renderLinkedProse(c.Introduction, 0, width))
		offset := len(linkWords(c.Introduction))

		b.WriteString("\n\n  " + formatter.StyleGreen.Render("Similarities") + "\n")
		for i, p := range c.Similarities {
			title := formatter.StyleLink.Render(p.Title)
			if m.wordCursor == offset+i {
				title = formatter.StyleLinkActive.Render(p.Title)
			}
			b.WriteString("    " + title + " " + formatter.Dim("— "+p.Description) + "\n")
		}
		offset += len(c.Similarities)

		b.WriteString("\n  " + formatter.StyleYellow.Render("Differences") + "\n")
		for i, p := range c.Differences {
			title := formatter.StyleLink.Render(p.Title)
			if m.wordCursor == offset+i {
				title = formatter.StyleLinkActive.Render(p.Title)
			}
			b.WriteString("    " + title + " " + formatter.Dim("— "+p.Description) + "\n")
		}
		offset += len(c.Differences)

		b.WriteString("\n")
		b.WriteString(m.renderLinkedProse(c.Conclusion, offset, width))
		b.WriteString("\n")

	default:
		b.WriteString("  " + formatter.Dim("type / to look something up"))
	}

	return b.String()
}

// renderLinkedProse renders prose with every word styled as a link,
// wrapped to width, with the word at the global cursor highlighted.
// offset is the index of the prose's first word in the article's links.
func (m appModel) renderLinkedProse(text string, offset, width int) string {
	words := linkWords(text)
	var lines []string
	var line strings.Builder
	lineLen := 0

	for i, w := range words {
		style := formatter.StyleLink
		if offset+i == m.wordCursor {
			style = formatter.StyleLinkActive
		}
		wordLen := len([]rune(w.word))
		if lineLen > 0 && lineLen+wordLen+1 > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteString(" ")
			lineLen++
		}
		line.WriteString(style.Render(w.word))
		lineLen += wordLen
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (m appModel) contentWidth() int {
	w := m.width - artPanelWidth - 6
	if w < 24 {
		w = 24
	}
	return w
}

func (m appModel) renderArtPanel() string {
	r := m.resolver
	if r.art == "" {
		return ""
	}

	body := r.art
	if r.artText != "" {
		body += "\n\n" + r.artText
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1).
		Width(artPanelWidth - 4)
	return panel.Render(formatter.StyleGreen.Render(body))
}

// ── pinboard surface ─────────────────────────────────────────────────────────

func (m appModel) renderPinboard() string {
	items := m.pinboard.Items()
	if len(items) == 0 {
		return "\n  " + formatter.Dim("nothing pinned yet — press p on a concept, or P on art")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("pinboard") + "\n")
	for i, item := range items {
		marker := "  "
		title := item.Title
		if item.Kind == domain.PinArt {
			title = item.Topic + " (art)"
		}
		label := formatter.StyleLink.Render(title)
		if i == m.pinCursor {
			marker = formatter.StyleHeader.Render("> ")
			label = formatter.StyleLinkActive.Render(title)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", marker, label,
			formatter.Dim(fmt.Sprintf("(%d, %d)", item.X, item.Y))))
		if item.Kind == domain.PinConcept && item.Description != "" {
			b.WriteString("      " + formatter.Dim(item.Description) + "\n")
		}
	}
	return b.String()
}
