package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"rabbithole/internal/gen"
	"rabbithole/internal/tui/formatter"
)

// settingsDoneMsg closes the settings overlay. apply is false when the
// form was aborted.
type settingsDoneMsg struct {
	apply       bool
	temperature float64
}

// settingsForm wraps a huh form for the creativity control.
type settingsForm struct {
	form  *huh.Form
	value string
}

func newSettingsForm(temperature float64) *settingsForm {
	s := &settingsForm{value: fmt.Sprintf("%.1f", temperature)}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Creativity (%.1f-%.1f)", gen.MinTemperature, gen.MaxTemperature)).
				Description("Higher values wander further from the textbook answer. Out-of-range values are clamped.").
				Value(&s.value).
				Validate(validateTemperature),
		),
	).WithTheme(rabbitholeHuhTheme()).WithShowHelp(false)
	return s
}

func validateTemperature(v string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
		return fmt.Errorf("enter a number like 0.7")
	}
	return nil
}

func (s *settingsForm) Init() tea.Cmd {
	return s.form.Init()
}

// Update forwards messages to the form and emits settingsDoneMsg once it
// completes or aborts.
func (s *settingsForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		return func() tea.Msg { return settingsDoneMsg{apply: false} }
	}

	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		v, err := strconv.ParseFloat(strings.TrimSpace(s.value), 64)
		if err != nil {
			return func() tea.Msg { return settingsDoneMsg{apply: false} }
		}
		return func() tea.Msg {
			return settingsDoneMsg{apply: true, temperature: gen.ClampTemperature(v)}
		}
	}
	return cmd
}

func (s *settingsForm) View() string {
	return "\n  " + formatter.Header("settings") + "\n\n" + s.form.View()
}

func rabbitholeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
