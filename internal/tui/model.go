package tui

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rabbithole/internal/domain"
	"rabbithole/internal/gen"
	"rabbithole/internal/tui/formatter"
)

// uiMode selects which surface the model is rendering.
type uiMode int

const (
	modeArticle uiMode = iota
	modePinboard
	modeSettings
)

// appModel is the root bubbletea model: the resolution state machine,
// the navigation history, the pinboard, and the input surfaces around
// them. All state is in-memory for the session.
type appModel struct {
	app *App

	history  *domain.History
	pinboard *domain.Pinboard
	picker   *domain.Picker
	resolver *resolver

	temperature float64

	search textinput.Model
	spin   spinner.Model

	mode uiMode

	// Article-surface cursors.
	wordCursor    int
	meaningCursor int

	// Breadcrumb selection.
	crumbMode   bool
	crumbCursor int

	// Pinboard selection.
	pinCursor int

	// Guided tour overlay.
	tourActive bool
	tourStep   int

	// Settings overlay.
	settings *settingsForm

	width    int
	height   int
	quitting bool
}

func newAppModel(app *App) appModel {
	ti := textinput.New()
	ti.Placeholder = "look something up, or try \"Gravity vs. Entropy\""
	ti.Prompt = ""
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader

	rng := app.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	initial := domain.NormalizeTopic(app.InitialTopic)
	if initial == "" {
		initial = "Serendipity"
	}

	return appModel{
		app:         app,
		history:     domain.NewHistory(initial),
		pinboard:    domain.NewPinboard(),
		picker:      domain.NewPicker(app.Vocabulary, rng),
		resolver:    newResolver(app.Encyclopedia),
		temperature: gen.ClampTemperature(app.Temperature),
		search:      ti,
		spin:        sp,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.resolver.start(m.history.Current(), m.temperature),
		m.spin.Tick,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.resolver.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ambiguityCheckedMsg:
		m.meaningCursor = 0
		return m, m.resolver.handleAmbiguityChecked(msg, m.temperature)

	case contentFetchedMsg:
		m.resolver.handleContentFetched(msg)
		m.wordCursor = 0
		return m, nil

	case artFetchedMsg:
		m.resolver.handleArtFetched(msg)
		return m, nil

	case settingsDoneMsg:
		m.mode = modeArticle
		m.settings = nil
		if msg.apply {
			m.setTemperature(msg.temperature)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeSettings && m.settings != nil {
		return m, m.settings.Update(msg)
	}
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeSettings && m.settings != nil {
		return m, m.settings.Update(msg)
	}

	if m.tourActive {
		return m.handleTourKey(msg)
	}

	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.search.Blur()
			return m, nil
		case tea.KeyEnter:
			topic := domain.NormalizeTopic(m.search.Value())
			m.search.Reset()
			m.search.Blur()
			if topic == "" {
				return m, nil
			}
			return m, m.navigateTo(topic)
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	if m.crumbMode {
		return m.handleCrumbKey(msg)
	}

	if m.mode == modePinboard {
		return m.handlePinboardKey(msg)
	}

	return m.handleArticleKey(msg)
}

// ── commands issued by the UI surface ────────────────────────────────────────

// navigateTo appends the topic to history (no-op when it is already
// current) and starts a fresh resolution cycle for it.
func (m *appModel) navigateTo(topic string) tea.Cmd {
	m.logger().Debug("navigate", zap.String("topic", topic))
	m.history.Append(topic)
	m.wordCursor = 0
	m.meaningCursor = 0
	return tea.Batch(
		m.resolver.start(m.history.Current(), m.temperature),
		m.spin.Tick,
	)
}

// navigateToHistoryIndex truncates history to index and re-resolves.
func (m *appModel) navigateToHistoryIndex(index int) tea.Cmd {
	if !m.history.TruncateTo(index) {
		return nil
	}
	m.wordCursor = 0
	return tea.Batch(
		m.resolver.start(m.history.Current(), m.temperature),
		m.spin.Tick,
	)
}

// pickRandom draws from the vocabulary, replaces the entire history with
// the pick, and resolves it. A fresh start, not a navigation.
func (m *appModel) pickRandom() tea.Cmd {
	topic := m.picker.Pick(m.history.Current())
	m.logger().Debug("random pick", zap.String("topic", topic))
	m.history.Reset(topic)
	m.wordCursor = 0
	return tea.Batch(
		m.resolver.start(topic, m.temperature),
		m.spin.Tick,
	)
}

// setTemperature clamps and stores the creativity value for subsequent
// cycles; the active cycle keeps the value it started with.
func (m *appModel) setTemperature(v float64) {
	m.temperature = gen.ClampTemperature(v)
}

// addPinnedItem drops a new snippet onto the pinboard at a staggered
// default position.
func (m *appModel) addPinnedItem(item domain.PinnedItem) string {
	n := m.pinboard.Len()
	x := 2 + (n*8)%48
	y := 1 + (n*3)%12
	return m.pinboard.Add(item, x, y)
}

// movePinnedItem nudges a pin on the canvas; unknown ids are a no-op.
func (m *appModel) movePinnedItem(id string, dx, dy int) {
	item, ok := m.pinboard.Get(id)
	if !ok {
		return
	}
	x := item.X + dx
	y := item.Y + dy
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	m.pinboard.Move(id, x, y)
}

// ── per-surface key handling ─────────────────────────────────────────────────

func (m appModel) handleArticleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	links := articleLinks(m.resolver.definition, m.resolver.comparison)

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "tab":
		m.mode = modePinboard
		m.pinCursor = 0
		return m, nil

	case "b":
		if m.history.Len() > 1 {
			m.crumbMode = true
			m.crumbCursor = m.history.Len() - 2
		}
		return m, nil

	case "r":
		return m, m.pickRandom()

	case "s":
		m.settings = newSettingsForm(m.temperature)
		m.mode = modeSettings
		return m, m.settings.Init()

	case "?":
		m.tourActive = true
		m.tourStep = 0
		return m, nil

	case "+", "=":
		m.setTemperature(m.temperature + 0.1)
		return m, nil

	case "-":
		m.setTemperature(m.temperature - 0.1)
		return m, nil

	case "up", "k":
		if m.resolver.state == stateAwaitingChoice && m.meaningCursor > 0 {
			m.meaningCursor--
		}
		return m, nil

	case "down", "j":
		if m.resolver.state == stateAwaitingChoice && m.ambiguityCount() > 0 &&
			m.meaningCursor < m.ambiguityCount()-1 {
			m.meaningCursor++
		}
		return m, nil

	case "left", "h":
		if m.wordCursor > 0 {
			m.wordCursor--
		}
		return m, nil

	case "right", "l":
		if m.wordCursor < len(links)-1 {
			m.wordCursor++
		}
		return m, nil

	case "p":
		if m.wordCursor < len(links) && links[m.wordCursor].concept != nil {
			c := links[m.wordCursor].concept
			m.addPinnedItem(domain.PinnedItem{
				Kind:        domain.PinConcept,
				Title:       c.Title,
				Description: c.Description,
			})
		}
		return m, nil

	case "P":
		if m.resolver.art != "" {
			m.addPinnedItem(domain.PinnedItem{
				Kind:  domain.PinArt,
				Topic: m.resolver.topic,
				Art:   m.resolver.art,
			})
		}
		return m, nil

	case "enter":
		if m.resolver.state == stateAwaitingChoice {
			if a := m.resolver.ambiguity; a != nil && m.meaningCursor < len(a.Meanings) {
				return m, m.navigateTo(a.Meanings[m.meaningCursor].Title)
			}
			return m, nil
		}
		if m.wordCursor < len(links) {
			return m, m.navigateTo(links[m.wordCursor].word)
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) handleCrumbKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.crumbMode = false
		return m, nil
	case "left", "h":
		if m.crumbCursor > 0 {
			m.crumbCursor--
		}
		return m, nil
	case "right", "l":
		if m.crumbCursor < m.history.Len()-2 {
			m.crumbCursor++
		}
		return m, nil
	case "enter":
		m.crumbMode = false
		return m, m.navigateToHistoryIndex(m.crumbCursor)
	}
	return m, nil
}

func (m appModel) handlePinboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.pinboard.Items()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab", "esc":
		m.mode = modeArticle
		return m, nil
	case "n", "]":
		if len(items) > 0 {
			m.pinCursor = (m.pinCursor + 1) % len(items)
		}
		return m, nil
	case "N", "[":
		if len(items) > 0 {
			m.pinCursor = (m.pinCursor + len(items) - 1) % len(items)
		}
		return m, nil
	case "left", "h":
		m.moveSelectedPin(items, -2, 0)
		return m, nil
	case "right", "l":
		m.moveSelectedPin(items, 2, 0)
		return m, nil
	case "up", "k":
		m.moveSelectedPin(items, 0, -1)
		return m, nil
	case "down", "j":
		m.moveSelectedPin(items, 0, 1)
		return m, nil
	}
	return m, nil
}

func (m *appModel) moveSelectedPin(items []domain.PinnedItem, dx, dy int) {
	if m.pinCursor < len(items) {
		m.movePinnedItem(items[m.pinCursor].ID, dx, dy)
	}
}

func (m appModel) handleTourKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.tourActive = false
		return m, nil
	case "enter", " ", "n":
		m.tourStep++
		if m.tourStep >= len(tourSteps) {
			m.tourActive = false
			m.tourStep = 0
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) ambiguityCount() int {
	if m.resolver.ambiguity == nil {
		return 0
	}
	return len(m.resolver.ambiguity.Meanings)
}

// logger returns the app logger, never nil.
func (m appModel) logger() *zap.Logger {
	if m.app.Log != nil {
		return m.app.Log
	}
	return zap.NewNop()
}
