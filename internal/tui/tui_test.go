package tui

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rabbithole/internal/domain"
	"rabbithole/internal/encyclopedia"
	"rabbithole/internal/gen"
	"rabbithole/internal/teatest"
)

func newTestApp(fake *fakeEncyclopedia, topic string) *App {
	return &App{
		Encyclopedia: fake,
		Vocabulary:   domain.Vocabulary{"Quasar"},
		Temperature:  0.7,
		InitialTopic: topic,
		Rand:         rand.New(rand.NewSource(1)),
	}
}

func newTestDriver(t *testing.T, fake *fakeEncyclopedia, topic string) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(newTestApp(fake, topic)))
	d.Resize(100, 40)
	return d
}

func model(d *teatest.Driver) appModel {
	return d.Model.(appModel)
}

func TestStartupResolvesInitialTopic(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	m := model(d)
	assert.Equal(t, stateSettled, m.resolver.state)
	require.NotNil(t, m.resolver.definition)
	assert.Contains(t, m.resolver.definition.Summary, "Gravity")
	assert.Equal(t, []string{"Gravity"}, m.history.Entries())

	view := d.View()
	assert.Contains(t, view, "Gravity")
	assert.Contains(t, view, "rewards")
}

func TestSearchAppendsHistoryAndResolves(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	d.Press('/')
	d.Type("Entropy")
	d.PressEnter()

	m := model(d)
	assert.Equal(t, []string{"Gravity", "Entropy"}, m.history.Entries())
	require.NotNil(t, m.resolver.definition)
	assert.Contains(t, m.resolver.definition.Summary, "Entropy")
}

func TestSearchForCurrentTopicIsNoOp(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	d.Press('/')
	d.Type("gravity")
	d.PressEnter()

	assert.Equal(t, []string{"Gravity"}, model(d).history.Entries())
}

func TestAmbiguousTopicOffersMeanings(t *testing.T) {
	fake := &fakeEncyclopedia{
		ambiguous: map[string]*encyclopedia.Ambiguity{
			"Stock": {IsAmbiguous: true, Meanings: []encyclopedia.Meaning{
				{Title: "Stock (finance)", Description: "equity shares"},
				{Title: "Stock (cooking)", Description: "simmered broth"},
			}},
		},
	}
	d := newTestDriver(t, fake, "Stock")

	m := model(d)
	assert.Equal(t, stateAwaitingChoice, m.resolver.state)
	assert.Contains(t, d.View(), "Stock (finance)")
	assert.Contains(t, d.View(), "SEVERAL MEANINGS")

	d.PressDown()
	d.PressEnter()

	m = model(d)
	assert.Equal(t, []string{"Stock", "Stock (cooking)"}, m.history.Entries())
	assert.Equal(t, stateSettled, m.resolver.state)
	require.NotNil(t, m.resolver.definition)
	assert.Contains(t, m.resolver.definition.Summary, "Stock (cooking)")
}

func TestComparisonLookup(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	d.Press('/')
	d.Type("Gravity vs. Entropy")
	d.PressEnter()

	m := model(d)
	require.NotNil(t, m.resolver.comparison)
	assert.Equal(t, "Gravity", m.resolver.comparison.TopicA)
	assert.Equal(t, "Entropy", m.resolver.comparison.TopicB)
	require.Len(t, fake.cmpCalls, 1)
	assert.Equal(t, [2]string{"Gravity", "Entropy"}, fake.cmpCalls[0])

	view := d.View()
	assert.Contains(t, view, "Similarities")
	assert.Contains(t, view, "Differences")
}

func TestRandomPickResetsHistory(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	d.Press('/')
	d.Type("Entropy")
	d.PressEnter()
	require.Equal(t, 2, model(d).history.Len())

	d.Press('r')

	m := model(d)
	assert.Equal(t, []string{"Quasar"}, m.history.Entries())
	require.NotNil(t, m.resolver.definition)
	assert.Contains(t, m.resolver.definition.Summary, "Quasar")
}

func TestBreadcrumbNavigationTruncatesHistory(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Alpha")

	d.Press('/')
	d.Type("Beta")
	d.PressEnter()
	d.Press('/')
	d.Type("Gamma")
	d.PressEnter()
	require.Equal(t, 3, model(d).history.Len())

	// b opens crumb selection on the second-to-last entry.
	d.Press('b')
	assert.True(t, model(d).crumbMode)
	d.PressEnter()

	m := model(d)
	assert.False(t, m.crumbMode)
	assert.Equal(t, []string{"Alpha", "Beta"}, m.history.Entries())
	assert.Equal(t, "Beta", m.resolver.topic)
	require.NotNil(t, m.resolver.definition)
	assert.Contains(t, m.resolver.definition.Summary, "Beta")
}

func TestFollowWordLink(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	// Summary is "Gravity rewards a closer look"; move to the second word.
	d.PressRight()
	d.PressEnter()

	m := model(d)
	assert.Equal(t, []string{"Gravity", "rewards"}, m.history.Entries())
}

func TestTemperatureKeysClamp(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	for i := 0; i < 20; i++ {
		d.Press('-')
	}
	assert.InDelta(t, gen.MinTemperature, model(d).temperature, 1e-9)

	for i := 0; i < 20; i++ {
		d.Press('+')
	}
	assert.InDelta(t, gen.MaxTemperature, model(d).temperature, 1e-9)
}

func TestPinArtAndMoveOnPinboard(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")
	require.NotEmpty(t, model(d).resolver.art)

	d.Press('P')
	require.Equal(t, 1, model(d).pinboard.Len())

	d.PressTab()
	assert.Contains(t, d.View(), "Gravity (art)")

	before := model(d).pinboard.Items()[0]
	d.PressRight()
	d.PressDown()

	after := model(d).pinboard.Items()[0]
	assert.Equal(t, before.X+2, after.X)
	assert.Equal(t, before.Y+1, after.Y)

	d.PressEsc()
	assert.Equal(t, modeArticle, model(d).mode)
}

func TestPinConceptFromArticle(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	// Walk the cursor onto the key concept, past the five summary words.
	for i := 0; i < 5; i++ {
		d.PressRight()
	}
	d.Press('p')

	items := model(d).pinboard.Items()
	require.Len(t, items, 1)
	assert.Equal(t, domain.PinConcept, items[0].Kind)
	assert.Equal(t, "Origins", items[0].Title)
}

func TestArtFallbackShownWhenArtFails(t *testing.T) {
	fake := &fakeEncyclopedia{artErr: true}
	d := newTestDriver(t, fake, "Gravity")

	m := model(d)
	assert.Equal(t, encyclopedia.FallbackArt("Gravity"), m.resolver.art)
	assert.Contains(t, d.View(), "| Gravity |")
}

func TestContentFailureShowsErrorWithoutStaleContent(t *testing.T) {
	fake := &fakeEncyclopedia{failDefs: map[string]bool{"Entropy": true}}
	d := newTestDriver(t, fake, "Gravity")
	require.NotNil(t, model(d).resolver.definition)

	d.Press('/')
	d.Type("Entropy")
	d.PressEnter()

	m := model(d)
	assert.Nil(t, m.resolver.definition)
	assert.Contains(t, m.resolver.errMsg, `"Entropy"`)
	assert.Contains(t, d.View(), "could not generate content")
}

func TestTourOverlay(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	d.Press('?')
	assert.True(t, model(d).tourActive)
	assert.NotEqual(t, d.View(), "")

	d.PressEsc()
	assert.False(t, model(d).tourActive)
}

func TestSettingsOverlayEscAborts(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")
	before := model(d).temperature

	d.Press('s')
	m := model(d)
	assert.Equal(t, modeSettings, m.mode)
	assert.Contains(t, d.View(), "SETTINGS")

	d.PressEsc()
	m = model(d)
	assert.Equal(t, modeArticle, m.mode)
	assert.Nil(t, m.settings)
	assert.Equal(t, before, m.temperature)
}

func TestQuitKey(t *testing.T) {
	fake := &fakeEncyclopedia{}
	d := newTestDriver(t, fake, "Gravity")

	d.Press('q')
	assert.True(t, d.Quitting)
}
