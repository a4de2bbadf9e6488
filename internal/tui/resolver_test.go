package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rabbithole/internal/encyclopedia"
)

// fakeEncyclopedia is a canned in-memory Service. Topics listed in
// ambiguous get that verdict; topics in failDefs error; everything else
// resolves to a generated definition naming the topic.
type fakeEncyclopedia struct {
	ambiguous map[string]*encyclopedia.Ambiguity
	failDefs  map[string]bool
	artErr    bool

	defCalls []string
	cmpCalls [][2]string
}

func (f *fakeEncyclopedia) CheckAmbiguity(_ context.Context, topic string, _ float64) *encyclopedia.Ambiguity {
	if a, ok := f.ambiguous[topic]; ok {
		return a
	}
	return &encyclopedia.Ambiguity{IsAmbiguous: false}
}

func (f *fakeEncyclopedia) GenerateDefinition(_ context.Context, topic string, _ float64) (*encyclopedia.Definition, error) {
	f.defCalls = append(f.defCalls, topic)
	if f.failDefs[topic] {
		return nil, fmt.Errorf("could not generate content for %q: %w", topic, encyclopedia.ErrInvalidPayload)
	}
	return &encyclopedia.Definition{
		Summary: topic + " rewards a closer look",
		KeyConcepts: []encyclopedia.KeyConcept{
			{Title: "Origins", Description: "where it came from"},
		},
	}, nil
}

func (f *fakeEncyclopedia) GenerateComparison(_ context.Context, a, b string, _ float64) (*encyclopedia.Comparison, error) {
	f.cmpCalls = append(f.cmpCalls, [2]string{a, b})
	return &encyclopedia.Comparison{
		TopicA:       a,
		TopicB:       b,
		Introduction: "Both reward attention",
		Similarities: []encyclopedia.ComparisonPoint{{Title: "Depth", Description: "endless"}},
		Differences:  []encyclopedia.ComparisonPoint{{Title: "Texture", Description: "distinct"}},
		Conclusion:   "Pick either",
	}, nil
}

func (f *fakeEncyclopedia) GenerateArt(_ context.Context, topic string) (*encyclopedia.Art, error) {
	if f.artErr {
		return nil, errors.New("art backend down")
	}
	return &encyclopedia.Art{Art: "( " + topic + " )", Text: topic}, nil
}

func TestResolver_StaleContentDropped(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{})

	_ = r.start("Alpha", 0.7)
	stale := r.token
	_ = r.start("Beta", 0.7)

	r.handleContentFetched(contentFetchedMsg{
		token: stale,
		topic: "Alpha",
		def:   &encyclopedia.Definition{Summary: "stale", KeyConcepts: []encyclopedia.KeyConcept{}},
	})

	assert.Nil(t, r.definition)
	assert.Equal(t, "Beta", r.topic)
	assert.Equal(t, stateChecking, r.state)
}

func TestResolver_StaleAmbiguityDropped(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{})

	_ = r.start("Alpha", 0.7)
	stale := r.token
	_ = r.start("Beta", 0.7)

	cmd := r.handleAmbiguityChecked(ambiguityCheckedMsg{
		token: stale,
		topic: "Alpha",
		result: &encyclopedia.Ambiguity{
			IsAmbiguous: true,
			Meanings:    []encyclopedia.Meaning{{Title: "Alpha (letter)"}},
		},
	}, 0.7)

	assert.Nil(t, cmd)
	assert.Nil(t, r.ambiguity)
	assert.Equal(t, stateChecking, r.state)
}

func TestResolver_StaleArtDropped(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{})

	_ = r.start("Alpha", 0.7)
	stale := r.token
	_ = r.start("Beta", 0.7)

	r.handleArtFetched(artFetchedMsg{token: stale, topic: "Alpha", art: "old art"})
	assert.Empty(t, r.art)
}

func TestResolver_AmbiguousResultAwaitsChoice(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{})
	_ = r.start("Stock", 0.7)

	cmd := r.handleAmbiguityChecked(ambiguityCheckedMsg{
		token: r.token,
		topic: "Stock",
		result: &encyclopedia.Ambiguity{
			IsAmbiguous: true,
			Meanings:    []encyclopedia.Meaning{{Title: "Stock (finance)"}, {Title: "Stock (cooking)"}},
		},
	}, 0.7)

	assert.Nil(t, cmd)
	assert.Equal(t, stateAwaitingChoice, r.state)
	require.NotNil(t, r.ambiguity)
	assert.Len(t, r.ambiguity.Meanings, 2)
}

func TestResolver_UnambiguousProceedsToFetch(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{})
	_ = r.start("Gravity", 0.7)

	cmd := r.handleAmbiguityChecked(ambiguityCheckedMsg{
		token:  r.token,
		topic:  "Gravity",
		result: &encyclopedia.Ambiguity{IsAmbiguous: false},
	}, 0.7)

	assert.NotNil(t, cmd)
	assert.Equal(t, stateFetching, r.state)
}

func TestResolver_ComparisonSkipsDisambiguation(t *testing.T) {
	fake := &fakeEncyclopedia{
		ambiguous: map[string]*encyclopedia.Ambiguity{
			"Gravity vs. Entropy": {IsAmbiguous: true, Meanings: []encyclopedia.Meaning{{Title: "never asked"}}},
		},
	}
	r := newResolver(fake)

	cmd := r.start("Gravity vs. Entropy", 0.7)

	require.NotNil(t, cmd)
	assert.Equal(t, stateFetching, r.state)
	assert.Nil(t, r.ambiguity)
}

func TestResolver_MalformedCompositeSettlesWithError(t *testing.T) {
	fake := &fakeEncyclopedia{}
	r := newResolver(fake)

	cmd := r.start("Gravity vs. ", 0.7)

	assert.Nil(t, cmd)
	assert.Equal(t, stateSettled, r.state)
	assert.NotEmpty(t, r.errMsg)
	assert.Nil(t, r.definition)
	assert.Nil(t, r.comparison)
	assert.Empty(t, fake.defCalls)
	assert.Empty(t, fake.cmpCalls)
}

func TestResolver_ContentFailureClearsPriorResult(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{})

	_ = r.start("Alpha", 0.7)
	r.handleContentFetched(contentFetchedMsg{
		token: r.token,
		topic: "Alpha",
		def:   &encyclopedia.Definition{Summary: "fine", KeyConcepts: []encyclopedia.KeyConcept{}},
	})
	require.NotNil(t, r.definition)

	_ = r.start("Beta", 0.7)
	r.handleContentFetched(contentFetchedMsg{
		token: r.token,
		topic: "Beta",
		err:   errors.New(`could not generate content for "Beta"`),
	})

	assert.Equal(t, stateSettled, r.state)
	assert.Nil(t, r.definition)
	assert.Nil(t, r.comparison)
	assert.Contains(t, r.errMsg, "Beta")
}

func TestResolver_ArtFailureSubstitutesFallback(t *testing.T) {
	r := newResolver(&fakeEncyclopedia{artErr: true})
	_ = r.start("Gravity", 0.7)

	msg := r.fetchArtCmd(r.token, "Gravity")()
	art, ok := msg.(artFetchedMsg)
	require.True(t, ok)
	assert.Equal(t, encyclopedia.FallbackArt("Gravity"), art.art)
	assert.Empty(t, art.text)
}
