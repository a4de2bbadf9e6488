package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rabbithole/internal/domain"
	"rabbithole/internal/encyclopedia"
)

// resolveState is the phase of the active resolution cycle.
type resolveState int

const (
	stateIdle resolveState = iota
	stateChecking
	stateAwaitingChoice
	stateFetching
	stateSettled
)

// resolver is the topic resolution state machine. It owns the visible
// result of the current cycle and the token used to suppress stale
// completions. There is no hard abort of in-flight calls; superseded
// cycles are cancelled cooperatively by dropping their results.
type resolver struct {
	svc encyclopedia.Service

	token int
	topic string
	state resolveState

	definition *encyclopedia.Definition
	comparison *encyclopedia.Comparison
	ambiguity  *encyclopedia.Ambiguity
	errMsg     string
	art        string
	artText    string
}

func newResolver(svc encyclopedia.Service) *resolver {
	return &resolver{svc: svc}
}

func (r *resolver) loading() bool {
	return r.state == stateChecking || r.state == stateFetching
}

// start begins a new cycle for topic, superseding any cycle in flight.
// Comparison topics skip disambiguation; a malformed composite settles
// as an error before any service call.
func (r *resolver) start(topic string, temperature float64) tea.Cmd {
	r.token++
	r.topic = topic
	r.ambiguity = nil
	r.errMsg = ""

	if domain.IsComparison(topic) {
		a, b, err := domain.SplitComparison(topic)
		if err != nil {
			r.state = stateSettled
			r.definition = nil
			r.comparison = nil
			r.errMsg = err.Error()
			return nil
		}
		r.state = stateFetching
		return tea.Batch(
			r.fetchComparisonCmd(r.token, topic, a, b, temperature),
			r.fetchArtCmd(r.token, topic),
		)
	}

	r.state = stateChecking
	return r.checkAmbiguityCmd(r.token, topic, temperature)
}

func (r *resolver) checkAmbiguityCmd(token int, topic string, temperature float64) tea.Cmd {
	svc := r.svc
	return func() tea.Msg {
		result := svc.CheckAmbiguity(context.Background(), topic, temperature)
		return ambiguityCheckedMsg{token: token, topic: topic, result: result}
	}
}

func (r *resolver) fetchDefinitionCmd(token int, topic string, temperature float64) tea.Cmd {
	svc := r.svc
	return func() tea.Msg {
		def, err := svc.GenerateDefinition(context.Background(), topic, temperature)
		return contentFetchedMsg{token: token, topic: topic, def: def, err: err}
	}
}

func (r *resolver) fetchComparisonCmd(token int, topic, a, b string, temperature float64) tea.Cmd {
	svc := r.svc
	return func() tea.Msg {
		cmp, err := svc.GenerateComparison(context.Background(), a, b, temperature)
		return contentFetchedMsg{token: token, topic: topic, cmp: cmp, err: err}
	}
}

func (r *resolver) fetchArtCmd(token int, topic string) tea.Cmd {
	svc := r.svc
	return func() tea.Msg {
		art, err := svc.GenerateArt(context.Background(), topic)
		if err != nil {
			// Art failure never surfaces; substitute the placeholder box.
			return artFetchedMsg{token: token, topic: topic, art: encyclopedia.FallbackArt(topic)}
		}
		return artFetchedMsg{token: token, topic: topic, art: art.Art, text: art.Text}
	}
}

// handleAmbiguityChecked advances a cycle past its disambiguation step.
// Stale tokens are dropped, including AmbiguityChoice publications.
func (r *resolver) handleAmbiguityChecked(msg ambiguityCheckedMsg, temperature float64) tea.Cmd {
	if msg.token != r.token {
		return nil
	}

	if msg.result != nil && msg.result.IsAmbiguous && len(msg.result.Meanings) > 0 {
		r.state = stateAwaitingChoice
		r.ambiguity = msg.result
		return nil
	}

	r.state = stateFetching
	return tea.Batch(
		r.fetchDefinitionCmd(msg.token, msg.topic, temperature),
		r.fetchArtCmd(msg.token, msg.topic),
	)
}

// handleContentFetched publishes the content half of a cycle. A failure
// clears any displayed content so an error is never shown next to stale
// content.
func (r *resolver) handleContentFetched(msg contentFetchedMsg) {
	if msg.token != r.token {
		return
	}

	r.state = stateSettled
	if msg.err != nil {
		r.definition = nil
		r.comparison = nil
		r.errMsg = msg.err.Error()
		return
	}
	r.definition = msg.def
	r.comparison = msg.cmp
	r.errMsg = ""
}

// handleArtFetched publishes the art half of a cycle independently of
// the content half.
func (r *resolver) handleArtFetched(msg artFetchedMsg) {
	if msg.token != r.token {
		return
	}
	r.art = msg.art
	r.artText = msg.text
}
