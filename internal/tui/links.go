package tui

import (
	"strings"

	"rabbithole/internal/encyclopedia"
)

// link is one navigable target in the rendered article. Every word of
// the prose is a link recursing the lookup; concept titles additionally
// carry the concept for pinning.
type link struct {
	word    string
	concept *encyclopedia.KeyConcept
}

// linkWords splits prose into clickable words, stripping surrounding
// punctuation. Words that are all punctuation disappear.
func linkWords(text string) []link {
	var links []link
	for _, raw := range strings.Fields(text) {
		word := strings.Trim(raw, `.,;:!?()[]{}"'`)
		if word == "" {
			continue
		}
		links = append(links, link{word: word})
	}
	return links
}

// articleLinks flattens the active result into its ordered link targets.
func articleLinks(def *encyclopedia.Definition, cmp *encyclopedia.Comparison) []link {
	var links []link

	switch {
	case def != nil:
		links = append(links, linkWords(def.Summary)...)
		for i := range def.KeyConcepts {
			c := &def.KeyConcepts[i]
			links = append(links, link{word: c.Title, concept: c})
		}
	case cmp != nil:
		links = append(links, linkWords(cmp.Introduction)...)
		for i := range cmp.Similarities {
			p := cmp.Similarities[i]
			links = append(links, link{word: p.Title, concept: &encyclopedia.KeyConcept{Title: p.Title, Description: p.Description}})
		}
		for i := range cmp.Differences {
			p := cmp.Differences[i]
			links = append(links, link{word: p.Title, concept: &encyclopedia.KeyConcept{Title: p.Title, Description: p.Description}})
		}
		links = append(links, linkWords(cmp.Conclusion)...)
	}

	return links
}
