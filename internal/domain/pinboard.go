package domain

import "github.com/google/uuid"

// PinKind distinguishes the two kinds of pinned snippets.
type PinKind string

const (
	PinConcept PinKind = "concept"
	PinArt     PinKind = "art"
)

// PinnedItem is a user-saved snippet with a free-form canvas position.
// For concepts the payload is Title/Description; for art it is Topic/Art.
type PinnedItem struct {
	ID          string
	Kind        PinKind
	Title       string
	Description string
	Topic       string
	Art         string
	X           int
	Y           int
}

// Pinboard is a flat collection of pinned items, insertion-ordered.
// Items are never removed; only their position mutates after creation.
type Pinboard struct {
	items []PinnedItem
	index map[string]int
}

// NewPinboard creates an empty pinboard.
func NewPinboard() *Pinboard {
	return &Pinboard{index: make(map[string]int)}
}

// Add assigns the item a fresh unique id, places it at (x, y), and
// returns the id.
func (p *Pinboard) Add(item PinnedItem, x, y int) string {
	item.ID = uuid.NewString()
	item.X = x
	item.Y = y
	p.index[item.ID] = len(p.items)
	p.items = append(p.items, item)
	return item.ID
}

// Move updates an item's canvas position. Unknown ids are a no-op;
// Move reports whether anything changed.
func (p *Pinboard) Move(id string, x, y int) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	p.items[i].X = x
	p.items[i].Y = y
	return true
}

// Get returns the item with the given id.
func (p *Pinboard) Get(id string) (PinnedItem, bool) {
	i, ok := p.index[id]
	if !ok {
		return PinnedItem{}, false
	}
	return p.items[i], true
}

// Items returns a copy of all pinned items in insertion order.
func (p *Pinboard) Items() []PinnedItem {
	out := make([]PinnedItem, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of pinned items.
func (p *Pinboard) Len() int {
	return len(p.items)
}
