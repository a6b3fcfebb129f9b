package cards

import "log/slog"

// Catalog is a read-only lookup from card name to card facts. The
// second return is false when the catalog has no entry for the name;
// callers degrade to Placeholder rather than failing.
type Catalog interface {
	Get(name string) (*Card, bool)
}

// Snapshot is an in-memory Catalog fully materialized before any
// simulation starts. It is safe for concurrent readers once built.
type Snapshot struct {
	cards map[string]*Card
}

// NewSnapshot builds a Snapshot from a list of cards. Later duplicates
// of a name win.
func NewSnapshot(cards []*Card) *Snapshot {
	m := make(map[string]*Card, len(cards))
	for _, c := range cards {
		m[c.Name] = c
	}
	return &Snapshot{cards: m}
}

// Get returns the card facts for a name.
func (s *Snapshot) Get(name string) (*Card, bool) {
	c, ok := s.cards[name]
	return c, ok
}

// Len returns the number of distinct cards in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.cards)
}

// Resolve looks up every decklist name in the catalog, substituting a
// placeholder for unknown names and logging each as a data-quality
// warning. The returned map is the only card data the engine touches
// during simulation.
func Resolve(names []string, catalog Catalog, logger *slog.Logger) map[string]*Card {
	if logger == nil {
		logger = slog.Default()
	}
	resolved := make(map[string]*Card, len(names))
	for _, name := range names {
		if _, done := resolved[name]; done {
			continue
		}
		card, ok := catalog.Get(name)
		if !ok {
			logger.Warn("card not found in catalog, using placeholder", "card", name)
			card = Placeholder(name)
		}
		resolved[name] = card
	}
	return resolved
}
