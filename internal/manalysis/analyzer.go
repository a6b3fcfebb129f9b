// Package manalysis implements deck mana analysis: mana curve and curve
// health, mana source classification, opening-hand simulation and
// probabilistic casting analysis over a fixed turn horizon.
package manalysis

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mtg-tools/manalysis/internal/cards"
)

// Decklist maps card names to positive copy counts. Order is irrelevant.
type Decklist map[string]int

// TotalCards returns the deck size, the sum of all quantities.
func (d Decklist) TotalCards() int {
	total := 0
	for _, qty := range d {
		total += qty
	}
	return total
}

// Names returns the distinct card names in sorted order.
func (d Decklist) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand flattens the decklist into one entry per copy, in sorted name
// order so expansion is deterministic.
func (d Decklist) Expand() []string {
	deck := make([]string, 0, d.TotalCards())
	for _, name := range d.Names() {
		for i := 0; i < d[name]; i++ {
			deck = append(deck, name)
		}
	}
	return deck
}

// Analyzer answers statistical questions about one decklist. Card facts
// are materialized from the catalog once at construction; no catalog or
// I/O access happens during simulation.
type Analyzer struct {
	decklist Decklist
	cards    map[string]*cards.Card
	logger   *slog.Logger
}

// New creates an Analyzer for a decklist. Unknown card names degrade to
// zero-value placeholders and are logged as warnings, never errors.
func New(decklist Decklist, catalog cards.Catalog, logger *slog.Logger) (*Analyzer, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	for name, qty := range decklist {
		if qty <= 0 {
			return nil, fmt.Errorf("card %q has non-positive quantity %d", name, qty)
		}
	}

	return &Analyzer{
		decklist: decklist,
		cards:    cards.Resolve(decklist.Names(), catalog, logger),
		logger:   logger,
	}, nil
}

// card returns the materialized facts for a decklist card. Every
// decklist name has an entry after construction.
func (a *Analyzer) card(name string) *cards.Card {
	return a.cards[name]
}

// landCount returns the quantity-weighted number of lands in the deck.
func (a *Analyzer) landCount() int {
	total := 0
	for name, qty := range a.decklist {
		if a.card(name).IsLand {
			total += qty
		}
	}
	return total
}
