// Package deckexport writes decklists in text, Arena and JSON formats.
package deckexport

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mtg-tools/manalysis/internal/storage"
)

// Format represents the deck export format.
type Format string

const (
	// FormatText is a plain "4 Card Name" list.
	FormatText Format = "text"
	// FormatArena is the MTG Arena import format.
	FormatArena Format = "arena"
	// FormatJSON is a machine-readable JSON document.
	FormatJSON Format = "json"
)

// deckJSON is the JSON wire shape of an exported deck.
type deckJSON struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name"`
	Format     string         `json:"format,omitempty"`
	Cards      []deckCardJSON `json:"cards"`
	TotalCards int            `json:"total_cards"`
}

type deckCardJSON struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// Export writes the deck to w in the requested format.
func Export(w io.Writer, deck *storage.Deck, format Format) error {
	if deck == nil {
		return fmt.Errorf("deck cannot be nil")
	}

	switch format {
	case FormatText:
		return exportText(w, deck)
	case FormatArena:
		return exportArena(w, deck)
	case FormatJSON:
		return exportJSON(w, deck)
	default:
		return fmt.Errorf("unsupported deck format: %s", format)
	}
}

func exportText(w io.Writer, deck *storage.Deck) error {
	for _, name := range sortedNames(deck.Cards) {
		if _, err := fmt.Fprintf(w, "%d %s\n", deck.Cards[name], name); err != nil {
			return fmt.Errorf("write deck line: %w", err)
		}
	}
	return nil
}

func exportArena(w io.Writer, deck *storage.Deck) error {
	if _, err := fmt.Fprintln(w, "Deck"); err != nil {
		return fmt.Errorf("write deck header: %w", err)
	}
	return exportText(w, deck)
}

func exportJSON(w io.Writer, deck *storage.Deck) error {
	out := deckJSON{
		ID:         deck.ID,
		Name:       deck.Name,
		Format:     deck.Format,
		Cards:      make([]deckCardJSON, 0, len(deck.Cards)),
		TotalCards: deck.TotalCards(),
	}
	for _, name := range sortedNames(deck.Cards) {
		out.Cards = append(out.Cards, deckCardJSON{Quantity: deck.Cards[name], Name: name})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode deck JSON: %w", err)
	}
	return nil
}

// sortedNames keeps exports deterministic.
func sortedNames(cards map[string]int) []string {
	names := make([]string, 0, len(cards))
	for name := range cards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
