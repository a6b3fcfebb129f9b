package manalysis

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mtg-tools/manalysis/internal/cards"
)

// testCatalog returns a snapshot with a spread of well-known cards used
// across the package tests.
func testCatalog() *cards.Snapshot {
	return cards.NewSnapshot([]*cards.Card{
		{Name: "Plains", TypeLine: "Basic Land — Plains", IsLand: true, ProducedColors: []string{"W"}},
		{Name: "Island", TypeLine: "Basic Land — Island", IsLand: true, ProducedColors: []string{"U"}},
		{Name: "Swamp", TypeLine: "Basic Land — Swamp", IsLand: true, ProducedColors: []string{"B"}},
		{Name: "Mountain", TypeLine: "Basic Land — Mountain", IsLand: true, ProducedColors: []string{"R"}},
		{Name: "Forest", TypeLine: "Basic Land — Forest", IsLand: true, ProducedColors: []string{"G"}},
		{
			Name: "Memnite", TypeLine: "Artifact Creature — Construct",
			ManaCost: "{0}", ManaValue: 0,
		},
		{
			Name: "Llanowar Elves", TypeLine: "Creature — Elf Druid",
			ManaCost: "{G}", ManaValue: 1, ColorIdentity: []string{"G"},
			ProducedColors: []string{"G"}, OracleText: "{T}: Add {G}.",
		},
		{
			Name: "Sol Ring", TypeLine: "Artifact",
			ManaCost: "{1}", ManaValue: 1,
			ProducedColors: []string{"C"}, OracleText: "{T}: Add {C}{C}.",
		},
		{
			Name: "Wild Growth", TypeLine: "Enchantment — Aura",
			ManaCost: "{G}", ManaValue: 1, ColorIdentity: []string{"G"},
			ProducedColors: []string{"G"},
			OracleText:     "Whenever enchanted land is tapped for mana, its controller adds an additional {G}.",
		},
		{
			Name: "Grizzly Bears", TypeLine: "Creature — Bear",
			ManaCost: "{1}{G}", ManaValue: 2, ColorIdentity: []string{"G"},
		},
		{
			Name: "Lightning Bolt", TypeLine: "Instant",
			ManaCost: "{R}", ManaValue: 1, ColorIdentity: []string{"R"},
			OracleText: "Lightning Bolt deals 3 damage to any target.",
		},
		{
			Name: "Divination", TypeLine: "Sorcery",
			ManaCost: "{2}{U}", ManaValue: 3, ColorIdentity: []string{"U"},
			OracleText: "Draw two cards.",
		},
		{
			Name: "Shivan Dragon", TypeLine: "Creature — Dragon",
			ManaCost: "{4}{R}{R}", ManaValue: 6, ColorIdentity: []string{"R"},
		},
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustAnalyzer(t *testing.T, decklist Decklist) *Analyzer {
	t.Helper()
	a, err := New(decklist, testCatalog(), testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Decklist{"Forest": 1}, nil, testLogger()); err == nil {
		t.Error("expected error for nil catalog")
	}
	if _, err := New(Decklist{"Forest": 0}, testCatalog(), testLogger()); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := New(Decklist{"Forest": -2}, testCatalog(), testLogger()); err == nil {
		t.Error("expected error for negative quantity")
	}
}

func TestNewResolvesUnknownCardsToPlaceholders(t *testing.T) {
	a := mustAnalyzer(t, Decklist{"Forest": 1, "Totally Made Up": 2})
	card := a.card("Totally Made Up")
	if card == nil {
		t.Fatal("unknown card not materialized")
	}
	if card.ManaValue != 0 || card.IsLand || card.ProducesMana() {
		t.Errorf("placeholder should be zero-valued and inert: %+v", card)
	}
}

func TestDecklistExpand(t *testing.T) {
	d := Decklist{"Forest": 2, "Llanowar Elves": 1}
	if d.TotalCards() != 3 {
		t.Fatalf("TotalCards() = %d, want 3", d.TotalCards())
	}

	deck := d.Expand()
	if len(deck) != 3 {
		t.Fatalf("Expand() has %d entries, want 3", len(deck))
	}
	// Sorted name order keeps expansion deterministic.
	want := []string{"Forest", "Forest", "Llanowar Elves"}
	for i, name := range want {
		if deck[i] != name {
			t.Errorf("Expand()[%d] = %q, want %q", i, deck[i], name)
		}
	}
}
