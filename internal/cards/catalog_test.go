package cards

import (
	"io"
	"log/slog"
	"testing"
)

func TestSnapshotGet(t *testing.T) {
	snap := NewSnapshot([]*Card{
		{Name: "Forest", TypeLine: "Basic Land — Forest", IsLand: true, ProducedColors: []string{"G"}},
		{Name: "Llanowar Elves", TypeLine: "Creature — Elf Druid", ManaCost: "{G}", ManaValue: 1, ProducedColors: []string{"G"}},
	})

	if snap.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", snap.Len())
	}

	card, ok := snap.Get("Forest")
	if !ok {
		t.Fatal("Forest not found")
	}
	if !card.IsLand {
		t.Error("Forest should be a land")
	}

	if _, ok := snap.Get("Black Lotus"); ok {
		t.Error("unexpected hit for missing card")
	}
}

func TestResolveSubstitutesPlaceholder(t *testing.T) {
	snap := NewSnapshot([]*Card{
		{Name: "Mountain", TypeLine: "Basic Land — Mountain", IsLand: true, ProducedColors: []string{"R"}},
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolved := Resolve([]string{"Mountain", "Misspelled Bolt", "Mountain"}, snap, logger)
	if len(resolved) != 2 {
		t.Fatalf("resolved %d cards, want 2", len(resolved))
	}

	ph := resolved["Misspelled Bolt"]
	if ph == nil {
		t.Fatal("missing placeholder entry")
	}
	if ph.ManaValue != 0 || ph.IsLand || ph.ProducesMana() {
		t.Errorf("placeholder not zero-valued: %+v", ph)
	}
}

func TestCardPredicates(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		creature bool
		perm     bool
		rock     bool
	}{
		{
			name: "sol ring is a rock",
			card: Card{Name: "Sol Ring", TypeLine: "Artifact", ProducedColors: []string{"C"}},
			perm: true, rock: true,
		},
		{
			name: "mana dork is creature and rock",
			card: Card{Name: "Llanowar Elves", TypeLine: "Creature — Elf Druid", ProducedColors: []string{"G"}},
			creature: true, perm: true, rock: true,
		},
		{
			name: "land producer is not a rock",
			card: Card{Name: "Forest", TypeLine: "Basic Land — Forest", IsLand: true, ProducedColors: []string{"G"}},
			perm: true,
		},
		{
			name: "instant is not a permanent",
			card: Card{Name: "Lightning Bolt", TypeLine: "Instant"},
		},
		{
			name: "mana-producing instant is not a rock",
			card: Card{Name: "Dark Ritual", TypeLine: "Instant", ProducedColors: []string{"B"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.IsCreature(); got != tt.creature {
				t.Errorf("IsCreature() = %v, want %v", got, tt.creature)
			}
			if got := tt.card.IsPermanent(); got != tt.perm {
				t.Errorf("IsPermanent() = %v, want %v", got, tt.perm)
			}
			if got := tt.card.IsManaRock(); got != tt.rock {
				t.Errorf("IsManaRock() = %v, want %v", got, tt.rock)
			}
		})
	}
}

func TestDeriveIsLand(t *testing.T) {
	if !DeriveIsLand("Legendary Land") {
		t.Error("expected land")
	}
	if DeriveIsLand("Sorcery") {
		t.Error("expected non-land")
	}
}
