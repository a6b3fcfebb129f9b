package deckexport

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mtg-tools/manalysis/internal/deckimport"
	"github.com/mtg-tools/manalysis/internal/storage"
)

func testDeck() *storage.Deck {
	return &storage.Deck{
		ID:     "deck-1",
		Name:   "Burn",
		Format: "modern",
		Cards:  map[string]int{"Mountain": 20, "Lightning Bolt": 4},
	}
}

func TestExportText(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testDeck(), FormatText); err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := "4 Lightning Bolt\n20 Mountain\n"
	if buf.String() != want {
		t.Errorf("text export = %q, want %q", buf.String(), want)
	}
}

func TestExportArena(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testDeck(), FormatArena); err != nil {
		t.Fatalf("Export: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "Deck\n") {
		t.Errorf("arena export missing Deck header: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "4 Lightning Bolt\n") {
		t.Errorf("arena export missing card line: %q", buf.String())
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, testDeck(), FormatJSON); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var decoded struct {
		Name       string `json:"name"`
		TotalCards int    `json:"total_cards"`
		Cards      []struct {
			Quantity int    `json:"quantity"`
			Name     string `json:"name"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != "Burn" || decoded.TotalCards != 24 {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Cards) != 2 || decoded.Cards[0].Name != "Lightning Bolt" {
		t.Errorf("cards not sorted: %+v", decoded.Cards)
	}
}

func TestExportRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil, FormatText); err == nil {
		t.Error("expected error for nil deck")
	}
	if err := Export(&buf, testDeck(), Format("yaml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportRoundTripsThroughImport(t *testing.T) {
	deck := testDeck()

	var buf bytes.Buffer
	if err := Export(&buf, deck, FormatArena); err != nil {
		t.Fatalf("Export: %v", err)
	}

	parsed, err := deckimport.Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for name, qty := range deck.Cards {
		if parsed.Cards[name] != qty {
			t.Errorf("round trip lost %q: got %d, want %d", name, parsed.Cards[name], qty)
		}
	}
}
