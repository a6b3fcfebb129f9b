package manalysis

import (
	"math"
	"testing"
)

func TestCurveHistogramSumsToNonlandCount(t *testing.T) {
	decks := []Decklist{
		{"Forest": 24, "Llanowar Elves": 4, "Grizzly Bears": 12, "Shivan Dragon": 2},
		{"Mountain": 20, "Lightning Bolt": 4},
		{"Island": 40},
	}

	for _, deck := range decks {
		a := mustAnalyzer(t, deck)
		report := a.CalculateManaCurve()

		sum := 0
		for _, count := range report.Original.Curve {
			sum += count
		}
		nonland := deck.TotalCards() - a.landCount()
		if sum != nonland {
			t.Errorf("histogram sum = %d, want %d non-land cards", sum, nonland)
		}
		if report.TotalSpells != nonland {
			t.Errorf("TotalSpells = %d, want %d", report.TotalSpells, nonland)
		}
		if report.TotalCards != deck.TotalCards() {
			t.Errorf("TotalCards = %d, want %d", report.TotalCards, deck.TotalCards())
		}
	}
}

func TestCurveZeroCostDeck(t *testing.T) {
	// 60 cards: 24 lands, 36 zero-cost spells.
	a := mustAnalyzer(t, Decklist{"Plains": 24, "Memnite": 36})
	report := a.CalculateManaCurve()

	if got := report.Original.StatsWithoutLands.Average; got != 0 {
		t.Errorf("average without lands = %v, want 0", got)
	}
	if len(report.Original.Curve) != 1 || report.Original.Curve[0] != 36 {
		t.Errorf("curve = %v, want {0: 36}", report.Original.Curve)
	}
}

func TestCurveStats(t *testing.T) {
	// Non-land values expanded: [1 1 1 1 2 2 6] -> mean 2, upper median 1.
	a := mustAnalyzer(t, Decklist{
		"Lightning Bolt": 4,
		"Grizzly Bears":  2,
		"Shivan Dragon":  1,
		"Mountain":       3,
	})
	report := a.CalculateManaCurve()

	if got := report.Original.StatsWithoutLands.Average; math.Abs(got-2.0) > 1e-9 {
		t.Errorf("average without lands = %v, want 2", got)
	}
	if got := report.Original.StatsWithoutLands.Median; got != 1 {
		t.Errorf("median without lands = %d, want 1", got)
	}

	// With lands: [0 0 0 1 1 1 1 2 2 6] -> mean 1.4, upper median 1.
	if got := report.Original.StatsWithLands.Average; math.Abs(got-1.4) > 1e-9 {
		t.Errorf("average with lands = %v, want 1.4", got)
	}
	if got := report.Original.TotalManaValue; got != 14 {
		t.Errorf("total mana value = %d, want 14", got)
	}
}

func TestCurveHealthClassification(t *testing.T) {
	tests := []struct {
		name  string
		curve map[int]int
		total int
		want  HealthStatus
	}{
		{"all early", map[int]int{1: 10}, 10, HealthHealthy},
		{"exactly 30 percent early", map[int]int{2: 3, 6: 7}, 10, HealthHealthy},
		{"exactly 20 percent early", map[int]int{0: 2, 4: 8}, 10, HealthModerate},
		{"under 20 percent early", map[int]int{2: 1, 5: 9}, 10, HealthPoor},
		{"no early plays", map[int]int{6: 10}, 10, HealthPoor},
		{"empty curve", map[int]int{}, 0, HealthPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := classifyCurveHealth(tt.curve, tt.total)
			if health.Status != tt.want {
				t.Errorf("status = %q, want %q (dist %+v)", health.Status, tt.want, health.Distribution)
			}
			if health.Message == "" {
				t.Error("health message must not be empty")
			}
		})
	}
}

func TestCurveHealthDistribution(t *testing.T) {
	curve := map[int]int{0: 2, 3: 5, 7: 3}
	health := classifyCurveHealth(curve, 10)

	if math.Abs(health.Distribution.EarlyGame-20) > 1e-9 {
		t.Errorf("early = %v, want 20", health.Distribution.EarlyGame)
	}
	if math.Abs(health.Distribution.MidGame-50) > 1e-9 {
		t.Errorf("mid = %v, want 50", health.Distribution.MidGame)
	}
	if math.Abs(health.Distribution.LateGame-30) > 1e-9 {
		t.Errorf("late = %v, want 30", health.Distribution.LateGame)
	}
}

func TestCurveEmptyDecklist(t *testing.T) {
	a := mustAnalyzer(t, Decklist{})
	report := a.CalculateManaCurve()

	if report.TotalCards != 0 || report.TotalSpells != 0 {
		t.Errorf("expected zero totals, got cards=%d spells=%d", report.TotalCards, report.TotalSpells)
	}
	if report.Original.StatsWithLands.Average != 0 {
		t.Errorf("average = %v, want 0", report.Original.StatsWithLands.Average)
	}
	if report.Health.Status != HealthPoor {
		t.Errorf("empty deck health = %q, want Poor", report.Health.Status)
	}
	if report.Original.Visualization != "" {
		t.Error("empty deck should have no visualization")
	}
}

func TestCurveVisualizationProportionalBars(t *testing.T) {
	report := mustAnalyzer(t, Decklist{"Lightning Bolt": 4, "Grizzly Bears": 2}).CalculateManaCurve()

	viz := report.Original.Visualization
	if viz == "" {
		t.Fatal("expected a visualization")
	}
	// Rows: leading blank, then MV 0, 1, 2. The fullest bucket (MV 1,
	// 4 cards) renders 10 blocks; MV 2 gets 5; MV 0 none.
	lines := splitLines(viz)
	if countRunes(lines[1], '█') != 0 {
		t.Errorf("MV 0 bar = %d blocks, want 0 (line %q)", countRunes(lines[1], '█'), lines[1])
	}
	if countRunes(lines[2], '█') != 10 {
		t.Errorf("MV 1 bar = %d blocks, want 10 (line %q)", countRunes(lines[2], '█'), lines[2])
	}
	if countRunes(lines[3], '█') != 5 {
		t.Errorf("MV 2 bar = %d blocks, want 5 (line %q)", countRunes(lines[3], '█'), lines[3])
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func countRunes(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
