package manalysis

import (
	"strings"
)

// SourceBreakdown counts mana sources by class, quantity-weighted.
type SourceBreakdown struct {
	Lands     int
	ManaDorks int
	Artifacts int
	Other     int
}

// SourceReport partitions the decklist into mana sources.
type SourceReport struct {
	// Per-class card lists, one entry per copy, in sorted name order.
	Lands        []string
	ManaDorks    []string
	Artifacts    []string
	OtherSources []string

	// TotalSources counts distinct source cards across all classes.
	TotalSources int

	Breakdown SourceBreakdown

	// ColorProduction totals, per color W/U/B/R/G/C, the quantity-
	// weighted number of sources (lands plus rocks/dorks) producing it.
	ColorProduction map[string]int
}

// Oracle phrases that mark a mana ability when a card doesn't declare
// produced colors outright.
var manaKeywords = []string{
	"add {", "add one", "add two", "add three",
	"add any", "add that", "add mana",
}

// AnalyzeManaSources classifies decklist entries into lands, mana dorks,
// mana-producing artifacts and other non-land sources, and totals color
// production.
func (a *Analyzer) AnalyzeManaSources() *SourceReport {
	report := &SourceReport{ColorProduction: make(map[string]int)}
	distinct := make(map[string]bool)

	for _, name := range a.decklist.Names() {
		card := a.card(name)
		qty := a.decklist[name]

		oracle := strings.ToLower(card.OracleText)
		producesMana := card.ProducesMana()
		if !producesMana {
			for _, kw := range manaKeywords {
				if strings.Contains(oracle, kw) {
					producesMana = true
					break
				}
			}
		}

		// All lands count, mana-producing or not.
		if card.IsLand {
			report.Lands = appendCopies(report.Lands, name, qty)
			report.Breakdown.Lands += qty
			distinct[name] = true
		}

		if producesMana {
			switch {
			case card.IsCreature():
				// Covers land creatures like Dryad Arbor too.
				report.ManaDorks = appendCopies(report.ManaDorks, name, qty)
				report.Breakdown.ManaDorks += qty
				distinct[name] = true
			case card.IsArtifact() && !card.IsLand:
				report.Artifacts = appendCopies(report.Artifacts, name, qty)
				report.Breakdown.Artifacts += qty
				distinct[name] = true
			case !card.IsLand:
				report.OtherSources = appendCopies(report.OtherSources, name, qty)
				report.Breakdown.Other += qty
				distinct[name] = true
			}
		}

		if card.IsLand || card.IsManaRock() {
			for _, color := range card.ProducedColors {
				report.ColorProduction[color] += qty
			}
		}
	}

	report.TotalSources = len(distinct)
	return report
}

// ColorStat is a count with its share of the relevant total.
type ColorStat struct {
	Count      int
	Percentage float64
}

// LandColorStat extends ColorStat with the color's share of all land
// production symbols.
type LandColorStat struct {
	Count            int
	Percentage       float64
	SymbolPercentage float64
}

// BalanceTotals holds the denominators of the color balance report.
type BalanceTotals struct {
	NonlandCards int
	Lands        int
	ManaSymbols  int
	LandSymbols  int
}

// ColorBalanceReport contrasts the colors the deck demands with the
// colors its lands produce. Descriptive statistics for display, not
// simulation inputs.
type ColorBalanceReport struct {
	// CardColors counts non-land cards per color identity.
	CardColors map[string]ColorStat
	// ManaSymbols counts colored pips appearing in non-land costs.
	ManaSymbols map[string]ColorStat
	// LandProduction counts lands producing each color.
	LandProduction map[string]LandColorStat
	Totals         BalanceTotals
}

var wubrg = []string{"W", "U", "B", "R", "G"}

// AnalyzeColorBalance tallies mana symbols required by spells against
// mana produced by lands, quantity-weighted, with guarded percentages.
func (a *Analyzer) AnalyzeColorBalance() *ColorBalanceReport {
	cardColors := make(map[string]int)
	symbolsInCosts := make(map[string]int)
	landProducers := make(map[string]int)
	var totals BalanceTotals

	for name, qty := range a.decklist {
		card := a.card(name)

		// Dual-type cards like Dryad Arbor count on both sides.
		if !card.IsLand || card.IsCreature() {
			totals.NonlandCards += qty
			for _, color := range card.ColorIdentity {
				if isWUBRG(color) {
					cardColors[color] += qty
				}
			}
			for _, color := range wubrg {
				n := strings.Count(card.ManaCost, "{"+color+"}")
				symbolsInCosts[color] += n * qty
				totals.ManaSymbols += n * qty
			}
		}

		if card.IsLand {
			totals.Lands += qty
			for _, color := range card.ProducedColors {
				if isWUBRG(color) {
					landProducers[color] += qty
					totals.LandSymbols += qty
				}
			}
		}
	}

	report := &ColorBalanceReport{
		CardColors:     make(map[string]ColorStat),
		ManaSymbols:    make(map[string]ColorStat),
		LandProduction: make(map[string]LandColorStat),
		Totals:         totals,
	}
	for color, count := range cardColors {
		report.CardColors[color] = ColorStat{Count: count, Percentage: pct(count, totals.NonlandCards)}
	}
	for color, count := range symbolsInCosts {
		if count == 0 {
			continue
		}
		report.ManaSymbols[color] = ColorStat{Count: count, Percentage: pct(count, totals.ManaSymbols)}
	}
	for color, count := range landProducers {
		report.LandProduction[color] = LandColorStat{
			Count:            count,
			Percentage:       pct(count, totals.Lands),
			SymbolPercentage: pct(count, totals.LandSymbols),
		}
	}

	return report
}

func appendCopies(list []string, name string, qty int) []string {
	for i := 0; i < qty; i++ {
		list = append(list, name)
	}
	return list
}

func isWUBRG(color string) bool {
	switch color {
	case "W", "U", "B", "R", "G":
		return true
	}
	return false
}

// pct is a division-by-zero-guarded percentage.
func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
