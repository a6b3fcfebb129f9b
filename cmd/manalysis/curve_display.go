package main

import (
	"fmt"
	"sort"

	"github.com/mtg-tools/manalysis/internal/manalysis"
)

// displayCurveReport prints the full mana curve analysis.
func displayCurveReport(report *manalysis.CurveReport) {
	fmt.Println("\nMana Curve")
	fmt.Println("==========")
	fmt.Printf("Cards: %d (%d spells, %d lands)\n",
		report.TotalCards, report.TotalSpells, report.TotalCards-report.TotalSpells)
	fmt.Println(report.Original.Visualization)
	fmt.Println()

	fmt.Printf("Average mana value: %.2f (%.2f with lands)\n",
		report.Original.StatsWithoutLands.Average, report.Original.StatsWithLands.Average)
	fmt.Printf("Median mana value:  %d (%d with lands)\n",
		report.Original.StatsWithoutLands.Median, report.Original.StatsWithLands.Median)
	fmt.Printf("Total mana value:   %d\n", report.Original.TotalManaValue)

	if report.Discounts != nil && report.Discounts.TotalReduction.Total > 0 {
		fmt.Println("\nWith cost reductions")
		fmt.Println("--------------------")
		fmt.Println(report.Reduced.Visualization)
		fmt.Println()
		fmt.Printf("Average mana value: %.2f (%.2f with lands)\n",
			report.Reduced.StatsWithoutLands.Average, report.Reduced.StatsWithLands.Average)
		displayDiscounts(report.Discounts)
	}

	fmt.Println("\nCurve Health")
	fmt.Println("------------")
	fmt.Printf("Status: %s\n", report.Health.Status)
	fmt.Printf("  %s\n", report.Health.Message)
	fmt.Printf("  Early game (0-2): %5.1f%%\n", report.Health.Distribution.EarlyGame)
	fmt.Printf("  Mid game   (3-5): %5.1f%%\n", report.Health.Distribution.MidGame)
	fmt.Printf("  Late game  (6+):  %5.1f%%\n", report.Health.Distribution.LateGame)

	if report.Sources != nil {
		b := report.Sources.Breakdown
		fmt.Printf("\nMana sources: %d lands, %d dorks, %d artifacts, %d other\n",
			b.Lands, b.ManaDorks, b.Artifacts, b.Other)
	}

	if report.ColorBalance != nil {
		displayColorBalance(report.ColorBalance)
	}
}

func displayDiscounts(report *manalysis.DiscountReport) {
	fmt.Printf("\nCost reductions found on %d cards:\n", report.TotalCards)
	for _, d := range report.Cards {
		fmt.Printf("  %dx %-30s %s -> %s (%s)\n",
			d.Quantity, d.CardName, d.OriginalCost, d.PotentialCost, d.Type)
	}
	fmt.Printf("Total reliable reduction: %d generic mana\n", report.TotalReduction.Total)
}

func displayColorBalance(report *manalysis.ColorBalanceReport) {
	fmt.Println("\nColor Balance")
	fmt.Println("-------------")

	fmt.Println("Mana symbols in costs:")
	for _, color := range sortedColorKeys(report.ManaSymbols) {
		stat := report.ManaSymbols[color]
		fmt.Printf("  %s: %3d (%5.1f%%)\n", color, stat.Count, stat.Percentage)
	}

	fmt.Println("Land color production:")
	for _, color := range sortedLandColorKeys(report.LandProduction) {
		stat := report.LandProduction[color]
		fmt.Printf("  %s: %3d lands (%5.1f%% of lands, %5.1f%% of production)\n",
			color, stat.Count, stat.Percentage, stat.SymbolPercentage)
	}
}

func sortedColorKeys(m map[string]manalysis.ColorStat) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedLandColorKeys(m map[string]manalysis.LandColorStat) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
