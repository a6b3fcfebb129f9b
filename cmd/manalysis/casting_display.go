package main

import (
	"fmt"
	"sort"

	"github.com/mtg-tools/manalysis/internal/manalysis"
)

// displayCastingReport prints per-card casting statistics sorted by
// mana value, then name.
func displayCastingReport(report *manalysis.CastingReport) {
	fmt.Println("\nCasting Analysis")
	fmt.Println("================")
	fmt.Printf("Simulated %d games over %d turns (seed %d)\n",
		report.Simulations, report.Turns, report.Seed)
	fmt.Println()

	names := make([]string, 0, len(report.CardStats))
	for name := range report.CardStats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := report.CardStats[names[i]], report.CardStats[names[j]]
		if a.ManaValue != b.ManaValue {
			return a.ManaValue < b.ManaValue
		}
		return names[i] < names[j]
	})

	fmt.Printf("%-30s %3s %6s %9s %9s %9s\n",
		"Card", "MV", "Drawn", "Cast %", "Earliest", "Avg Turn")
	for _, name := range names {
		stats := report.CardStats[name]
		earliest := "-"
		avgTurn := "-"
		if stats.TimesCast > 0 {
			earliest = fmt.Sprintf("%d", stats.EarliestTurn)
			avgTurn = fmt.Sprintf("%.1f", stats.AverageCastTurn)
		}
		fmt.Printf("%-30s %3d %5.1f%% %8.1f%% %9s %9s\n",
			name, stats.ManaValue, stats.DrawPercentage,
			stats.CastProbability*100, earliest, avgTurn)
	}

	fmt.Println("\nDeck cast progress (mean % of distinct spells cast by turn):")
	for turn := 1; turn <= report.Turns; turn++ {
		fmt.Printf("  Turn %2d: %5.1f%%\n", turn, report.CastByTurn[turn])
	}

	if len(report.ProblematicCards) > 0 {
		fmt.Println("\nProblematic cards (never cast in any simulation):")
		for _, name := range report.ProblematicCards {
			fmt.Printf("  - %s\n", name)
		}
	}
}
