package main

import (
	"fmt"
	"sort"

	"github.com/mtg-tools/manalysis/internal/manalysis"
)

// displaySourceReport prints the mana source breakdown.
func displaySourceReport(report *manalysis.SourceReport) {
	fmt.Println("\nMana Sources")
	fmt.Println("============")
	fmt.Printf("Distinct sources: %d\n", report.TotalSources)
	fmt.Println()

	displaySourceGroup("Lands", report.Lands, report.Breakdown.Lands)
	displaySourceGroup("Mana dorks", report.ManaDorks, report.Breakdown.ManaDorks)
	displaySourceGroup("Mana artifacts", report.Artifacts, report.Breakdown.Artifacts)
	displaySourceGroup("Other sources", report.OtherSources, report.Breakdown.Other)

	if len(report.ColorProduction) > 0 {
		fmt.Println("Color production (lands and rocks):")
		colors := make([]string, 0, len(report.ColorProduction))
		for color := range report.ColorProduction {
			colors = append(colors, color)
		}
		sort.Strings(colors)
		for _, color := range colors {
			fmt.Printf("  %s: %d\n", color, report.ColorProduction[color])
		}
	}
}

// displaySourceGroup prints one class of sources, collapsing repeated
// copies back into "Nx Name" lines.
func displaySourceGroup(title string, copies []string, total int) {
	if total == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", title, total)

	counts := make(map[string]int)
	order := []string{}
	for _, name := range copies {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	sort.Strings(order)
	for _, name := range order {
		fmt.Printf("  %dx %s\n", counts[name], name)
	}
	fmt.Println()
}
