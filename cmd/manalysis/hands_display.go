package main

import (
	"fmt"

	"github.com/mtg-tools/manalysis/internal/manalysis"
)

// displayHandsReport prints opening hand statistics.
func displayHandsReport(report *manalysis.OpeningHandReport) {
	fmt.Println("\nOpening Hands")
	fmt.Println("=============")
	fmt.Printf("Simulated %d hands (seed %d)\n", report.Simulations, report.Seed)
	fmt.Printf("Deck: %d lands (%.1f%%)\n", report.TotalLandsInDeck, report.LandPercentage)
	fmt.Println()
	fmt.Println(report.Visualization)
	fmt.Println()
	fmt.Printf("Average lands per hand: %.2f\n", report.AverageLands)
	fmt.Printf("Hands with no lands:    %.1f%%\n", report.NoLandPercentage)
}
