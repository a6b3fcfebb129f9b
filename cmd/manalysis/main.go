package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "curve":
		runCurveCommand(os.Args[2:])
	case "hands":
		runHandsCommand(os.Args[2:])
	case "casting":
		runCastingCommand(os.Args[2:])
	case "sources":
		runSourcesCommand(os.Args[2:])
	case "charts":
		runChartsCommand(os.Args[2:])
	case "decks":
		runDecksCommand(os.Args[2:])
	case "import-cards":
		runImportCardsCommand(os.Args[2:])
	case "migrate":
		runMigrateCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Manalysis - Deck Mana Analysis")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("Usage: manalysis <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  curve        - Mana curve, discounts and color balance for a decklist")
	fmt.Println("  hands        - Simulate opening hands and their land counts")
	fmt.Println("  casting      - Simulate full games and report per-card castability")
	fmt.Println("  sources      - Break down the deck's mana sources")
	fmt.Println("  charts       - Render curve, hands and casting reports as HTML charts")
	fmt.Println("  decks        - Manage saved decks (list/show/save/delete/export)")
	fmt.Println("  import-cards - Populate the local card catalog from Scryfall")
	fmt.Println("  migrate      - Run database migrations (up/down/status)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  manalysis curve -deck mydeck.txt")
	fmt.Println("  manalysis hands -deck mydeck.txt -n 5000")
	fmt.Println("  manalysis casting -deck mydeck.txt -n 2000 -seed 42")
	fmt.Println("  manalysis decks save -deck mydeck.txt -name \"Mono Green\"")
	fmt.Println("  manalysis import-cards")
	fmt.Println()
}
