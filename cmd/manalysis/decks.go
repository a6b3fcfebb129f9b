package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mtg-tools/manalysis/internal/deckexport"
	"github.com/mtg-tools/manalysis/internal/storage"
)

func runDecksCommand(args []string) {
	if len(args) < 1 {
		printDecksUsage()
		os.Exit(1)
	}

	sub := args[0]
	rest := args[1:]

	switch sub {
	case "list":
		runDecksList(rest)
	case "show":
		runDecksShow(rest)
	case "save":
		runDecksSave(rest)
	case "delete":
		runDecksDelete(rest)
	case "export":
		runDecksExport(rest)
	default:
		fmt.Fprintf(os.Stderr, "Unknown decks subcommand: %s\n\n", sub)
		printDecksUsage()
		os.Exit(1)
	}
}

func printDecksUsage() {
	fmt.Println("Usage: manalysis decks <subcommand> [options]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  list    - List saved decks")
	fmt.Println("  show    - Show a saved deck's card list")
	fmt.Println("  save    - Save a decklist file")
	fmt.Println("  delete  - Delete a saved deck")
	fmt.Println("  export  - Export a saved deck (text/arena/json)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  manalysis decks save -deck mydeck.txt -name \"Mono Green\" -format modern")
	fmt.Println("  manalysis decks export -id <deck-id> -as arena")
}

func runDecksList(args []string) {
	fs := flag.NewFlagSet("decks list", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	_ = fs.Parse(args)

	svc, cleanup := openService(loadConfig(*configPath), *dbPath)
	defer cleanup()

	decks, err := svc.ListDecks(context.Background())
	if err != nil {
		log.Fatalf("Error listing decks: %v", err)
	}
	if len(decks) == 0 {
		fmt.Println("No saved decks.")
		return
	}

	fmt.Println("\nSaved Decks")
	fmt.Println("===========")
	for _, deck := range decks {
		format := deck.Format
		if format == "" {
			format = "-"
		}
		fmt.Printf("%s  %-30s %-10s updated %s\n",
			deck.ID, deck.Name, format, deck.UpdatedAt.Format("2006-01-02"))
	}
}

func runDecksShow(args []string) {
	fs := flag.NewFlagSet("decks show", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	id := fs.String("id", "", "Deck ID")
	_ = fs.Parse(args)

	deck := mustGetDeck(*configPath, *dbPath, *id)

	fmt.Printf("\n%s (%d cards)\n", deck.Name, deck.TotalCards())
	fmt.Println("========================")
	if err := deckexport.Export(os.Stdout, deck, deckexport.FormatText); err != nil {
		log.Fatalf("Error printing deck: %v", err)
	}
}

func runDecksSave(args []string) {
	fs := flag.NewFlagSet("decks save", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	deckPath := fs.String("deck", "", "Path to decklist file")
	name := fs.String("name", "", "Deck name")
	format := fs.String("format", "", "Deck format (modern, commander, ...)")
	id := fs.String("id", "", "Existing deck ID to overwrite")
	_ = fs.Parse(args)

	if *name == "" {
		log.Fatal("A deck name is required; pass -name")
	}

	decklist := loadDecklist(*deckPath)

	svc, cleanup := openService(loadConfig(*configPath), *dbPath)
	defer cleanup()

	deck := &storage.Deck{
		ID:     *id,
		Name:   *name,
		Format: *format,
		Cards:  decklist,
	}
	if err := svc.SaveDeck(context.Background(), deck); err != nil {
		log.Fatalf("Error saving deck: %v", err)
	}

	fmt.Printf("Saved deck %q (%d cards) with id %s\n", deck.Name, deck.TotalCards(), deck.ID)
}

func runDecksDelete(args []string) {
	fs := flag.NewFlagSet("decks delete", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	id := fs.String("id", "", "Deck ID")
	_ = fs.Parse(args)

	if *id == "" {
		log.Fatal("A deck ID is required; pass -id")
	}

	svc, cleanup := openService(loadConfig(*configPath), *dbPath)
	defer cleanup()

	if err := svc.DeleteDeck(context.Background(), *id); err != nil {
		log.Fatalf("Error deleting deck: %v", err)
	}
	fmt.Printf("Deleted deck %s\n", *id)
}

func runDecksExport(args []string) {
	fs := flag.NewFlagSet("decks export", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	id := fs.String("id", "", "Deck ID")
	as := fs.String("as", "text", "Export format: text, arena or json")
	out := fs.String("out", "", "Output file (default stdout)")
	_ = fs.Parse(args)

	deck := mustGetDeck(*configPath, *dbPath, *id)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Error creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := deckexport.Export(w, deck, deckexport.Format(*as)); err != nil {
		log.Fatalf("Error exporting deck: %v", err)
	}
}

func mustGetDeck(configPath, dbPath, id string) *storage.Deck {
	if id == "" {
		log.Fatal("A deck ID is required; pass -id")
	}

	svc, cleanup := openService(loadConfig(configPath), dbPath)
	defer cleanup()

	deck, err := svc.GetDeck(context.Background(), id)
	if err != nil {
		log.Fatalf("Error loading deck: %v", err)
	}
	if deck == nil {
		log.Fatalf("No deck with id %s", id)
	}
	return deck
}
