package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mtg-tools/manalysis/internal/cards"
	"github.com/mtg-tools/manalysis/internal/cards/scryfall"
)

// runImportCardsCommand populates the local catalog from a Scryfall
// bulk file, either downloaded or read from disk.
func runImportCardsCommand(args []string) {
	fs := flag.NewFlagSet("import-cards", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	bulkFile := fs.String("file", "", "Import from a local Scryfall bulk JSON file instead of downloading")
	bulkType := fs.String("type", "oracle_cards", "Scryfall bulk data type to download")
	_ = fs.Parse(args)

	ctx := context.Background()

	svc, cleanup := openService(loadConfig(*configPath), *dbPath)
	defer cleanup()

	var scryfallCards []*scryfall.Card
	var err error

	if *bulkFile != "" {
		f, openErr := os.Open(*bulkFile)
		if openErr != nil {
			log.Fatalf("Error opening bulk file: %v", openErr)
		}
		defer f.Close()

		fmt.Printf("Importing cards from %s...\n", *bulkFile)
		scryfallCards, err = scryfall.DecodeCards(f)
	} else {
		client := scryfall.NewClient()

		list, listErr := client.GetBulkData(ctx)
		if listErr != nil {
			log.Fatalf("Error listing bulk data: %v", listErr)
		}

		var downloadURI string
		for _, bd := range list.Data {
			if bd.Type == *bulkType {
				downloadURI = bd.DownloadURI
				break
			}
		}
		if downloadURI == "" {
			log.Fatalf("Bulk data type %q not offered by Scryfall", *bulkType)
		}

		fmt.Printf("Downloading %s bulk data...\n", *bulkType)
		scryfallCards, err = client.DownloadBulk(ctx, downloadURI)
	}
	if err != nil {
		log.Fatalf("Error reading bulk data: %v", err)
	}

	batch := make([]*cards.Card, 0, len(scryfallCards))
	for _, sc := range scryfallCards {
		batch = append(batch, sc.ToCard())
	}

	if err := svc.SaveCards(ctx, batch); err != nil {
		log.Fatalf("Error saving cards: %v", err)
	}

	count, err := svc.CountCards(ctx)
	if err != nil {
		log.Fatalf("Error counting cards: %v", err)
	}
	fmt.Printf("Imported %d cards; catalog now holds %d.\n", len(batch), count)
}
