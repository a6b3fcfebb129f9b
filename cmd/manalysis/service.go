package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mtg-tools/manalysis/internal/config"
	"github.com/mtg-tools/manalysis/internal/deckimport"
	"github.com/mtg-tools/manalysis/internal/manalysis"
	"github.com/mtg-tools/manalysis/internal/storage"
)

// newLogger builds the process logger. Debug mode lowers the level and
// keeps source locations out of the way.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the configuration, from an explicit path when given.
func loadConfig(path string) *config.Config {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	return cfg
}

// openService opens the catalog database per the configuration. Callers
// must invoke the returned cleanup.
func openService(cfg *config.Config, dbPathOverride string) (*storage.Service, func()) {
	dbPath := dbPathOverride
	if dbPath == "" {
		var err error
		dbPath, err = cfg.DatabasePath()
		if err != nil {
			log.Fatalf("Error resolving database path: %v", err)
		}
	}

	dbConfig := storage.DefaultConfig(dbPath)
	dbConfig.AutoMigrate = cfg.Database.AutoMigrate

	db, err := storage.Open(dbConfig)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	return storage.NewService(db), cleanup
}

// loadDecklist reads and parses a decklist file, echoing parse warnings
// to stderr.
func loadDecklist(path string) manalysis.Decklist {
	if path == "" {
		log.Fatal("A decklist is required; pass -deck <file>")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Error opening decklist: %v", err)
	}
	defer f.Close()

	result, err := deckimport.Parse(f)
	if err != nil {
		log.Fatalf("Error parsing decklist: %v", err)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if len(result.Cards) == 0 {
		log.Fatalf("Decklist %s contains no cards", path)
	}

	return manalysis.Decklist(result.Cards)
}

// newAnalyzer wires a decklist to the stored card catalog.
func newAnalyzer(ctx context.Context, svc *storage.Service, decklist manalysis.Decklist, logger *slog.Logger) *manalysis.Analyzer {
	snapshot, err := svc.LoadSnapshot(ctx)
	if err != nil {
		log.Fatalf("Error loading card catalog: %v", err)
	}
	if snapshot.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: card catalog is empty; run 'manalysis import-cards' first")
	}

	analyzer, err := manalysis.New(decklist, snapshot, logger)
	if err != nil {
		log.Fatalf("Error building analyzer: %v", err)
	}
	return analyzer
}

// analyzerFromFlags is the shared setup path of the analysis commands.
func analyzerFromFlags(ctx context.Context, configPath, dbPath, deckPath string, debug bool) (*manalysis.Analyzer, *config.Config, func()) {
	cfg := loadConfig(configPath)
	if debug {
		cfg.App.DebugMode = true
	}
	logger := newLogger(cfg.App.DebugMode)

	svc, cleanup := openService(cfg, dbPath)
	decklist := loadDecklist(deckPath)
	analyzer := newAnalyzer(ctx, svc, decklist, logger)
	return analyzer, cfg, cleanup
}
