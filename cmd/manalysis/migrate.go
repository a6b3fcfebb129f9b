package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mtg-tools/manalysis/internal/storage"
)

func runMigrateCommand(args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to card database (overrides config)")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		printMigrateUsage()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	path := *dbPath
	if path == "" {
		var err error
		path, err = cfg.DatabasePath()
		if err != nil {
			log.Fatalf("Error resolving database path: %v", err)
		}
	}

	mgr, err := storage.NewMigrationManager(path)
	if err != nil {
		log.Fatalf("Error creating migration manager: %v", err)
	}
	defer func() {
		if err := mgr.Close(); err != nil {
			log.Printf("Error closing migration manager: %v", err)
		}
	}()

	switch fs.Arg(0) {
	case "up":
		fmt.Println("Applying all pending migrations...")
		if err := mgr.Up(); err != nil {
			log.Fatalf("Error applying migrations: %v", err)
		}
		printMigrateVersion(mgr)

	case "down":
		fmt.Println("Rolling back migrations...")
		if err := mgr.Down(); err != nil {
			log.Fatalf("Error rolling back migrations: %v", err)
		}
		printMigrateVersion(mgr)

	case "status", "version":
		printMigrateVersion(mgr)

	default:
		printMigrateUsage()
		os.Exit(1)
	}
}

func printMigrateVersion(mgr *storage.MigrationManager) {
	version, dirty, err := mgr.Version()
	if err != nil {
		log.Fatalf("Error getting version: %v", err)
	}
	if dirty {
		fmt.Printf("Current version: %d (dirty - migration failed or interrupted)\n", version)
	} else {
		fmt.Printf("Current version: %d\n", version)
	}
}

func printMigrateUsage() {
	fmt.Println("Usage: manalysis migrate [options] <up|down|status>")
}
