package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mtg-tools/manalysis/internal/charts"
	"github.com/mtg-tools/manalysis/internal/config"
	"github.com/mtg-tools/manalysis/internal/manalysis"
)

// analysisFlags are the options every analysis command shares.
type analysisFlags struct {
	configPath string
	dbPath     string
	deckPath   string
	debug      bool
}

func registerAnalysisFlags(fs *flag.FlagSet) *analysisFlags {
	f := &analysisFlags{}
	fs.StringVar(&f.configPath, "config", "", "Path to config file (default: ~/.manalysis/config.toml)")
	fs.StringVar(&f.dbPath, "db", "", "Path to card database (overrides config)")
	fs.StringVar(&f.deckPath, "deck", "", "Path to decklist file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	return f
}

func runCurveCommand(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	f := registerAnalysisFlags(fs)
	_ = fs.Parse(args)

	ctx := context.Background()
	analyzer, _, cleanup := analyzerFromFlags(ctx, f.configPath, f.dbPath, f.deckPath, f.debug)
	defer cleanup()

	displayCurveReport(analyzer.CalculateManaCurve())
}

func runHandsCommand(args []string) {
	fs := flag.NewFlagSet("hands", flag.ExitOnError)
	f := registerAnalysisFlags(fs)
	simulations := fs.Int("n", 0, "Number of hands to simulate (default from config)")
	seed := fs.Uint64("seed", 0, "Random seed (0 = random)")
	_ = fs.Parse(args)

	ctx := context.Background()
	analyzer, cfg, cleanup := analyzerFromFlags(ctx, f.configPath, f.dbPath, f.deckPath, f.debug)
	defer cleanup()

	n := *simulations
	if n <= 0 {
		n = cfg.Simulation.Simulations
	}
	s := *seed
	if s == 0 {
		s = cfg.Simulation.Seed
	}

	displayHandsReport(analyzer.SimulateOpeningHands(n, s))
}

func runCastingCommand(args []string) {
	fs := flag.NewFlagSet("casting", flag.ExitOnError)
	f := registerAnalysisFlags(fs)
	simulations := fs.Int("n", 0, "Number of games to simulate (default from config)")
	workers := fs.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	turns := fs.Int("turns", 0, "Turn horizon per game (default from config)")
	seed := fs.Uint64("seed", 0, "Random seed (0 = random)")
	_ = fs.Parse(args)

	ctx := context.Background()
	analyzer, cfg, cleanup := analyzerFromFlags(ctx, f.configPath, f.dbPath, f.deckPath, f.debug)
	defer cleanup()

	opts := castingOptions(cfg.Simulation, *simulations, *workers, *turns, *seed)
	report, err := analyzer.AnalyzeCastingSequence(ctx, opts)
	if err != nil {
		log.Fatalf("Error running casting simulation: %v", err)
	}

	displayCastingReport(report)
}

func runSourcesCommand(args []string) {
	fs := flag.NewFlagSet("sources", flag.ExitOnError)
	f := registerAnalysisFlags(fs)
	_ = fs.Parse(args)

	ctx := context.Background()
	analyzer, _, cleanup := analyzerFromFlags(ctx, f.configPath, f.dbPath, f.deckPath, f.debug)
	defer cleanup()

	displaySourceReport(analyzer.AnalyzeManaSources())
}

func runChartsCommand(args []string) {
	fs := flag.NewFlagSet("charts", flag.ExitOnError)
	f := registerAnalysisFlags(fs)
	outputDir := fs.String("out", "", "Output directory for charts (default from config)")
	simulations := fs.Int("n", 0, "Number of simulations (default from config)")
	seed := fs.Uint64("seed", 0, "Random seed (0 = random)")
	open := fs.Bool("open", false, "Open charts in the default browser")
	_ = fs.Parse(args)

	ctx := context.Background()
	analyzer, cfg, cleanup := analyzerFromFlags(ctx, f.configPath, f.dbPath, f.deckPath, f.debug)
	defer cleanup()

	dir := *outputDir
	if dir == "" {
		dir = cfg.Charts.OutputDir
	}
	n := *simulations
	if n <= 0 {
		n = cfg.Simulation.Simulations
	}
	s := *seed
	if s == 0 {
		s = cfg.Simulation.Seed
	}

	curvePath, err := charts.RenderCurveReport(analyzer.CalculateManaCurve(), dir)
	if err != nil {
		log.Fatalf("Error rendering curve chart: %v", err)
	}
	handsPath, err := charts.RenderHandsReport(analyzer.SimulateOpeningHands(n, s), dir)
	if err != nil {
		log.Fatalf("Error rendering hands chart: %v", err)
	}

	castingReport, err := analyzer.AnalyzeCastingSequence(ctx,
		castingOptions(cfg.Simulation, n, 0, 0, s))
	if err != nil {
		log.Fatalf("Error running casting simulation: %v", err)
	}
	castingPath, err := charts.RenderCastingReport(castingReport, dir)
	if err != nil {
		log.Fatalf("Error rendering casting chart: %v", err)
	}

	for _, path := range []string{curvePath, handsPath, castingPath} {
		fmt.Printf("Wrote %s\n", path)
		if *open {
			if err := charts.OpenInBrowser(path); err != nil {
				log.Printf("Error opening %s: %v", path, err)
			}
		}
	}
}

// castingOptions folds config defaults and flag overrides into
// simulation options. Flag values win when set.
func castingOptions(defaults config.SimulationConfig, simulations, workers, turns int, seed uint64) manalysis.SimulationOptions {
	opts := manalysis.SimulationOptions{
		Simulations: defaults.Simulations,
		Workers:     defaults.Workers,
		Turns:       defaults.Turns,
		Seed:        defaults.Seed,
	}
	if simulations > 0 {
		opts.Simulations = simulations
	}
	if workers > 0 {
		opts.Workers = workers
	}
	if turns > 0 {
		opts.Turns = turns
	}
	if seed != 0 {
		opts.Seed = seed
	}
	return opts
}
