package manalysis

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"
)

// SimulationOptions controls a casting-sequence run.
type SimulationOptions struct {
	// Simulations is the number of independent trials (default 1000).
	Simulations int

	// Workers is the number of parallel trial runners (default NumCPU).
	Workers int

	// Turns is the trial horizon (default DefaultTurnHorizon).
	Turns int

	// Seed makes the run reproducible. Zero picks a random seed. Each
	// worker derives an independent PCG stream from it, so results for
	// a given seed and worker count are deterministic.
	Seed uint64
}

func (o SimulationOptions) withDefaults() SimulationOptions {
	if o.Simulations <= 0 {
		o.Simulations = 1000
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > o.Simulations {
		o.Workers = o.Simulations
	}
	if o.Turns <= 0 {
		o.Turns = DefaultTurnHorizon
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	return o
}

// CardCastStats aggregates one card's casting outcomes over all trials.
type CardCastStats struct {
	ManaValue int

	// DrawPercentage is how often at least one copy reached the hand.
	DrawPercentage float64

	// CastProbability is (#trials cast at least once) / #trials.
	CastProbability float64

	// EarliestTurn is the best first-cast turn seen, 0 if never cast.
	EarliestTurn int

	// AverageCastTurn is the mean first-cast turn over the trials where
	// the card was cast, 0 if it never was.
	AverageCastTurn float64

	// TimesCast counts trials in which the card was cast at least once.
	TimesCast int
}

// CastingReport is the aggregated outcome of many casting trials.
type CastingReport struct {
	Simulations int
	Turns       int
	Seed        uint64

	// CardStats has an entry for every distinct decklist card.
	CardStats map[string]*CardCastStats

	// CastByTurn maps each turn to the mean percentage of the deck's
	// distinct non-land cards cast by then.
	CastByTurn map[int]float64

	// ProblematicCards lists non-land cards never cast in any trial,
	// sorted by name.
	ProblematicCards []string
}

// castingPartial is one worker's private tallies, merged single-writer
// after all workers finish.
type castingPartial struct {
	trials      int
	castTrials  map[string]int // trials with >=1 cast of the card
	turnSums    map[string]int // sum of first-cast turns over those trials
	earliest    map[string]int
	drawnTrials map[string]int
	byTurn      []float64 // index turn-1: summed fraction of non-lands cast
}

func newCastingPartial(turns int) *castingPartial {
	return &castingPartial{
		castTrials:  make(map[string]int),
		turnSums:    make(map[string]int),
		earliest:    make(map[string]int),
		drawnTrials: make(map[string]int),
		byTurn:      make([]float64, turns),
	}
}

// AnalyzeCastingSequence runs full game trials and reduces them into
// per-card casting statistics. Trials are shared-nothing and run on a
// worker pool, one PCG stream per worker; cancellation is checked once
// per completed trial.
func (a *Analyzer) AnalyzeCastingSequence(ctx context.Context, opts SimulationOptions) (*CastingReport, error) {
	opts = opts.withDefaults()

	report := &CastingReport{
		Simulations: opts.Simulations,
		Turns:       opts.Turns,
		Seed:        opts.Seed,
		CardStats:   make(map[string]*CardCastStats),
		CastByTurn:  make(map[int]float64),
	}
	if len(a.decklist) == 0 {
		return report, nil
	}

	nonlandDistinct := 0
	for _, name := range a.decklist.Names() {
		if !a.card(name).IsLand {
			nonlandDistinct++
		}
	}

	sim := a.newSimulator(opts.Turns)
	partials := make([]*castingPartial, opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		trials := opts.Simulations / opts.Workers
		if w < opts.Simulations%opts.Workers {
			trials++
		}

		partial := newCastingPartial(opts.Turns)
		partials[w] = partial

		wg.Add(1)
		go func(workerID, trials int, partial *castingPartial) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(opts.Seed, uint64(workerID)+1))
			for t := 0; t < trials; t++ {
				if ctx.Err() != nil {
					return
				}
				res := sim.run(rng)
				partial.record(res, opts.Turns, nonlandDistinct)
			}
		}(w, trials, partial)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := newCastingPartial(opts.Turns)
	for _, p := range partials {
		merged.merge(p)
	}

	for _, name := range a.decklist.Names() {
		card := a.card(name)
		stats := &CardCastStats{
			ManaValue:      card.ManaValue,
			DrawPercentage: pct(merged.drawnTrials[name], merged.trials),
			TimesCast:      merged.castTrials[name],
		}
		if n := merged.castTrials[name]; n > 0 {
			stats.CastProbability = float64(n) / float64(merged.trials)
			stats.EarliestTurn = merged.earliest[name]
			stats.AverageCastTurn = float64(merged.turnSums[name]) / float64(n)
		} else if !card.IsLand {
			report.ProblematicCards = append(report.ProblematicCards, name)
		}
		report.CardStats[name] = stats
	}
	sort.Strings(report.ProblematicCards)

	if merged.trials > 0 {
		for turn := 1; turn <= opts.Turns; turn++ {
			report.CastByTurn[turn] = merged.byTurn[turn-1] / float64(merged.trials) * 100
		}
	}

	return report, nil
}

// record folds one trial into the partial.
func (p *castingPartial) record(res trialResult, turns, nonlandDistinct int) {
	p.trials++

	firstCast := make(map[string]int)
	for _, ev := range res.casts {
		if _, seen := firstCast[ev.card]; !seen {
			firstCast[ev.card] = ev.turn
		}
	}

	for name, turn := range firstCast {
		p.castTrials[name]++
		p.turnSums[name] += turn
		if best, ok := p.earliest[name]; !ok || turn < best {
			p.earliest[name] = turn
		}
	}
	for name := range res.drawn {
		p.drawnTrials[name]++
	}

	if nonlandDistinct > 0 {
		for turn := 1; turn <= turns; turn++ {
			castByNow := 0
			for _, first := range firstCast {
				if first <= turn {
					castByNow++
				}
			}
			p.byTurn[turn-1] += float64(castByNow) / float64(nonlandDistinct)
		}
	}
}

// merge folds another partial into p. Called single-writer after the
// worker pool has drained.
func (p *castingPartial) merge(other *castingPartial) {
	p.trials += other.trials
	for name, n := range other.castTrials {
		p.castTrials[name] += n
	}
	for name, n := range other.turnSums {
		p.turnSums[name] += n
	}
	for name, turn := range other.earliest {
		if best, ok := p.earliest[name]; !ok || turn < best {
			p.earliest[name] = turn
		}
	}
	for name, n := range other.drawnTrials {
		p.drawnTrials[name] += n
	}
	for i, v := range other.byTurn {
		p.byTurn[i] += v
	}
}
