package manalysis

import (
	"math/rand/v2"
	"slices"
)

// OpeningHandReport aggregates opening-hand deals. No turn progression
// happens here; each trial is a single seven-card deal.
type OpeningHandReport struct {
	Simulations int
	Seed        uint64

	// LandsDistribution maps lands-in-hand to the number of hands.
	LandsDistribution map[int]int

	NoLandPercentage float64
	AverageLands     float64

	TotalLandsInDeck int
	LandPercentage   float64

	// Visualization is an ASCII histogram over 0-7 lands.
	Visualization string
}

// SimulateOpeningHands deals n independent opening hands and tallies
// their land counts. Hands are uniform samples without replacement.
// A zero seed picks a random one.
func (a *Analyzer) SimulateOpeningHands(n int, seed uint64) *OpeningHandReport {
	if seed == 0 {
		seed = rand.Uint64()
	}
	report := &OpeningHandReport{
		Simulations:       n,
		Seed:              seed,
		LandsDistribution: make(map[int]int),
	}

	deck := a.decklist.Expand()
	report.TotalLandsInDeck = a.landCount()
	report.LandPercentage = pct(report.TotalLandsInDeck, len(deck))

	if n <= 0 || len(deck) == 0 {
		report.Simulations = 0
		return report
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	handSize := min(openingHandSize, len(deck))
	totalLands := 0
	noLandHands := 0

	for trial := 0; trial < n; trial++ {
		hand := drawHand(rng, deck, handSize)
		lands := 0
		for _, name := range hand {
			if a.card(name).IsLand {
				lands++
			}
		}
		report.LandsDistribution[lands]++
		totalLands += lands
		if lands == 0 {
			noLandHands++
		}
	}

	report.AverageLands = float64(totalLands) / float64(n)
	report.NoLandPercentage = float64(noLandHands) / float64(n) * 100
	report.Visualization = visualizeLandDistribution(report.LandsDistribution, n)

	return report
}

// drawHand samples handSize cards from deck without replacement using a
// partial Fisher-Yates pass. The deck slice is left reordered but never
// grows or shrinks, so it can be reused across trials.
func drawHand(rng *rand.Rand, deck []string, handSize int) []string {
	for i := 0; i < handSize; i++ {
		j := i + rng.IntN(len(deck)-i)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return slices.Clone(deck[:handSize])
}
