package manalysis

import (
	"sort"
)

// HealthStatus classifies how front-loaded a deck's curve is.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "Healthy"
	HealthModerate HealthStatus = "Moderate"
	HealthPoor     HealthStatus = "Poor"
)

// Curve-health thresholds over the early-game (mana value 0-2) share
// of non-land cards.
const (
	healthyEarlyPct  = 30.0
	moderateEarlyPct = 20.0
)

// Distribution is the percentage split of non-land cards across
// mana-value buckets 0-2 / 3-5 / 6+.
type Distribution struct {
	EarlyGame float64
	MidGame   float64
	LateGame  float64
}

// CurveHealth is the qualitative classification of a mana curve.
type CurveHealth struct {
	Status       HealthStatus
	Message      string
	Distribution Distribution
}

// Stats holds the mean and median mana value of a card multiset.
type Stats struct {
	Average float64
	Median  int
}

// CurveBand is one view of the mana curve: the actual printed costs or
// the discount-adjusted costs.
type CurveBand struct {
	// Curve maps mana value to quantity-weighted non-land card count.
	Curve map[int]int

	// TotalManaValue sums mana value over every card, lands included.
	TotalManaValue int

	StatsWithLands    Stats
	StatsWithoutLands Stats

	// Visualization is an ASCII bar chart of the curve.
	Visualization string
}

// CurveReport is the full mana curve analysis of a decklist.
type CurveReport struct {
	Original CurveBand
	Reduced  CurveBand

	TotalSpells int // quantity-weighted non-land cards
	TotalCards  int

	Health CurveHealth

	Discounts    *DiscountReport
	ColorBalance *ColorBalanceReport
	Sources      *SourceReport
}

// CalculateManaCurve aggregates the decklist into mana-value histograms
// with and without discount adjustments, computes averages, medians and
// curve health, and attaches the color and mana-source breakdowns.
func (a *Analyzer) CalculateManaCurve() *CurveReport {
	discounts := a.AnalyzeManaDiscounts()

	// Fixed and optimal-scaling discounts lower the effective mana
	// value, floored at zero.
	reductions := make(map[string]int)
	for _, d := range discounts.Cards {
		if d.Type == DiscountFixed || d.Type == DiscountOptimalScaling {
			reductions[d.CardName] = d.Amount
		}
	}

	original := CurveBand{Curve: make(map[int]int)}
	reduced := CurveBand{Curve: make(map[int]int)}
	var valuesOrig, valuesRed curveValues
	totalSpells := 0

	for name, qty := range a.decklist {
		card := a.card(name)
		mv := card.ManaValue
		mvReduced := mv
		if amount, ok := reductions[name]; ok {
			mvReduced = max(0, mv-amount)
		}

		original.TotalManaValue += mv * qty
		reduced.TotalManaValue += mvReduced * qty

		valuesOrig.withLands = appendN(valuesOrig.withLands, mv, qty)
		valuesRed.withLands = appendN(valuesRed.withLands, mvReduced, qty)

		if card.IsLand {
			continue
		}
		original.Curve[mv] += qty
		reduced.Curve[mvReduced] += qty
		totalSpells += qty
		valuesOrig.withoutLands = appendN(valuesOrig.withoutLands, mv, qty)
		valuesRed.withoutLands = appendN(valuesRed.withoutLands, mvReduced, qty)
	}

	original.StatsWithLands = calcStats(valuesOrig.withLands)
	original.StatsWithoutLands = calcStats(valuesOrig.withoutLands)
	reduced.StatsWithLands = calcStats(valuesRed.withLands)
	reduced.StatsWithoutLands = calcStats(valuesRed.withoutLands)

	// Shared max keeps the two visualizations comparable bar-for-bar.
	maxCount := max(maxValue(original.Curve), maxValue(reduced.Curve))
	if maxCount > 0 {
		original.Visualization = visualizeCurve(original.Curve, maxCount)
		reduced.Visualization = visualizeCurve(reduced.Curve, maxCount)
	}

	return &CurveReport{
		Original:     original,
		Reduced:      reduced,
		TotalSpells:  totalSpells,
		TotalCards:   a.decklist.TotalCards(),
		Health:       classifyCurveHealth(original.Curve, totalSpells),
		Discounts:    discounts,
		ColorBalance: a.AnalyzeColorBalance(),
		Sources:      a.AnalyzeManaSources(),
	}
}

// classifyCurveHealth buckets the non-land curve into early (0-2),
// mid (3-5) and late (6+) game shares and grades the early-game share.
func classifyCurveHealth(curve map[int]int, totalSpells int) CurveHealth {
	health := CurveHealth{Status: HealthPoor, Message: healthMessages[HealthPoor]}
	if totalSpells == 0 {
		return health
	}

	var early, mid, late int
	for mv, count := range curve {
		switch {
		case mv <= 2:
			early += count
		case mv <= 5:
			mid += count
		default:
			late += count
		}
	}

	health.Distribution = Distribution{
		EarlyGame: float64(early) / float64(totalSpells) * 100,
		MidGame:   float64(mid) / float64(totalSpells) * 100,
		LateGame:  float64(late) / float64(totalSpells) * 100,
	}

	switch {
	case health.Distribution.EarlyGame >= healthyEarlyPct:
		health.Status = HealthHealthy
	case health.Distribution.EarlyGame >= moderateEarlyPct:
		health.Status = HealthModerate
	default:
		health.Status = HealthPoor
	}
	health.Message = healthMessages[health.Status]

	return health
}

var healthMessages = map[HealthStatus]string{
	HealthHealthy:  "Strong early game presence with a well-distributed curve.",
	HealthModerate: "Playable curve, but light on early plays; expect some slow starts.",
	HealthPoor:     "Very top-heavy curve; the deck will often stall in the early turns.",
}

type curveValues struct {
	withLands    []int
	withoutLands []int
}

// calcStats returns the mean and upper median of a mana-value multiset.
func calcStats(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	return Stats{
		Average: float64(sum) / float64(len(values)),
		Median:  sorted[len(sorted)/2],
	}
}

func appendN(values []int, v, n int) []int {
	for i := 0; i < n; i++ {
		values = append(values, v)
	}
	return values
}

func maxValue(m map[int]int) int {
	best := 0
	for _, v := range m {
		if v > best {
			best = v
		}
	}
	return best
}
