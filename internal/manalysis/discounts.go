package manalysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mtg-tools/manalysis/internal/mana"
)

// DiscountType classifies a cost-reduction ability.
type DiscountType string

const (
	DiscountFixed DiscountType = "fixed"
	// DiscountScaling reductions grow with some game state ("for each").
	DiscountScaling DiscountType = "scaling"
	// DiscountOptimalScaling marks scaling reductions the deck can
	// realistically max out, counted at their full generic value.
	DiscountOptimalScaling DiscountType = "optimal scaling"
	DiscountConditional    DiscountType = "conditional"
)

// Discount is one cost-reduction ability found on a card.
type Discount struct {
	CardName      string
	Quantity      int
	OriginalCost  string
	PotentialCost string
	Type          DiscountType
	Amount        int
	Condition     string // the oracle sentence carrying the reduction
}

// ReductionTotals sums the deck's reliably realizable cost reductions.
type ReductionTotals struct {
	Fixed          int
	OptimalScaling int
	Total          int
}

// DiscountReport lists every cost-reduction ability in the decklist.
type DiscountReport struct {
	Cards          []Discount
	TotalCards     int
	TotalReduction ReductionTotals
	// Types counts distinct cards per discount class; scaling and
	// optimal-scaling share a bucket.
	Types map[DiscountType]int
}

// Scaling patterns are tried before fixed ones so "costs {1} less for
// each artifact" doesn't classify as a fixed reduction.
var discountPatterns = []struct {
	re  *regexp.Regexp
	typ DiscountType
}{
	{regexp.MustCompile(`costs? \{?(\d+)\}? less .* for each`), DiscountScaling},
	{regexp.MustCompile(`for each .*costs? \{?(\d+)\}? less`), DiscountScaling},
	{regexp.MustCompile(`costs? \{?(\d+)\}? less to cast`), DiscountFixed},
	{regexp.MustCompile(`if .* costs? \{?(\d+)\}? less`), DiscountConditional},
	{regexp.MustCompile(`costs? \{?(\d+)\}? less`), DiscountFixed},
	{regexp.MustCompile(`reduces? the cost .* by \{?(\d+)\}?`), DiscountFixed},
}

// AnalyzeManaDiscounts scans oracle text for cost-reduction abilities
// and totals the reductions the deck can count on.
func (a *Analyzer) AnalyzeManaDiscounts() *DiscountReport {
	report := &DiscountReport{Types: make(map[DiscountType]int)}

	for _, name := range a.decklist.Names() {
		card := a.card(name)
		if card.OracleText == "" {
			continue
		}

		oracle := strings.ToLower(card.OracleText)
		generic, colored := splitCost(card.ManaCost)

		d, ok := matchDiscount(oracle)
		if !ok {
			continue
		}

		// A creature reducing the cost of "creature spells" is usually
		// discounting itself too broadly to count.
		if strings.Contains(d.Condition, "creature spells") && card.IsCreature() {
			continue
		}

		d.CardName = name
		d.Quantity = a.decklist[name]
		d.OriginalCost = formatCost(generic, colored)

		switch d.Type {
		case DiscountScaling:
			if strings.Contains(d.Condition, "creature card in your graveyard") {
				// The whole generic portion is shaved off under
				// optimal conditions (delve-style costs).
				d.Type = DiscountOptimalScaling
				d.Amount = generic
				d.PotentialCost = formatCost(0, colored)
			} else {
				d.PotentialCost = "Variable"
			}
		case DiscountFixed:
			d.PotentialCost = formatCost(max(0, generic-d.Amount), colored)
		case DiscountConditional:
			d.PotentialCost = "Conditional"
		}

		report.Cards = append(report.Cards, d)
	}

	for _, d := range report.Cards {
		switch d.Type {
		case DiscountFixed:
			report.Types[DiscountFixed]++
			report.TotalReduction.Fixed += d.Amount * d.Quantity
		case DiscountOptimalScaling:
			report.Types[DiscountScaling]++
			mv := a.card(d.CardName).ManaValue
			report.TotalReduction.OptimalScaling += min(d.Amount, mv) * d.Quantity
		case DiscountScaling:
			report.Types[DiscountScaling]++
		case DiscountConditional:
			report.Types[DiscountConditional]++
		}
	}
	report.TotalCards = len(report.Cards)
	report.TotalReduction.Total = report.TotalReduction.Fixed + report.TotalReduction.OptimalScaling

	return report
}

// matchDiscount tries the discount patterns in priority order and
// returns the first hit with its amount and surrounding sentence.
func matchDiscount(oracle string) (Discount, bool) {
	for _, p := range discountPatterns {
		loc := p.re.FindStringSubmatchIndex(oracle)
		if loc == nil {
			continue
		}
		amount, err := strconv.Atoi(oracle[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		return Discount{
			Type:      p.typ,
			Amount:    amount,
			Condition: sentenceAround(oracle, loc[0], loc[1]),
		}, true
	}
	return Discount{}, false
}

// sentenceAround extracts the sentence containing oracle[start:end].
func sentenceAround(oracle string, start, end int) string {
	from := strings.LastIndex(oracle[:start], ".") + 1
	to := strings.Index(oracle[end:], ".")
	if to == -1 {
		to = len(oracle)
	} else {
		to += end
	}
	return strings.TrimSpace(oracle[from:to])
}

// splitCost breaks a symbolic cost into its generic total and the
// colored pips in canonical order ("{3}{W}{W}" -> 3, "WW").
func splitCost(cost string) (int, string) {
	c, err := mana.Parse(cost)
	if err != nil {
		return 0, ""
	}
	var colored strings.Builder
	for _, color := range mana.Colors {
		colored.WriteString(strings.Repeat(string(color), c.Pips[string(color)]))
	}
	return c.Generic, colored.String()
}

// formatCost renders cost components as "3+WW", or just the pips when
// no generic portion remains.
func formatCost(generic int, colored string) string {
	if generic > 0 {
		return fmt.Sprintf("%d+%s", generic, colored)
	}
	return colored
}
