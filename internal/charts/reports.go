package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mtg-tools/manalysis/internal/manalysis"
)

// RenderCurveReport writes the mana curve histogram as a bar chart and
// returns the output path.
func RenderCurveReport(report *manalysis.CurveReport, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	data := distributionPoints(report.Original.Curve)

	config := DefaultChartConfig()
	config.Title = "Mana Curve"
	config.Subtitle = fmt.Sprintf("%d spells, average mana value %.2f",
		report.TotalSpells, report.Original.StatsWithoutLands.Average)

	path := filepath.Join(outputDir, "mana_curve.html")
	if err := RenderBarChart(data, "Cards", config, path); err != nil {
		return "", err
	}
	return path, nil
}

// RenderHandsReport writes the opening-hand land distribution as a bar
// chart and returns the output path.
func RenderHandsReport(report *manalysis.OpeningHandReport, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	data := make([]DataPoint, 0, 8)
	for lands := 0; lands <= 7; lands++ {
		data = append(data, DataPoint{
			Label: strconv.Itoa(lands),
			Value: float64(report.LandsDistribution[lands]),
		})
	}

	config := DefaultChartConfig()
	config.Title = "Lands in Opening Hand"
	config.Subtitle = fmt.Sprintf("%d hands, %.2f lands on average",
		report.Simulations, report.AverageLands)

	path := filepath.Join(outputDir, "opening_hands.html")
	if err := RenderBarChart(data, "Hands", config, path); err != nil {
		return "", err
	}
	return path, nil
}

// RenderCastingReport writes the cumulative casting progress as a line
// chart and returns the output path.
func RenderCastingReport(report *manalysis.CastingReport, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	data := make([]DataPoint, 0, report.Turns)
	for turn := 1; turn <= report.Turns; turn++ {
		data = append(data, DataPoint{
			Label: fmt.Sprintf("Turn %d", turn),
			Value: report.CastByTurn[turn],
		})
	}

	config := DefaultChartConfig()
	config.Title = "Casting Progress"
	config.Subtitle = fmt.Sprintf("%d simulations over %d turns", report.Simulations, report.Turns)

	path := filepath.Join(outputDir, "casting_progress.html")
	if err := RenderLineChart(data, "% of deck cast", config, path); err != nil {
		return "", err
	}
	return path, nil
}

// distributionPoints flattens a curve histogram into contiguous bars
// from zero to the highest populated mana value.
func distributionPoints(curve map[int]int) []DataPoint {
	maxMV := 0
	for mv := range curve {
		if mv > maxMV {
			maxMV = mv
		}
	}

	data := make([]DataPoint, 0, maxMV+1)
	for mv := 0; mv <= maxMV; mv++ {
		data = append(data, DataPoint{Label: strconv.Itoa(mv), Value: float64(curve[mv])})
	}
	return data
}
