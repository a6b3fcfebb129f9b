package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mtg-tools/manalysis/internal/manalysis"
)

func TestRenderBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.html")

	data := []DataPoint{{Label: "0", Value: 4}, {Label: "1", Value: 12}, {Label: "2", Value: 8}}
	config := DefaultChartConfig()
	config.Title = "Test Chart"

	if err := RenderBarChart(data, "Cards", config, path); err != nil {
		t.Fatalf("RenderBarChart: %v", err)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(html), "Test Chart") {
		t.Error("rendered chart missing title")
	}
	if !strings.Contains(string(html), "echarts") {
		t.Error("rendered chart missing echarts payload")
	}
}

func TestRenderBarChartZeroValueConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.html")

	data := []DataPoint{{Label: "0", Value: 1}}
	if err := RenderBarChart(data, "Cards", ChartConfig{}, path); err != nil {
		t.Fatalf("RenderBarChart: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestRenderLineChartZeroValueConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.html")

	data := []DataPoint{{Label: "1", Value: 10}, {Label: "2", Value: 35}}
	if err := RenderLineChart(data, "Cast %", ChartConfig{}, path); err != nil {
		t.Fatalf("RenderLineChart: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestRenderCurveReport(t *testing.T) {
	dir := t.TempDir()

	report := &manalysis.CurveReport{TotalSpells: 10}
	report.Original.Curve = map[int]int{1: 4, 2: 4, 3: 2}
	report.Original.StatsWithoutLands = manalysis.Stats{Average: 1.8}

	path, err := RenderCurveReport(report, dir)
	if err != nil {
		t.Fatalf("RenderCurveReport: %v", err)
	}
	if filepath.Base(path) != "mana_curve.html" {
		t.Errorf("unexpected chart name: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestRenderHandsReport(t *testing.T) {
	dir := t.TempDir()

	report := &manalysis.OpeningHandReport{
		Simulations:       100,
		AverageLands:      2.8,
		LandsDistribution: map[int]int{2: 40, 3: 60},
	}

	path, err := RenderHandsReport(report, dir)
	if err != nil {
		t.Fatalf("RenderHandsReport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestRenderCastingReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	report := &manalysis.CastingReport{
		Simulations: 100,
		Turns:       3,
		CastByTurn:  map[int]float64{1: 10, 2: 35, 3: 60},
	}

	path, err := RenderCastingReport(report, dir)
	if err != nil {
		t.Fatalf("RenderCastingReport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart directory should be created on demand: %v", err)
	}
}
