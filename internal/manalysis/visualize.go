package manalysis

import (
	"fmt"
	"strings"
)

// barHeight is the length of a full ASCII bar.
const barHeight = 10

// visualizeCurve renders the curve histogram as horizontal bars, one
// row per mana value from 0 to the highest occupied bucket. Bar length
// is proportional to count/maxCount.
func visualizeCurve(curve map[int]int, maxCount int) string {
	if maxCount <= 0 {
		return ""
	}

	maxMV := 0
	for mv := range curve {
		if mv > maxMV {
			maxMV = mv
		}
	}

	var b strings.Builder
	for mv := 0; mv <= maxMV; mv++ {
		count := curve[mv]
		filled := count * barHeight / maxCount
		fmt.Fprintf(&b, "\n%2d│ %s%s %2d",
			mv,
			strings.Repeat("█", filled),
			strings.Repeat(" ", barHeight-filled),
			count,
		)
	}
	b.WriteString("\n  ╰" + strings.Repeat("─", barHeight+3))

	return b.String()
}

// visualizeLandDistribution renders the opening-hand land histogram for
// 0-7 lands with per-row percentages of all hands.
func visualizeLandDistribution(dist map[int]int, totalHands int) string {
	if totalHands <= 0 {
		return ""
	}

	maxCount := 0
	for _, count := range dist {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nLands distribution in opening hands:")
	for lands := 0; lands <= openingHandSize; lands++ {
		count := dist[lands]
		filled := count * barHeight / maxCount
		fmt.Fprintf(&b, "\n%d│ %s%s %3d (%4.1f%%)",
			lands,
			strings.Repeat("█", filled),
			strings.Repeat(" ", barHeight-filled),
			count,
			float64(count)/float64(totalHands)*100,
		)
	}
	b.WriteString("\n ╰" + strings.Repeat("─", barHeight+15))

	return b.String()
}
