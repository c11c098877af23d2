package formatter

import (
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProfitBar draws v as a bar scaled against maxAbs, green for
// winnings and red for losses. A zero maxAbs renders an empty track.
func RenderProfitBar(v, maxAbs float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if maxAbs > 0 {
		filled = int(math.Round(math.Abs(v) / maxAbs * float64(width)))
	}
	filled = min(max(filled, 0), width)
	if filled == 0 && v != 0 {
		filled = 1
	}

	bar := ProfitStyle(v).Render(strings.Repeat(filledBlock, filled))
	return bar + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// maxAbsProfit returns the largest absolute value in vs.
func maxAbsProfit(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		m = max(m, math.Abs(v))
	}
	return m
}
