package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline creates a sparkline visualization from a slice of float64 values.
// The width parameter determines how many of the most recent data points to display.
// Values are mapped to 8 vertical levels based on the min/max range and drawn
// in color.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	// Use only the most recent 'width' data points
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		sb.WriteRune(sparklineBlockRunes[sparkLevel(v, minVal, valueRange, numLevels)])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// sparkLevel maps v to a block index. A flat series sits at the middle level.
func sparkLevel(v, minVal, valueRange float64, numLevels int) int {
	if valueRange == 0 {
		return numLevels / 2
	}
	level := int((v - minVal) / valueRange * float64(numLevels-1))
	if level < 0 {
		return 0
	}
	if level >= numLevels {
		return numLevels - 1
	}
	return level
}
