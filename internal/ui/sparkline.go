package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline creates a sparkline from a slice of latency samples (ms).
// The width parameter determines how many of the most recent data points to
// display. Values are mapped to 8 vertical levels over the min/max range,
// and the line is colored by the most recent sample's latency band.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

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
	sb.Grow(len(data) * 4)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		var level int
		if valueRange == 0 {
			level = numLevels / 2
		} else {
			normalized := (v - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	lastValue := data[len(data)-1]
	style := lipgloss.NewStyle().Foreground(LatencyColor(lastValue))
	return style.Render(sb.String())
}

// LatencyColor returns a color for a latency value in milliseconds:
// under 1s green, under 3s yellow, above that red.
func LatencyColor(ms float64) lipgloss.Color {
	switch {
	case ms >= 3000:
		return ColorError
	case ms >= 1000:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
