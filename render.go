package entroscope

import (
	"fmt"
	"strings"
)

// Terminal rendering of entropy sequences. These functions consume a plain
// []float64 and a display geometry; no entropy semantics live here.

var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

const heatmapShades = " .:-=@#"

// Sparkline renders a one-line block-character profile of the sequence,
// downsampled to width columns. Returns "" for an empty sequence or a
// non-positive width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	min, max := minMax(values)
	span := max - min
	if span < 0.001 {
		span = 0.001
	}

	var sb strings.Builder
	for _, v := range resample(values, width) {
		normalized := (v - min) / span
		idx := int(normalized * float64(len(sparklineBlocks)))
		if idx >= len(sparklineBlocks) {
			idx = len(sparklineBlocks) - 1
		}
		sb.WriteRune(sparklineBlocks[idx])
	}
	return sb.String()
}

// Heatmap renders a multi-line ASCII density plot of the sequence with a
// centered title and a min/max legend. Rows are value bands from max (top)
// to min (bottom); each column is one downsampled position. Returns "" for
// an empty sequence or non-positive dimensions.
func Heatmap(values []float64, width, height int, title string) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	min, max := minMax(values)
	span := max - min
	if span == 0 {
		span = 1.0
	}

	sampled := resample(values, width)
	lines := make([]string, 0, height+5)
	lines = append(lines, center(title, width))
	lines = append(lines, strings.Repeat("-", width))

	for row := height; row >= 1; row-- {
		thresholdLow := min + span*float64(row-1)/float64(height)
		thresholdHigh := min + span*float64(row)/float64(height)

		var sb strings.Builder
		for _, v := range sampled {
			switch {
			case v < thresholdLow:
				sb.WriteByte(' ')
			case v < thresholdHigh:
				idx := int((v - min) / span * float64(len(heatmapShades)))
				if idx >= len(heatmapShades) {
					idx = len(heatmapShades) - 1
				}
				sb.WriteByte(heatmapShades[idx])
			default:
				sb.WriteByte(heatmapShades[len(heatmapShades)-1])
			}
		}
		lines = append(lines, sb.String())
	}

	lines = append(lines, strings.Repeat("-", width))
	lines = append(lines, fmt.Sprintf("Min: %.3f bits | Max: %.3f bits", min, max))
	lines = append(lines, fmt.Sprintf("Position range: 0 to %d", len(values)-1))

	return strings.Join(lines, "\n")
}

// resample picks width evenly spaced values from the sequence.
func resample(values []float64, width int) []float64 {
	sampled := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * len(values) / width
		sampled[i] = values[idx]
	}
	return sampled
}

func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
