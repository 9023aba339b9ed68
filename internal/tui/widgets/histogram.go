// ABOUTME: Histogram widget renders bucket counts as scaled block characters
// ABOUTME: Used for the per-region group distribution on the stats screen

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// histogramBlocks are the block characters from lowest to tallest.
var histogramBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Histogram renders one bar per count, each cellWidth runes wide.
// Bars scale against the largest count with a zero baseline, so empty
// buckets always show the lowest block.
func Histogram(counts []int, cellWidth int, color lipgloss.Color) string {
	if len(counts) == 0 || cellWidth <= 0 {
		return ""
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	var sb strings.Builder
	for _, n := range counts {
		block := histogramBlocks[0]
		if max > 0 && n > 0 {
			idx := (n*len(histogramBlocks) - 1) / max
			if idx >= len(histogramBlocks) {
				idx = len(histogramBlocks) - 1
			}
			block = histogramBlocks[idx]
		}
		sb.WriteString(strings.Repeat(string(block), cellWidth))
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(sb.String())
}
