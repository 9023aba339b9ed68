// ABOUTME: Score bar widget for manner scores and attendance rates
// ABOUTME: Low values render in warning colors since a high score is good here

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScoreBarConfig holds configuration for the score bar
type ScoreBarConfig struct {
	Width         int
	WarnThreshold float64 // Below this the score renders amber (default 60)
	CritThreshold float64 // Below this the score renders red (default 30)
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	CritColor     lipgloss.Color
	EmptyColor    lipgloss.Color
}

// DefaultScoreBarConfig returns sensible defaults
func DefaultScoreBarConfig() ScoreBarConfig {
	return ScoreBarConfig{
		Width:         20,
		WarnThreshold: 60,
		CritThreshold: 30,
		OKColor:       lipgloss.Color("#10B981"), // Green
		WarnColor:     lipgloss.Color("#F59E0B"), // Amber
		CritColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
	}
}

// scoreColor picks the bar color for a score
func scoreColor(percent float64, config ScoreBarConfig) lipgloss.Color {
	if percent < config.CritThreshold {
		return config.CritColor
	}
	if percent < config.WarnThreshold {
		return config.WarnColor
	}
	return config.OKColor
}

// ScoreBar renders a colored bar for a 0-100 score
func ScoreBar(percent float64, config ScoreBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(config.Width))
	if filled > config.Width {
		filled = config.Width
	}

	color := scoreColor(percent, config)
	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(config.EmptyColor)

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	bar.WriteString(emptyStyle.Render(strings.Repeat("░", config.Width-filled)))
	bar.WriteString("]")
	return bar.String()
}

// ScoreBarWithLabel renders a score bar followed by the numeric score
func ScoreBarWithLabel(percent float64, config ScoreBarConfig) string {
	bar := ScoreBar(percent, config)
	color := scoreColor(percent, config)
	label := lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%3.0f", percent))
	return fmt.Sprintf("%s %s", bar, label)
}

// CompactScoreBar renders a minimal bar for tight spaces like list rows
func CompactScoreBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	empty := width - filled

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", empty))
}
