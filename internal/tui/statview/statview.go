// ABOUTME: Admin statistics screen rendering platform metrics
// ABOUTME: Uses metric blocks and a histogram for the regional distribution

package statview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/tui/icons"
	"github.com/studylink/studylink-cli/internal/tui/styles"
	"github.com/studylink/studylink-cli/internal/tui/widgets"
)

// StatView displays platform statistics
type StatView struct {
	summary *client.StatsSummary
	width   int
}

// New creates a stat view with loaded metrics
func New(summary *client.StatsSummary, width int) *StatView {
	return &StatView{summary: summary, width: width}
}

// SetWidth updates the view width
func (v *StatView) SetWidth(width int) {
	v.width = width
}

// View renders the statistics screen
func (v *StatView) View() string {
	if v.summary == nil {
		return styles.Panel.Width(v.width).Render("Loading statistics...")
	}

	s := v.summary
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Shield.String() + " Platform Statistics"))
	sb.WriteString("\n\n")

	cfg := widgets.DefaultMetricBlockConfig()
	blocks := lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.MetricBlock(icons.Member, "Users", fmt.Sprintf("%d", s.TotalUsers),
			fmt.Sprintf("%d active", s.ActiveUsers), cfg),
		" ",
		widgets.MetricBlock(icons.Group, "Groups", fmt.Sprintf("%d", s.TotalGroups),
			fmt.Sprintf("%d regions", len(s.GroupsByRegion)), cfg),
		" ",
		widgets.MetricBlock(icons.Board, "Posts", fmt.Sprintf("%d", s.TotalPosts), "all boards", cfg),
	)
	sb.WriteString(blocks)
	sb.WriteString("\n\n")

	if len(s.GroupsByRegion) > 0 {
		sb.WriteString("Groups by Region\n")
		sb.WriteString(v.renderRegions(s.GroupsByRegion))
	}

	return sb.String()
}

// renderRegions lists regions alphabetically with a histogram of their counts
func (v *StatView) renderRegions(regions map[string]int) string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := make([]int, 0, len(names))
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-16s %d\n", name, regions[name]))
		counts = append(counts, regions[name])
	}

	sb.WriteString("  " + widgets.Histogram(counts, 2, styles.Primary) + "\n")
	return sb.String()
}
