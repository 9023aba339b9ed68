// ABOUTME: Home dashboard component displaying the signed-in user's overview
// ABOUTME: Shows profile, manner score, unread notifications, and upcoming sessions

package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/tui/icons"
	"github.com/studylink/studylink-cli/internal/tui/styles"
	"github.com/studylink/studylink-cli/internal/tui/widgets"
)

// Data holds everything the home screen renders
type Data struct {
	Profile   *client.Profile
	Manner    *client.MannerScore
	Unread    []client.Notification
	Schedules []client.Schedule
}

// Home displays the signed-in overview
type Home struct {
	data   *Data
	width  int
	height int
}

// New creates a new home dashboard with loaded data
func New(data *Data, width, height int) *Home {
	return &Home{
		data:   data,
		width:  width,
		height: height,
	}
}

// Update refreshes the dashboard with new data
func (h *Home) Update(data *Data) {
	h.data = data
}

// SetSize updates the dashboard dimensions
func (h *Home) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the home dashboard
func (h *Home) View() string {
	if h.data == nil || h.data.Profile == nil {
		return styles.Panel.Width(h.width).Render("Loading your overview...")
	}

	var sb strings.Builder
	p := h.data.Profile

	// Title
	sb.WriteString(styles.Title.Render(icons.Member.String() + " " + p.Name))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(p.Email))
	sb.WriteString("\n\n")

	// Interest tags
	if len(p.InterestTags) > 0 {
		sb.WriteString(icons.Tag.String() + " " + strings.Join(p.InterestTags, ", "))
		sb.WriteString("\n\n")
	}

	// Manner score
	if h.data.Manner != nil {
		sb.WriteString("Manner Score\n")
		sb.WriteString(widgets.ScoreBarWithLabel(h.data.Manner.Score, widgets.DefaultScoreBarConfig()))
		sb.WriteString(fmt.Sprintf("  (%d ratings)\n", h.data.Manner.Count))
		sb.WriteString("\n")
	}

	// Notifications
	sb.WriteString(fmt.Sprintf("%s Notifications %s\n", icons.Bell.String(), widgets.UnreadBadge(len(h.data.Unread))))
	for i, n := range h.data.Unread {
		if i >= 3 {
			sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("  ... and %d more\n", len(h.data.Unread)-3)))
			break
		}
		sb.WriteString("  " + styles.UnreadMark.Render("•") + " " + n.Message + "\n")
	}
	sb.WriteString("\n")

	// Upcoming sessions
	sb.WriteString(icons.Calendar.String() + " Upcoming Sessions\n")
	if len(h.data.Schedules) == 0 {
		sb.WriteString(styles.Subtitle.Render("  nothing scheduled\n"))
	}
	for i, s := range h.data.Schedules {
		if i >= 5 {
			break
		}
		sb.WriteString(fmt.Sprintf("  %-10s  %s\n", s.Date, styles.ValueStyle.Render(s.Title)))
	}

	return lipgloss.NewStyle().
		Width(h.width).
		Height(h.height).
		Render(sb.String())
}
