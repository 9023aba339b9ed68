// ABOUTME: Study group browser TUI component with list and detail modes
// ABOUTME: Shows discoverable groups, member rosters, and join status

package groupbrowser

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/tui/icons"
	"github.com/studylink/studylink-cli/internal/tui/styles"
)

// mode represents the current UI state
type mode int

const (
	modeList mode = iota
	modeDetail
)

// SelectedMsg is sent when a group is chosen from the list
type SelectedMsg struct {
	Group client.StudyGroup
}

// JoinRequestedMsg is sent when the user asks to join the shown group
type JoinRequestedMsg struct {
	GroupID int64
}

// CancelledMsg is sent when the user leaves the browser
type CancelledMsg struct{}

// Browser is the group browsing component
type Browser struct {
	groups  []client.StudyGroup
	cursor  int
	mode    mode
	detail  *client.StudyGroup
	leader  *client.GroupLeader
	members []client.GroupMember
	status  string
	width   int
}

// New creates a browser over the given groups
func New(groups []client.StudyGroup) *Browser {
	return &Browser{groups: groups}
}

// SetDetail switches to detail mode with the loaded roster
func (b *Browser) SetDetail(group client.StudyGroup, leader *client.GroupLeader, members []client.GroupMember) {
	b.detail = &group
	b.leader = leader
	b.members = members
	b.mode = modeDetail
	b.status = ""
}

// SetStatus shows a transient status line, e.g. after a join request
func (b *Browser) SetStatus(text string) {
	b.status = text
}

// Update implements the component's key handling
func (b *Browser) Update(msg tea.Msg) (*Browser, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		if b.mode == modeDetail {
			return b.updateDetail(msg)
		}
		return b.updateList(msg)
	}
	return b, nil
}

func (b *Browser) updateList(msg tea.KeyMsg) (*Browser, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.groups)-1 {
			b.cursor++
		}
	case "enter":
		if len(b.groups) > 0 {
			group := b.groups[b.cursor]
			return b, func() tea.Msg { return SelectedMsg{Group: group} }
		}
	case "esc", "b":
		return b, func() tea.Msg { return CancelledMsg{} }
	}
	return b, nil
}

func (b *Browser) updateDetail(msg tea.KeyMsg) (*Browser, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		b.mode = modeList
		b.detail = nil
		b.leader = nil
		b.members = nil
		b.status = ""
	case "j":
		if b.detail != nil {
			id := b.detail.GroupID
			return b, func() tea.Msg { return JoinRequestedMsg{GroupID: id} }
		}
	}
	return b, nil
}

// View renders the browser
func (b *Browser) View() string {
	if b.mode == modeDetail {
		return b.viewDetail()
	}
	return b.viewList()
}

func (b *Browser) viewList() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Group.String() + " Study Groups"))
	sb.WriteString("\n\n")

	if len(b.groups) == 0 {
		sb.WriteString(styles.Subtitle.Render("No groups found."))
		return sb.String()
	}

	for i, g := range b.groups {
		line := fmt.Sprintf("%-30s  %-12s  %d/%d", truncate(g.Title, 30), g.Category, g.MemberCount, g.MaxMembers)
		if i == b.cursor {
			sb.WriteString(styles.SelectedRow.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("\nenter View  esc Back"))
	return sb.String()
}

func (b *Browser) viewDetail() string {
	var sb strings.Builder
	g := b.detail

	sb.WriteString(styles.Title.Render(icons.Group.String() + " " + g.Title))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(g.Category))
	sb.WriteString("\n\n")

	if g.Description != "" {
		sb.WriteString(g.Description)
		sb.WriteString("\n\n")
	}

	if len(g.Tags) > 0 {
		sb.WriteString(icons.Tag.String() + " " + strings.Join(g.Tags, ", "))
		sb.WriteString("\n")
	}

	leaderName := g.LeaderName
	if b.leader != nil && b.leader.Name != "" {
		leaderName = b.leader.Name
	}
	sb.WriteString(fmt.Sprintf("Leader: %s\n", styles.ValueStyle.Render(leaderName)))
	sb.WriteString(fmt.Sprintf("Members: %d/%d\n", g.MemberCount, g.MaxMembers))

	if len(b.members) > 0 {
		sb.WriteString("\n")
		for _, m := range b.members {
			sb.WriteString(fmt.Sprintf("  %s %s (%s)\n", icons.Member.String(), m.Username, strings.ToLower(m.Status)))
		}
	}

	if b.status != "" {
		sb.WriteString("\n" + styles.StatusOK.Render(b.status) + "\n")
	}

	sb.WriteString(styles.Help.Render("\nj Join  esc Back"))
	return sb.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
