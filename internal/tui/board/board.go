// ABOUTME: Community board TUI component with list, reading, and compose modes
// ABOUTME: Shows recruit and free posts with their comment threads

package board

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/tui/icons"
	"github.com/studylink/studylink-cli/internal/tui/styles"
)

// mode represents the current UI state
type mode int

const (
	modeList mode = iota
	modeRead
	modeCompose
)

// SelectedMsg is sent when a post is chosen from the list
type SelectedMsg struct {
	PostID int64
}

// ComposeSubmittedMsg is sent when a new post is submitted
type ComposeSubmittedMsg struct {
	Input client.PostInput
}

// CancelledMsg is sent when the user leaves the board
type CancelledMsg struct{}

// Board is the post browsing component
type Board struct {
	posts    []client.Post
	cursor   int
	mode     mode
	post     *client.Post
	comments []client.Comment
	width    int

	form       *huh.Form
	draftTitle string
	draftBody  string
	draftType  string
}

// New creates a board over the given posts
func New(posts []client.Post) *Board {
	return &Board{posts: posts}
}

// StartCompose switches to compose mode with a fresh draft form
func (b *Board) StartCompose() tea.Cmd {
	b.draftTitle = ""
	b.draftBody = ""
	b.draftType = "free"
	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&b.draftTitle),
			huh.NewText().
				Title("Content").
				Value(&b.draftBody),
			huh.NewSelect[string]().
				Title("Board").
				Options(
					huh.NewOption("Free board", "free"),
					huh.NewOption("Recruitment", "recruit"),
				).
				Value(&b.draftType),
		).Title("New post"),
	)
	b.mode = modeCompose
	return b.form.Init()
}

// Composing reports whether the draft form is active
func (b *Board) Composing() bool {
	return b.mode == modeCompose
}

// SetPost switches to reading mode with the loaded thread
func (b *Board) SetPost(post client.Post, comments []client.Comment) {
	b.post = &post
	b.comments = comments
	b.mode = modeRead
}

// Update implements the component's key handling
func (b *Board) Update(msg tea.Msg) (*Board, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		if b.mode == modeCompose {
			if msg.String() == "esc" {
				b.mode = modeList
				b.form = nil
				return b, nil
			}
			return b.updateForm(msg)
		}
		if b.mode == modeRead {
			switch msg.String() {
			case "esc", "b":
				b.mode = modeList
				b.post = nil
				b.comments = nil
			}
			return b, nil
		}

		switch msg.String() {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.posts)-1 {
				b.cursor++
			}
		case "enter":
			if len(b.posts) > 0 {
				id := b.posts[b.cursor].PostID
				return b, func() tea.Msg { return SelectedMsg{PostID: id} }
			}
		case "n":
			return b, b.StartCompose()
		case "esc", "b":
			return b, func() tea.Msg { return CancelledMsg{} }
		}
	}

	if b.mode == modeCompose && b.form != nil {
		return b.updateForm(msg)
	}
	return b, nil
}

// updateForm advances the compose form and emits the draft once completed
func (b *Board) updateForm(msg tea.Msg) (*Board, tea.Cmd) {
	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		input := client.PostInput{
			Title:   b.draftTitle,
			Content: b.draftBody,
			Type:    b.draftType,
		}
		b.mode = modeList
		b.form = nil
		return b, func() tea.Msg { return ComposeSubmittedMsg{Input: input} }
	}
	return b, cmd
}

// View renders the board
func (b *Board) View() string {
	switch b.mode {
	case modeRead:
		return b.viewPost()
	case modeCompose:
		return b.viewCompose()
	}
	return b.viewList()
}

func (b *Board) viewCompose() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Board.String() + " New post"))
	sb.WriteString("\n\n")
	if b.form != nil {
		sb.WriteString(b.form.View())
	}
	sb.WriteString(styles.Help.Render("\nesc Cancel"))
	return sb.String()
}

func (b *Board) viewList() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Board.String() + " Board"))
	sb.WriteString("\n\n")

	if len(b.posts) == 0 {
		sb.WriteString(styles.Subtitle.Render("No posts yet."))
		sb.WriteString(styles.Help.Render("\n\nn New post  esc Back"))
		return sb.String()
	}

	for i, p := range b.posts {
		marker := "  "
		if p.Type == "recruit" {
			marker = styles.UnreadMark.Render("R ")
		}
		line := fmt.Sprintf("%s%-40s  %s", marker, truncate(p.Title, 40), p.CreatedAt)
		if i == b.cursor {
			sb.WriteString(styles.SelectedRow.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("\nenter Read  n New post  esc Back"))
	return sb.String()
}

func (b *Board) viewPost() string {
	var sb strings.Builder
	p := b.post

	sb.WriteString(styles.Title.Render(p.Title))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s · %s", p.Type, p.CreatedAt)))
	sb.WriteString("\n\n")
	sb.WriteString(p.Content)
	sb.WriteString("\n")

	if len(b.comments) > 0 {
		sb.WriteString("\n" + icons.Comment.String() + fmt.Sprintf(" Comments (%d)\n", len(b.comments)))
		for _, c := range b.comments {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", styles.ValueStyle.Render(c.Username), c.Content))
		}
	}

	sb.WriteString(styles.Help.Render("\nesc Back"))
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
