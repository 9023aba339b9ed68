// ABOUTME: Login screen as a bubbletea model wrapping a huh credential form
// ABOUTME: Emits SubmittedMsg with the entered credentials or CancelledMsg on escape

package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/studylink/studylink-cli/internal/tui/styles"
)

// SubmittedMsg is sent when the user submits credentials
type SubmittedMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the login form is cancelled
type CancelledMsg struct{}

// Login manages the credential form as a bubbletea model
type Login struct {
	form     *huh.Form
	username string
	password string
	errText  string
	width    int
}

// createTheme returns a huh theme matching the application palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

// New creates a new login screen
func New() *Login {
	l := &Login{}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("username").
				Value(&l.username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		).Title("Sign in to StudyLink").
			Description("Enter your account credentials"),
	).WithTheme(createTheme())
}

// SetError records a login failure and resets the form for another attempt
func (l *Login) SetError(text string) tea.Cmd {
	l.errText = text
	l.password = ""
	l.form = l.createForm()
	return l.form.Init()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		form, cmd := l.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			l.form = f
		}
		return l, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		username, password := l.username, l.password
		return l, func() tea.Msg {
			return SubmittedMsg{Username: username, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	out := l.form.View()
	if l.errText != "" {
		out = styles.StatusCritical.Render(l.errText) + "\n\n" + out
	}
	return out
}
