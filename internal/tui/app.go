// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes between screens and consults the route guard before each switch

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/guard"
	"github.com/studylink/studylink-cli/internal/session"
	"github.com/studylink/studylink-cli/internal/tui/board"
	"github.com/studylink/studylink-cli/internal/tui/groupbrowser"
	"github.com/studylink/studylink-cli/internal/tui/home"
	"github.com/studylink/studylink-cli/internal/tui/icons"
	"github.com/studylink/studylink-cli/internal/tui/login"
	"github.com/studylink/studylink-cli/internal/tui/statview"
	"github.com/studylink/studylink-cli/internal/tui/styles"
	"github.com/studylink/studylink-cli/internal/tui/widgets"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenGroups
	ScreenBoard
	ScreenStats
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping layout math
)

// loginDoneMsg is sent when the credential exchange completes
type loginDoneMsg struct {
	err error
}

// homeLoadedMsg is sent when the home overview finishes loading
type homeLoadedMsg struct {
	data *home.Data
	err  error
}

// groupsLoadedMsg is sent when the group list is loaded
type groupsLoadedMsg struct {
	groups []client.StudyGroup
	err    error
}

// groupDetailMsg is sent when a group's roster is loaded
type groupDetailMsg struct {
	group   client.StudyGroup
	leader  *client.GroupLeader
	members []client.GroupMember
	err     error
}

// joinedMsg is sent when a join request completes
type joinedMsg struct {
	err error
}

// postsLoadedMsg is sent when the board post list is loaded
type postsLoadedMsg struct {
	posts []client.Post
	err   error
}

// postCreatedMsg is sent after publishing a new board post
type postCreatedMsg struct {
	err error
}

// postLoadedMsg is sent when a post and its comments are loaded
type postLoadedMsg struct {
	post     client.Post
	comments []client.Comment
	err      error
}

// statsLoadedMsg is sent when the admin summary is loaded
type statsLoadedMsg struct {
	summary *client.StatsSummary
	err     error
}

// App is the root model for the TUI
type App struct {
	client     *client.Client
	auth       *session.Authority
	screen     Screen
	width      int
	height     int
	err        error
	status     string
	lastUpdate time.Time
	spin       spinner.Model

	// Child models
	loginScreen *login.Login
	homeView    *home.Home
	browser     *groupbrowser.Browser
	boardView   *board.Board
	statsView   *statview.StatView
}

// New creates a new TUI application
func New(apiClient *client.Client, auth *session.Authority) *App {
	a := &App{
		client: apiClient,
		auth:   auth,
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Primary)),
		),
	}
	if guard.Evaluate(auth.Loading(), auth.Current(), "") == guard.Allow {
		a.screen = ScreenHome
	} else {
		a.screen = ScreenLogin
		a.loginScreen = login.New()
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	switch a.screen {
	case ScreenLogin:
		return tea.Batch(a.spin.Tick, a.loginScreen.Init())
	case ScreenHome:
		return tea.Batch(a.spin.Tick, a.loadHome())
	}
	return a.spin.Tick
}

// requiredRole returns the role a screen demands, empty for any session
func requiredRole(s Screen) string {
	if s == ScreenStats {
		return session.RoleAdmin
	}
	return ""
}

// navigate consults the guard before switching to the target screen
func (a *App) navigate(target Screen) (tea.Model, tea.Cmd) {
	switch guard.Evaluate(a.auth.Loading(), a.auth.Current(), requiredRole(target)) {
	case guard.Wait:
		return a, nil

	case guard.RedirectLogin:
		a.screen = ScreenLogin
		a.loginScreen = login.New()
		return a, a.loginScreen.Init()

	case guard.RedirectHome:
		a.status = "That screen needs an ADMIN account."
		a.screen = ScreenHome
		if a.homeView == nil {
			return a, a.loadHome()
		}
		return a, nil
	}

	a.err = nil
	a.status = ""
	a.screen = target
	switch target {
	case ScreenHome:
		return a, a.loadHome()
	case ScreenGroups:
		return a, a.loadGroups()
	case ScreenBoard:
		return a, a.loadPosts()
	case ScreenStats:
		return a, a.loadStats()
	}
	return a, nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.homeView != nil {
			a.homeView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.statsView != nil {
			a.statsView.SetWidth(a.contentWidth())
		}
		if a.browser != nil {
			a.browser.Update(msg)
		}
		if a.boardView != nil {
			a.boardView.Update(msg)
		}
		if a.screen == ScreenLogin && a.loginScreen != nil {
			return a.updateLogin(msg)
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Route to current screen
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenHome:
			return a.updateHome(msg)
		case ScreenGroups:
			return a.updateGroups(msg)
		case ScreenBoard:
			return a.updateBoard(msg)
		case ScreenStats:
			return a.updateStats(msg)
		}

	case login.SubmittedMsg:
		return a, a.performLogin(msg.Username, msg.Password)

	case login.CancelledMsg:
		return a, tea.Quit

	case loginDoneMsg:
		if msg.err != nil {
			if a.loginScreen != nil {
				return a, a.loginScreen.SetError("Login failed: " + msg.err.Error())
			}
			return a, nil
		}
		a.loginScreen = nil
		return a.navigate(ScreenHome)

	case homeLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.lastUpdate = time.Now()
		a.homeView = home.New(msg.data, a.contentWidth(), a.contentHeight())
		return a, nil

	case groupsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.lastUpdate = time.Now()
		a.browser = groupbrowser.New(msg.groups)
		return a, nil

	case groupbrowser.SelectedMsg:
		return a, a.loadGroupDetail(msg.Group)

	case groupbrowser.JoinRequestedMsg:
		return a, a.joinGroup(msg.GroupID)

	case groupbrowser.CancelledMsg:
		a.browser = nil
		return a.navigate(ScreenHome)

	case groupDetailMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.browser != nil {
			a.browser.SetDetail(msg.group, msg.leader, msg.members)
		}
		return a, nil

	case joinedMsg:
		if a.browser != nil {
			if msg.err != nil {
				a.browser.SetStatus("Join failed: " + msg.err.Error())
			} else {
				a.browser.SetStatus("Join request sent.")
			}
		}
		return a, nil

	case postsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.lastUpdate = time.Now()
		a.boardView = board.New(msg.posts)
		return a, nil

	case board.SelectedMsg:
		return a, a.loadPost(msg.PostID)

	case board.CancelledMsg:
		a.boardView = nil
		return a.navigate(ScreenHome)

	case board.ComposeSubmittedMsg:
		return a, a.createPost(msg.Input)

	case postCreatedMsg:
		if msg.err != nil {
			a.status = "Post failed: " + msg.err.Error()
			return a, nil
		}
		a.status = "Post published."
		return a, a.loadPosts()

	case postLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.boardView != nil {
			a.boardView.SetPost(msg.post, msg.comments)
		}
		return a, nil

	case statsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.lastUpdate = time.Now()
		a.statsView = statview.New(msg.summary, a.contentWidth())
		return a, nil

	default:
		// Forward unknown messages to embedded huh forms (needed for their internals)
		if a.screen == ScreenLogin && a.loginScreen != nil {
			return a.updateLogin(msg)
		}
		if a.screen == ScreenBoard && a.boardView != nil {
			var cmd tea.Cmd
			a.boardView, cmd = a.boardView.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.loginScreen == nil {
		return a, nil
	}
	model, cmd := a.loginScreen.Update(msg)
	a.loginScreen = model.(*login.Login)
	return a, cmd
}

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.loadHome()
	case "g":
		return a.navigate(ScreenGroups)
	case "p":
		return a.navigate(ScreenBoard)
	case "s":
		return a.navigate(ScreenStats)
	}
	return a, nil
}

func (a *App) updateGroups(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return a, tea.Quit
	}
	if a.browser == nil {
		return a, nil
	}
	browser, cmd := a.browser.Update(msg)
	a.browser = browser
	return a, cmd
}

func (a *App) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" && (a.boardView == nil || !a.boardView.Composing()) {
		return a, tea.Quit
	}
	if a.boardView == nil {
		return a, nil
	}
	boardView, cmd := a.boardView.Update(msg)
	a.boardView = boardView
	return a, cmd
}

func (a *App) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		a.statsView = nil
		return a.navigate(ScreenHome)
	case "r":
		return a, a.loadStats()
	}
	return a, nil
}

// performLogin exchanges credentials and installs the session
func (a *App) performLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := a.client.IssueToken(context.Background(), username, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{err: a.auth.Login(token)}
	}
}

// loadHome fetches the home overview pieces concurrently
func (a *App) loadHome() tea.Cmd {
	sess := a.auth.Current()
	if sess == nil {
		return nil
	}
	userID := sess.UserID

	return func() tea.Msg {
		data := &home.Data{}
		g, ctx := errgroup.WithContext(context.Background())

		g.Go(func() error {
			p, err := a.client.GetProfile(ctx)
			data.Profile = p
			return err
		})
		g.Go(func() error {
			m, err := a.client.GetMannerScore(ctx, userID)
			data.Manner = m
			return err
		})
		g.Go(func() error {
			n, err := a.client.UnreadNotifications(ctx)
			data.Unread = n
			return err
		})
		g.Go(func() error {
			s, err := a.client.MySchedules(ctx)
			data.Schedules = s
			return err
		})

		if err := g.Wait(); err != nil {
			return homeLoadedMsg{err: err}
		}
		return homeLoadedMsg{data: data}
	}
}

// loadGroups fetches the group list
func (a *App) loadGroups() tea.Cmd {
	return func() tea.Msg {
		groups, err := a.client.ListGroups(context.Background())
		return groupsLoadedMsg{groups: groups, err: err}
	}
}

// loadGroupDetail fetches a group's leader and roster concurrently
func (a *App) loadGroupDetail(group client.StudyGroup) tea.Cmd {
	return func() tea.Msg {
		var (
			leader  *client.GroupLeader
			members []client.GroupMember
		)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			l, err := a.client.GetGroupLeader(ctx, group.GroupID)
			leader = l
			return err
		})
		g.Go(func() error {
			m, err := a.client.ListGroupMembers(ctx, group.GroupID)
			members = m
			return err
		})
		if err := g.Wait(); err != nil {
			return groupDetailMsg{err: err}
		}
		return groupDetailMsg{group: group, leader: leader, members: members}
	}
}

// joinGroup sends a join request
func (a *App) joinGroup(groupID int64) tea.Cmd {
	return func() tea.Msg {
		return joinedMsg{err: a.client.JoinGroup(context.Background(), groupID)}
	}
}

// loadPosts fetches the board post list
func (a *App) loadPosts() tea.Cmd {
	return func() tea.Msg {
		posts, err := a.client.ListPosts(context.Background())
		return postsLoadedMsg{posts: posts, err: err}
	}
}

// createPost publishes a new board post
func (a *App) createPost(input client.PostInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.CreatePost(context.Background(), input)
		return postCreatedMsg{err: err}
	}
}

// loadPost fetches a post and its comment thread concurrently
func (a *App) loadPost(postID int64) tea.Cmd {
	return func() tea.Msg {
		var (
			post     *client.Post
			comments []client.Comment
		)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			p, err := a.client.GetPost(ctx, postID)
			post = p
			return err
		})
		g.Go(func() error {
			c, err := a.client.ListComments(ctx, postID)
			comments = c
			return err
		})
		if err := g.Wait(); err != nil {
			return postLoadedMsg{err: err}
		}
		return postLoadedMsg{post: *post, comments: comments}
	}
}

// loadStats fetches the admin summary
func (a *App) loadStats() tea.Cmd {
	return func() tea.Msg {
		summary, err := a.client.GetStatsSummary(context.Background())
		return statsLoadedMsg{summary: summary, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenHome:
		content = a.viewHome()
	case ScreenGroups:
		content = a.viewGroups()
	case ScreenBoard:
		content = a.viewBoard()
	case ScreenStats:
		content = a.viewStats()
	default:
		content = a.viewHome()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLogin() string {
	if a.loginScreen != nil {
		return a.loginScreen.View()
	}
	return ""
}

func (a *App) viewHome() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}

	body := ""
	if a.homeView != nil {
		body = styles.ActivePanel.Width(a.contentWidth()).Render(a.homeView.View())
	} else {
		body = styles.Panel.Width(a.contentWidth()).Render(a.spin.View() + " Loading...")
	}

	if a.status != "" {
		return styles.StatusWarning.Render(a.status) + "\n" + body
	}
	return body
}

func (a *App) viewGroups() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}
	if a.browser != nil {
		return styles.ActivePanel.Width(a.contentWidth()).Render(a.browser.View())
	}
	return styles.Panel.Width(a.contentWidth()).Render(a.spin.View() + " Loading groups...")
}

func (a *App) viewBoard() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}
	if a.boardView != nil {
		return styles.ActivePanel.Width(a.contentWidth()).Render(a.boardView.View())
	}
	return styles.Panel.Width(a.contentWidth()).Render(a.spin.View() + " Loading board...")
}

func (a *App) viewStats() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}
	if a.statsView != nil {
		return styles.ActivePanel.Width(a.contentWidth()).Render(a.statsView.View())
	}
	return styles.Panel.Width(a.contentWidth()).Render(a.spin.View() + " Loading statistics...")
}

// contentWidth calculates the width for the main content panel
func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - 4
}

// contentHeight calculates the height available for panel content
func (a *App) contentHeight() int {
	// Header, footer, panel borders and padding
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("StudyLink"))

	rightText := ""
	if sess := a.auth.Current(); sess != nil {
		rightText = sess.Username + " " + widgets.RoleBadge(sess.Role) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	header := "╭─" + leftText + fill + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	// Build keyboard shortcuts based on current screen
	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "Esc Quit"}
	case ScreenHome:
		shortcuts = []string{"g Groups", "p Board", "s Stats", "r Refresh", "q Quit"}
	case ScreenGroups:
		shortcuts = []string{"↑↓ Navigate", "Enter View", "Esc Back", "q Quit"}
	case ScreenBoard:
		shortcuts = []string{"↑↓ Navigate", "Enter Read", "Esc Back", "q Quit"}
	case ScreenStats:
		shortcuts = []string{"r Refresh", "b Back", "q Quit"}
	}

	// Build styled shortcuts
	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	// Right side status (last update time)
	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && a.screen != ScreenLogin {
		elapsed := a.formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	// Calculate widths
	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	footer := "╰─" + leftText + fill + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(apiClient *client.Client, auth *session.Authority) error {
	app := New(apiClient, auth)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
