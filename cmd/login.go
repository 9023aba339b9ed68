// ABOUTME: Login command exchanging credentials for a session token
// ABOUTME: Prompts interactively when flags are omitted

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to StudyLink",
	Long:  `Authenticate against the StudyLink backend and store the session token locally.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted if omitted)")
}

// runLogin executes the login flow and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	username, password := loginUsername, loginPassword
	if username == "" || password == "" {
		if err := promptCredentials(&username, &password); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	token, err := c.IssueToken(ctx, username, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	// A token the backend issued but the client cannot decode is a real
	// failure and must be shown, not swallowed.
	if err := auth.Login(token); err != nil {
		fmt.Fprintf(w, "Error: received unusable token: %v\n", err)
		return 2
	}

	sess := auth.Current()
	fmt.Fprintf(w, "Logged in as %s (%s)\n", sess.Username, sess.Role)
	return 0
}

// promptCredentials fills missing credentials via an interactive form.
func promptCredentials(username, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	).WithTheme(huh.ThemeBase())

	return form.Run()
}
