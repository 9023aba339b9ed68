// ABOUTME: Register command creating a new StudyLink account
// ABOUTME: Collects account details via flags or an interactive form

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/studylink/studylink-cli/internal/client"
)

var (
	registerUsername string
	registerPassword string
	registerEmail    string
	registerName     string
	registerTags     []string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a StudyLink account",
	Long:  `Register a new account. Registration does not require a session; log in afterwards with 'studylink login'.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Desired username")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password (prompted if omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringSliceVar(&registerTags, "tags", nil, "Interest tags (comma separated)")
}

// runRegister executes account creation and returns exit code
func runRegister(ctx context.Context, w io.Writer) int {
	req := client.RegisterRequest{
		Username:     registerUsername,
		Password:     registerPassword,
		Email:        registerEmail,
		Name:         registerName,
		InterestTags: registerTags,
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		if err := promptRegistration(&req); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	c, _, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if err := c.Register(ctx, req); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Account %s created. Log in with 'studylink login'.\n", req.Username)
	return 0
}

// promptRegistration fills missing registration fields via an interactive form.
func promptRegistration(req *client.RegisterRequest) error {
	var tags string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&req.Username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password),
			huh.NewInput().
				Title("Email").
				Value(&req.Email),
			huh.NewInput().
				Title("Display name").
				Value(&req.Name),
			huh.NewInput().
				Title("Interest tags (comma separated)").
				Value(&tags),
		),
	).WithTheme(huh.ThemeBase())

	if err := form.Run(); err != nil {
		return err
	}
	if tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				req.InterestTags = append(req.InterestTags, t)
			}
		}
	}
	return nil
}
