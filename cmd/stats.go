// ABOUTME: Stats command showing platform operational metrics
// ABOUTME: Admin-gated locally before any request is issued

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/guard"
	"github.com/studylink/studylink-cli/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform statistics (admin only)",
	Long:  `Display platform-wide operational statistics. Requires an ADMIN session.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStats(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var statsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the raw statistics dataset as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatsExport(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsExportCmd)
}

// runStats fetches the admin stats summary and returns exit code
func runStats(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	switch guard.Evaluate(auth.Loading(), auth.Current(), session.RoleAdmin) {
	case guard.RedirectLogin:
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	case guard.RedirectHome:
		fmt.Fprintln(w, "The stats command requires an ADMIN session.")
		return 1
	}

	summary, err := c.GetStatsSummary(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatStatsHuman(summary))
	return 0
}

// runStatsExport streams the raw export payload and returns exit code
func runStatsExport(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	switch guard.Evaluate(auth.Loading(), auth.Current(), session.RoleAdmin) {
	case guard.RedirectLogin:
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	case guard.RedirectHome:
		fmt.Fprintln(w, "The stats command requires an ADMIN session.")
		return 1
	}

	raw, err := c.ExportStats(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var indented json.RawMessage = raw
	data, err := json.MarshalIndent(indented, "", "  ")
	if err != nil {
		fmt.Fprintln(w, string(raw))
		return 0
	}
	fmt.Fprintln(w, string(data))
	return 0
}

// formatStatsHuman formats the summary for human readability
func formatStatsHuman(s *client.StatsSummary) string {
	return fmt.Sprintf(`Users:        %d (%d active)
Study groups: %d
Board posts:  %d`, s.TotalUsers, s.ActiveUsers, s.TotalGroups, s.TotalPosts)
}
