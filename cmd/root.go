// ABOUTME: Root command for the studylink CLI
// ABOUTME: Handles global flags, base URL resolution, and session setup

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/logger"
	"github.com/studylink/studylink-cli/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

// The two fixed deployment targets. Development machines identify
// themselves by hostname; everything else talks to production.
const (
	localBaseURL      = "http://localhost:8080/api"
	productionBaseURL = "https://gachon.studylink.click/api"
	localHostname     = "localhost"
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "studylink",
	Short: "CLI for the StudyLink study-group platform",
	Long: `studylink is a terminal client for the StudyLink study-group platform.

It manages your login session and gives access to study groups, schedules,
board posts, notifications, and recommendations from the command line.

Environment Variables:
  STUDYLINK_API_URL  Backend API URL (default depends on hostname)
  LOG_LEVEL          debug, info, warn, error (default: warn)
  LOG_FORMAT         text, json (default: text)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; environment variables still apply.
		_ = godotenv.Load()
		logger.Init()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides STUDYLINK_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or hostname-derived
// default (in priority order).
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("STUDYLINK_API_URL"); envURL != "" {
		return envURL
	}
	if hostname, err := os.Hostname(); err == nil && hostname == localHostname {
		return localBaseURL
	}
	return productionBaseURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession builds the API client and restores the session authority
// from the persisted credential. Every command goes through this so the
// client header always reflects the stored session state.
func newSession() (*client.Client, *session.Authority, error) {
	c := client.New(GetAPIURL())
	store := session.NewCredentialStore(session.DefaultConfigDir())
	auth := session.NewAuthority(c, store)
	if err := auth.Restore(); err != nil {
		return nil, nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return c, auth, nil
}
