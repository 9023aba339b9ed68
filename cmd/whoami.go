// ABOUTME: Whoami command showing the current session identity
// ABOUTME: Reports username, role, and user ID from the decoded token

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/studylink/studylink-cli/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long:  `Display the identity stored in the current session token, if any.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the session identity and returns exit code
func runWhoami(w io.Writer) int {
	_, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	sess := auth.Current()
	if sess == nil {
		fmt.Fprintln(w, "Not logged in.")
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatWhoamiJSON(sess))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(sess))
	}
	return 0
}

// formatWhoamiHuman formats the session for human readability
func formatWhoamiHuman(sess *session.Session) string {
	return fmt.Sprintf(`Username: %s
Role:     %s
User ID:  %d`, sess.Username, sess.Role, sess.UserID)
}

// formatWhoamiJSON formats the session as JSON
func formatWhoamiJSON(sess *session.Session) string {
	output := map[string]interface{}{
		"username": sess.Username,
		"role":     sess.Role,
		"user_id":  sess.UserID,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
