// ABOUTME: Notification commands for listing and acknowledging alerts
// ABOUTME: Subcommands: list, read, delete, clear

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var notifyUnreadOnly bool

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage notifications",
}

var notifyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runNotifyList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var notifyReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runNotifyRead(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var notifyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runNotifyClear(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var notifyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one notification",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runNotifyDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyListCmd)
	notifyCmd.AddCommand(notifyReadCmd)
	notifyCmd.AddCommand(notifyDeleteCmd)
	notifyCmd.AddCommand(notifyClearCmd)

	notifyListCmd.Flags().BoolVar(&notifyUnreadOnly, "unread", false, "Show unread notifications only")
}

// runNotifyList fetches notifications and returns exit code
func runNotifyList(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	list := c.ListNotifications
	if notifyUnreadOnly {
		list = c.UnreadNotifications
	}

	notifications, err := list(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(notifications, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(notifications) == 0 {
		fmt.Fprintln(w, "No notifications.")
		return 0
	}
	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %4d  %s\n", marker, n.ID, n.Message)
	}
	return 0
}

// runNotifyRead marks one notification as read
func runNotifyRead(ctx context.Context, w io.Writer, rawID string) int {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid notification ID %q\n", rawID)
		return 2
	}

	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	if err := c.MarkNotificationRead(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Marked notification %d as read.\n", id)
	return 0
}

// runNotifyDelete removes one notification
func runNotifyDelete(ctx context.Context, w io.Writer, rawID string) int {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid notification ID %q\n", rawID)
		return 2
	}

	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	if err := c.DeleteNotification(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted notification %d.\n", id)
	return 0
}

// runNotifyClear deletes all notifications
func runNotifyClear(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	if err := c.ClearNotifications(ctx); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, "All notifications cleared.")
	return 0
}
