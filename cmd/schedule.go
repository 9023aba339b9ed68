// ABOUTME: Schedule commands for study sessions and attendance
// ABOUTME: Lists personal or per-group schedules; add creates one, attend records presence

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
	"golang.org/x/sync/errgroup"

	"github.com/studylink/studylink-cli/internal/client"
)

var (
	scheduleGroupID  int64
	scheduleTitle    string
	scheduleDate     string
	scheduleLocation string
	attendStatus     string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show your study schedules",
	Long: `List your upcoming study schedules together with your attendance history.
With --group, list that group's schedule instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var exitCode int
		if cmd.Flags().Changed("group") {
			exitCode = runGroupSchedule(ctx, os.Stdout, scheduleGroupID)
		} else {
			exitCode = runSchedule(ctx, os.Stdout)
		}
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a study session for a group you lead",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		input := client.ScheduleInput{
			Title:    scheduleTitle,
			Date:     scheduleDate,
			Location: scheduleLocation,
		}
		exitCode := runScheduleAdd(ctx, os.Stdout, scheduleGroupID, input)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var scheduleAttendCmd = &cobra.Command{
	Use:   "attend <schedule-id>",
	Short: "Record your attendance for a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runScheduleAttend(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleAttendCmd)

	scheduleCmd.Flags().Int64Var(&scheduleGroupID, "group", 0, "List a group's schedule instead of your own")
	scheduleAddCmd.Flags().Int64Var(&scheduleGroupID, "group", 0, "Group the session belongs to")
	scheduleAddCmd.Flags().StringVar(&scheduleTitle, "title", "", "Session title")
	scheduleAddCmd.Flags().StringVar(&scheduleDate, "date", "", "Session date (YYYY-MM-DD)")
	scheduleAddCmd.Flags().StringVar(&scheduleLocation, "location", "", "Where the session takes place")
	scheduleAddCmd.MarkFlagRequired("group")
	scheduleAddCmd.MarkFlagRequired("title")
	scheduleAddCmd.MarkFlagRequired("date")
	scheduleAttendCmd.Flags().StringVar(&attendStatus, "status", "PRESENT", "Attendance status (PRESENT, LATE, ABSENT)")
}

// runSchedule fetches schedules and attendance and returns exit code
func runSchedule(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	var (
		schedules  []client.Schedule
		attendance []client.AttendanceRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedules, err = c.MySchedules(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		attendance, err = c.MyAttendance(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		output := map[string]interface{}{
			"schedules":  schedules,
			"attendance": attendance,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(schedules) == 0 {
		fmt.Fprintln(w, "No upcoming schedules.")
	}
	for _, s := range schedules {
		fmt.Fprintf(w, "%4d  %-12s  %-30s  %s\n", s.ScheduleID, s.Date, s.Title, s.Location)
	}
	if len(attendance) > 0 {
		fmt.Fprintf(w, "\nAttendance records: %d\n", len(attendance))
	}
	return 0
}

// runGroupSchedule lists one group's sessions and returns exit code
func runGroupSchedule(ctx context.Context, w io.Writer, groupID int64) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	schedules, err := c.GroupSchedules(ctx, groupID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(schedules, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(schedules) == 0 {
		fmt.Fprintln(w, "No sessions scheduled for this group.")
		return 0
	}
	for _, s := range schedules {
		fmt.Fprintf(w, "%4d  %-12s  %-30s  %s\n", s.ScheduleID, s.Date, s.Title, s.Location)
	}
	return 0
}

// runScheduleAdd creates a session and returns exit code
func runScheduleAdd(ctx context.Context, w io.Writer, groupID int64, input client.ScheduleInput) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	if err := c.CreateSchedule(ctx, groupID, input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Scheduled %q on %s for group %d.\n", input.Title, input.Date, groupID)
	return 0
}

// runScheduleAttend records attendance and returns exit code
func runScheduleAttend(ctx context.Context, w io.Writer, rawID string) int {
	scheduleID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid schedule ID %q\n", rawID)
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

	record := client.AttendanceRecord{ScheduleID: scheduleID, Status: attendStatus}
	if err := c.RecordAttendance(ctx, record); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Attendance recorded for session %d (%s).\n", scheduleID, attendStatus)
	return 0
}
