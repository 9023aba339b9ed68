// ABOUTME: Study group commands for browsing, joining, and leading groups
// ABOUTME: Subcommands: list, show, join, leave, create, edit, delete, approve, reject

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

	"github.com/studylink/studylink-cli/internal/client"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Browse and join study groups",
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all study groups",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsShowCmd = &cobra.Command{
	Use:   "show <group-id>",
	Short: "Show one study group with its leader and members",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsShow(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsJoinCmd = &cobra.Command{
	Use:   "join <group-id>",
	Short: "Request membership in a study group",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsJoin(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	groupTitle       string
	groupDescription string
	groupCategory    string
	groupTags        []string
	groupMaxMembers  int
)

var groupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a study group you will lead",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		input := client.GroupInput{
			Title:       groupTitle,
			Description: groupDescription,
			Category:    groupCategory,
			Tags:        groupTags,
			MaxMembers:  groupMaxMembers,
		}
		exitCode := runGroupsCreate(ctx, os.Stdout, input)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsEditCmd = &cobra.Command{
	Use:   "edit <group-id>",
	Short: "Update fields of a group you lead",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		// Only flags the user actually set are sent.
		fields := map[string]any{}
		if cmd.Flags().Changed("title") {
			fields["title"] = groupTitle
		}
		if cmd.Flags().Changed("description") {
			fields["description"] = groupDescription
		}
		if cmd.Flags().Changed("category") {
			fields["category"] = groupCategory
		}
		if cmd.Flags().Changed("tags") {
			fields["tags"] = groupTags
		}
		if cmd.Flags().Changed("max-members") {
			fields["maxMembers"] = groupMaxMembers
		}
		exitCode := runGroupsEdit(ctx, os.Stdout, args[0], fields)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <group-id>",
	Short: "Delete a group you lead",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsApproveCmd = &cobra.Command{
	Use:   "approve <group-id> <user-id>",
	Short: "Approve a pending membership request",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsDecide(ctx, os.Stdout, args[0], args[1], true)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsRejectCmd = &cobra.Command{
	Use:   "reject <group-id> <user-id>",
	Short: "Reject a pending membership request",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsDecide(ctx, os.Stdout, args[0], args[1], false)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var groupsLeaveCmd = &cobra.Command{
	Use:   "leave <member-id>",
	Short: "Leave a study group by membership ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGroupsLeave(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsShowCmd)
	groupsCmd.AddCommand(groupsJoinCmd)
	groupsCmd.AddCommand(groupsLeaveCmd)
	groupsCmd.AddCommand(groupsCreateCmd)
	groupsCmd.AddCommand(groupsEditCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	groupsCmd.AddCommand(groupsApproveCmd)
	groupsCmd.AddCommand(groupsRejectCmd)

	for _, c := range []*cobra.Command{groupsCreateCmd, groupsEditCmd} {
		c.Flags().StringVar(&groupTitle, "title", "", "Group title")
		c.Flags().StringVar(&groupDescription, "description", "", "Group description")
		c.Flags().StringVar(&groupCategory, "category", "", "Group category")
		c.Flags().StringSliceVar(&groupTags, "tags", nil, "Interest tags (comma separated)")
		c.Flags().IntVar(&groupMaxMembers, "max-members", 6, "Member limit")
	}
	groupsCreateCmd.MarkFlagRequired("title")
	groupsCreateCmd.MarkFlagRequired("category")
}

// runGroupsList fetches all groups and returns exit code
func runGroupsList(ctx context.Context, w io.Writer) int {
	c, _, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	groups, err := c.ListGroups(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(groups, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(groups) == 0 {
		fmt.Fprintln(w, "No study groups found.")
		return 0
	}
	for _, g := range groups {
		fmt.Fprintln(w, formatGroupLine(g))
	}
	return 0
}

// runGroupsShow fetches one group with leader and members
func runGroupsShow(ctx context.Context, w io.Writer, rawID string) int {
	groupID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid group ID %q\n", rawID)
		return 2
	}

	c, _, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	group, err := c.GetGroup(ctx, groupID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	leader, err := c.GetGroupLeader(ctx, groupID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	members, err := c.ListGroupMembers(ctx, groupID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		output := map[string]interface{}{
			"group":   group,
			"leader":  leader,
			"members": members,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%s\n\n%s\n\nCategory: %s\nLeader:   %s\nMembers:  %d/%d\n",
		group.Title, group.Description, group.Category, leader.Username, len(members), group.MaxMembers)
	return 0
}

// runGroupsJoin requests membership and returns exit code
func runGroupsJoin(ctx context.Context, w io.Writer, rawID string) int {
	groupID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid group ID %q\n", rawID)
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

	if err := c.JoinGroup(ctx, groupID); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Join request sent for group %d.\n", groupID)
	return 0
}

// runGroupsCreate creates a group and returns exit code
func runGroupsCreate(ctx context.Context, w io.Writer, input client.GroupInput) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	g, err := c.CreateGroup(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(g, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}
	fmt.Fprintf(w, "Created group %d: %s\n", g.GroupID, g.Title)
	return 0
}

// runGroupsEdit patches the given fields and returns exit code
func runGroupsEdit(ctx context.Context, w io.Writer, rawID string, fields map[string]any) int {
	groupID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid group ID %q\n", rawID)
		return 2
	}
	if len(fields) == 0 {
		fmt.Fprintln(w, "Nothing to update. Set at least one field flag.")
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

	if err := c.PatchGroup(ctx, groupID, fields); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Updated group %d.\n", groupID)
	return 0
}

// runGroupsDelete deletes a group and returns exit code
func runGroupsDelete(ctx context.Context, w io.Writer, rawID string) int {
	groupID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid group ID %q\n", rawID)
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

	if err := c.DeleteGroup(ctx, groupID); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted group %d.\n", groupID)
	return 0
}

// runGroupsDecide approves or rejects a pending membership request
func runGroupsDecide(ctx context.Context, w io.Writer, rawGroupID, rawUserID string, approve bool) int {
	groupID, err := strconv.ParseInt(rawGroupID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid group ID %q\n", rawGroupID)
		return 2
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid user ID %q\n", rawUserID)
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

	if approve {
		err = c.ApproveMember(ctx, groupID, userID)
	} else {
		err = c.RejectMember(ctx, groupID, userID)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if approve {
		fmt.Fprintf(w, "Approved user %d for group %d.\n", userID, groupID)
	} else {
		fmt.Fprintf(w, "Rejected user %d for group %d.\n", userID, groupID)
	}
	return 0
}

// runGroupsLeave removes the caller's membership and returns exit code
func runGroupsLeave(ctx context.Context, w io.Writer, rawID string) int {
	memberID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid member ID %q\n", rawID)
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

	if err := c.LeaveGroup(ctx, memberID); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Left group membership %d.\n", memberID)
	return 0
}

// formatGroupLine renders one group as a list row
func formatGroupLine(g client.StudyGroup) string {
	return fmt.Sprintf("%4d  %-30s  %-12s  %d/%d members", g.GroupID, g.Title, g.Category, g.MemberCount, g.MaxMembers)
}
