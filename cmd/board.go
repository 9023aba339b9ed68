// ABOUTME: Board commands for reading, writing, and managing posts
// ABOUTME: Subcommands: list, show, post, comment, delete

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

var (
	boardPostTitle   string
	boardPostContent string
	boardPostType    string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Read and write board posts",
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List board posts",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBoardList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var boardShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBoardShow(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var boardPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Write a new board post",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBoardPost(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var boardCommentText string

var boardCommentCmd = &cobra.Command{
	Use:   "comment <post-id>",
	Short: "Add a comment to a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBoardComment(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBoardDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardShowCmd)
	boardCmd.AddCommand(boardPostCmd)
	boardCmd.AddCommand(boardCommentCmd)
	boardCmd.AddCommand(boardDeleteCmd)

	boardCommentCmd.Flags().StringVarP(&boardCommentText, "message", "m", "", "Comment text")
	boardCommentCmd.MarkFlagRequired("message")

	boardPostCmd.Flags().StringVar(&boardPostTitle, "title", "", "Post title")
	boardPostCmd.Flags().StringVar(&boardPostContent, "content", "", "Post body")
	boardPostCmd.Flags().StringVar(&boardPostType, "type", "free", "Post type (free or recruit)")
	boardPostCmd.MarkFlagRequired("title")
	boardPostCmd.MarkFlagRequired("content")
}

// runBoardList fetches posts and returns exit code
func runBoardList(ctx context.Context, w io.Writer) int {
	c, _, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	posts, err := c.ListPosts(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(posts, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")
		return 0
	}
	for _, p := range posts {
		fmt.Fprintf(w, "%4d  [%-7s]  %-40s  %s\n", p.PostID, p.Type, p.Title, p.CreatedAt)
	}
	return 0
}

// runBoardShow fetches one post with comments
func runBoardShow(ctx context.Context, w io.Writer, rawID string) int {
	postID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid post ID %q\n", rawID)
		return 2
	}

	c, _, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	post, err := c.GetPost(ctx, postID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	comments, err := c.ListComments(ctx, postID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		output := map[string]interface{}{
			"post":     post,
			"comments": comments,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%s\n[%s] by %s at %s\n\n%s\n", post.Title, post.Type, post.LeaderName, post.CreatedAt, post.Content)
	if len(comments) > 0 {
		fmt.Fprintf(w, "\nComments (%d):\n", len(comments))
		for _, cm := range comments {
			fmt.Fprintf(w, "  %s: %s\n", cm.Username, cm.Content)
		}
	}
	return 0
}

// runBoardPost creates a post and returns exit code
func runBoardPost(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	post, err := c.CreatePost(ctx, postInput())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Posted #%d: %s\n", post.PostID, post.Title)
	return 0
}

// runBoardComment adds a comment to a post and returns exit code
func runBoardComment(ctx context.Context, w io.Writer, rawID string) int {
	postID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid post ID %q\n", rawID)
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

	if err := c.AddComment(ctx, postID, boardCommentText); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Comment added to post %d.\n", postID)
	return 0
}

// runBoardDelete deletes a post and returns exit code
func runBoardDelete(ctx context.Context, w io.Writer, rawID string) int {
	postID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid post ID %q\n", rawID)
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

	if err := c.DeletePost(ctx, postID); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted post %d.\n", postID)
	return 0
}

// postInput assembles the post payload from flags
func postInput() client.PostInput {
	return client.PostInput{
		Title:   boardPostTitle,
		Content: boardPostContent,
		Type:    boardPostType,
	}
}
