// ABOUTME: Recommendation command showing server-scored group suggestions
// ABOUTME: Popular ranking by default, tag matching with --tags

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
)

var (
	recommendByTags bool
	recommendLat    float64
	recommendLng    float64
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show recommended study groups",
	Long: `Show study groups recommended by the backend.

By default groups are ranked by popularity. With --tags, groups are
matched against your interest tags, optionally biased by --lat/--lng.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRecommend(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().BoolVar(&recommendByTags, "tags", false, "Match against interest tags instead of popularity")
	recommendCmd.Flags().Float64Var(&recommendLat, "lat", 0, "Latitude for distance weighting")
	recommendCmd.Flags().Float64Var(&recommendLng, "lng", 0, "Longitude for distance weighting")
}

// runRecommend fetches recommendations and returns exit code
func runRecommend(ctx context.Context, w io.Writer) int {
	c, auth, err := newSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if auth.Current() == nil {
		fmt.Fprintln(w, "Not logged in. Run 'studylink login' first.")
		return 1
	}

	var recs []client.Recommendation
	if recommendByTags {
		recs, err = c.TagRecommendations(ctx, recommendLat, recommendLng)
	} else {
		recs, err = c.PopularGroups(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(recs, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations available.")
		return 0
	}
	for _, r := range recs {
		fmt.Fprintf(w, "%4d  %-30s  %-12s  score %.2f\n", r.GroupID, r.Title, r.Category, r.Score)
	}
	return 0
}
