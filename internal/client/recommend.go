// ABOUTME: Recommendation endpoints for popular and tag-matched groups
// ABOUTME: Scores are computed server-side; the client only displays them

package client

import (
	"context"
	"net/url"
	"strconv"
)

// Recommendation represents a server-scored group suggestion.
type Recommendation struct {
	GroupID    int64   `json:"groupId"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	Distance   float64 `json:"distance"`
	Popularity float64 `json:"popularity"`
	TagMatch   float64 `json:"tagMatch"`
}

// PopularGroups fetches groups ranked by popularity.
func (c *Client) PopularGroups(ctx context.Context) ([]Recommendation, error) {
	var recs []Recommendation
	if err := c.Get(ctx, "/recommend/popular", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// TagRecommendations fetches groups matched to the user's interest tags,
// optionally biased by the user's location.
func (c *Client) TagRecommendations(ctx context.Context, lat, lng float64) ([]Recommendation, error) {
	var query url.Values
	if lat != 0 || lng != 0 {
		query = url.Values{}
		query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		query.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	}

	var recs []Recommendation
	if err := c.Get(ctx, "/recommend/tag", query, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
