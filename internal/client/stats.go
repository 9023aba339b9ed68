// ABOUTME: Operational statistics endpoints for the admin surface
// ABOUTME: Summary metrics and raw CSV export

package client

import (
	"context"
	"encoding/json"
)

// StatsSummary represents platform-wide operational metrics.
type StatsSummary struct {
	TotalUsers     int            `json:"totalUsers"`
	TotalGroups    int            `json:"totalGroups"`
	TotalPosts     int            `json:"totalPosts"`
	ActiveUsers    int            `json:"activeUsers"`
	GroupsByRegion map[string]int `json:"groupsByRegion"`
	MemberRatio    map[string]int `json:"memberRatio"`
}

// GetStatsSummary fetches platform metrics. Admin-only on the backend.
func (c *Client) GetStatsSummary(ctx context.Context) (*StatsSummary, error) {
	var s StatsSummary
	if err := c.Get(ctx, "/stats/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ExportStats fetches the raw stats export. The payload is opaque to the
// client and handed to the caller as-is.
func (c *Client) ExportStats(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, "/stats/export", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
