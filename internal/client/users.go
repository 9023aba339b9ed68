// ABOUTME: User profile and account endpoints
// ABOUTME: Profile lookup, account deletion, and manner scores

package client

import (
	"context"
	"fmt"
)

// Profile represents the authenticated user's account data.
type Profile struct {
	UserID       int64    `json:"userId"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	InterestTags []string `json:"interestTags"`
}

// MannerScore represents a user's peer-rated manner score.
type MannerScore struct {
	UserID int64   `json:"userId"`
	Score  float64 `json:"score"`
	Count  int     `json:"count"`
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.Get(ctx, "/users/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteAccount removes the user's account.
func (c *Client) DeleteAccount(ctx context.Context, userID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/users/%d", userID))
}

// GetMannerScore fetches the manner score for a user.
func (c *Client) GetMannerScore(ctx context.Context, userID int64) (*MannerScore, error) {
	var m MannerScore
	if err := c.Get(ctx, fmt.Sprintf("/manners/%d", userID), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
