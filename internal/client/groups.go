// ABOUTME: Study group endpoints for browsing and membership management
// ABOUTME: Covers groups, leaders, members, and join approval flows

package client

import (
	"context"
	"fmt"
)

// StudyGroup represents a study group listing entry.
type StudyGroup struct {
	GroupID     int64    `json:"groupId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	MaxMembers  int      `json:"maxMembers"`
	MemberCount int      `json:"memberCount"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	LeaderName  string   `json:"leaderName"`
	CreatedAt   string   `json:"createdAt"`
}

// GroupLeader identifies the leader of a study group.
type GroupLeader struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// GroupMember represents a membership record within a group.
type GroupMember struct {
	MemberID int64  `json:"memberId"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

// GroupInput is the payload for creating or updating a group.
type GroupInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	MaxMembers  int      `json:"maxMembers"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
}

// ListGroups fetches all study groups.
func (c *Client) ListGroups(ctx context.Context) ([]StudyGroup, error) {
	var groups []StudyGroup
	if err := c.Get(ctx, "/study-groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup fetches a single study group by ID.
func (c *Client) GetGroup(ctx context.Context, groupID int64) (*StudyGroup, error) {
	var g StudyGroup
	if err := c.Get(ctx, fmt.Sprintf("/study-groups/%d", groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetGroupLeader fetches the leader of a group.
func (c *Client) GetGroupLeader(ctx context.Context, groupID int64) (*GroupLeader, error) {
	var l GroupLeader
	if err := c.Get(ctx, fmt.Sprintf("/study-groups/%d/leader", groupID), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListGroupMembers fetches the members of a group.
func (c *Client) ListGroupMembers(ctx context.Context, groupID int64) ([]GroupMember, error) {
	var members []GroupMember
	if err := c.Get(ctx, fmt.Sprintf("/study-groups/%d/members", groupID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateGroup creates a new study group.
func (c *Client) CreateGroup(ctx context.Context, input GroupInput) (*StudyGroup, error) {
	var g StudyGroup
	if err := c.Post(ctx, "/study-groups", input, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGroup replaces a group's details.
func (c *Client) UpdateGroup(ctx context.Context, groupID int64, input GroupInput) error {
	return c.Put(ctx, fmt.Sprintf("/study-groups/%d", groupID), input, nil)
}

// PatchGroup partially updates a group's details.
func (c *Client) PatchGroup(ctx context.Context, groupID int64, fields map[string]any) error {
	return c.Patch(ctx, fmt.Sprintf("/study-groups/%d", groupID), fields, nil)
}

// DeleteGroup removes a study group.
func (c *Client) DeleteGroup(ctx context.Context, groupID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/study-groups/%d", groupID))
}

// JoinGroup requests membership in a group for the current user.
func (c *Client) JoinGroup(ctx context.Context, groupID int64) error {
	return c.Post(ctx, fmt.Sprintf("/study-groups/%d/members", groupID), nil, nil)
}

// ApproveMember approves a pending membership request. Leader-only.
func (c *Client) ApproveMember(ctx context.Context, groupID, userID int64) error {
	return c.Post(ctx, fmt.Sprintf("/study-groups/%d/members/%d/approve", groupID, userID), nil, nil)
}

// RejectMember rejects a pending membership request. Leader-only.
func (c *Client) RejectMember(ctx context.Context, groupID, userID int64) error {
	return c.Post(ctx, fmt.Sprintf("/study-groups/%d/members/%d/reject", groupID, userID), nil, nil)
}

// LeaveGroup removes a membership record.
func (c *Client) LeaveGroup(ctx context.Context, memberID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/group-members/%d", memberID))
}
