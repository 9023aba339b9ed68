// ABOUTME: Notification endpoints for listing and acknowledging alerts
// ABOUTME: Covers unread counts, read marking, and bulk deletion

package client

import (
	"context"
	"fmt"
)

// Notification represents a user notification.
type Notification struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

// ListNotifications fetches all notifications for the current user.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.Get(ctx, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadNotifications fetches only unread notifications.
func (c *Client) UnreadNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.Get(ctx, "/notifications/unread", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

// DeleteNotification removes a single notification.
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/notifications/%d", id))
}

// ClearNotifications removes all notifications for the current user.
func (c *Client) ClearNotifications(ctx context.Context) error {
	return c.Delete(ctx, "/notifications/all")
}
