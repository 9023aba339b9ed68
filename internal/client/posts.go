// ABOUTME: Board post endpoints with comments and reviews
// ABOUTME: Covers the recruit/free board surface of the platform

package client

import (
	"context"
	"fmt"
)

// Post represents a board post.
type Post struct {
	PostID     int64  `json:"postId"`
	GroupID    int64  `json:"groupId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	LeaderName string `json:"leaderName"`
	CreatedAt  string `json:"createdAt"`
}

// PostInput is the payload for creating or updating a post.
type PostInput struct {
	GroupID  int64  `json:"groupId,omitempty"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

// Comment represents a comment on a post.
type Comment struct {
	CommentID int64  `json:"commentId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Review represents a post-completion review of a study group.
type Review struct {
	ReviewID int64   `json:"reviewId"`
	UserID   int64   `json:"userId"`
	Rating   float64 `json:"rating"`
	Content  string  `json:"content"`
}

// ListPosts fetches all board posts.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.Get(ctx, "/study-posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by ID.
func (c *Client) GetPost(ctx context.Context, postID int64) (*Post, error) {
	var p Post
	if err := c.Get(ctx, fmt.Sprintf("/study-posts/%d", postID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePost creates a board post.
func (c *Client) CreatePost(ctx context.Context, input PostInput) (*Post, error) {
	var p Post
	if err := c.Post(ctx, "/study-posts", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePost partially updates a post.
func (c *Client) UpdatePost(ctx context.Context, postID int64, input PostInput) error {
	return c.Patch(ctx, fmt.Sprintf("/study-posts/%d", postID), input, nil)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/study-posts/%d", postID))
}

// ListComments fetches the comments on a post.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	var comments []Comment
	if err := c.Get(ctx, fmt.Sprintf("/study-posts/%d/comments", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment adds a comment to a post.
func (c *Client) AddComment(ctx context.Context, postID int64, content string) error {
	return c.Post(ctx, fmt.Sprintf("/study-posts/%d/comments", postID), map[string]string{"content": content}, nil)
}

// DeleteComment removes a comment from a post.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/study-posts/%d/comments/%d", postID, commentID))
}

// ListReviews fetches the reviews on a post.
func (c *Client) ListReviews(ctx context.Context, postID int64) ([]Review, error) {
	var reviews []Review
	if err := c.Get(ctx, fmt.Sprintf("/study-posts/%d/reviews", postID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReview adds a review to a post.
func (c *Client) AddReview(ctx context.Context, postID int64, rating float64, content string) error {
	body := map[string]any{"rating": rating, "content": content}
	return c.Post(ctx, fmt.Sprintf("/study-posts/%d/reviews", postID), body, nil)
}
