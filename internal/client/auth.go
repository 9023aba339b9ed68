// ABOUTME: Authentication endpoints for token issuance and registration
// ABOUTME: The only API calls legitimately made without a session

package client

import "context"

// LoginRequest is the credentials payload for token issuance.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the successful token issuance response.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// RegisterRequest is the user-creation payload.
type RegisterRequest struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	InterestTags []string `json:"interestTags"`
}

// IssueToken exchanges credentials for an access token via POST /auth/tokens.
// The request is exempt from bearer attachment.
func (c *Client) IssueToken(ctx context.Context, username, password string) (string, error) {
	var resp TokenResponse
	err := c.Post(ctx, "/auth/tokens", LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new account via POST /users.
// The request is exempt from bearer attachment.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.Post(ctx, "/users", req, nil)
}
