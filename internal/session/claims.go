// ABOUTME: Unverified JWT claim extraction for session construction
// ABOUTME: Decodes role, userId, and subject without checking the signature

package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingUserID indicates a token that decoded cleanly but carries no
// user identifier claim. Such a token cannot back a session.
var ErrMissingUserID = errors.New("token has no userId claim")

// tokenClaims is the subset of the StudyLink JWT payload the client reads.
// Any other claims the backend embeds are ignored.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

// DecodeToken extracts a Session from a raw JWT without verifying its
// signature. Verification is the backend's responsibility on every request;
// the decoded values are advisory and authoritative only for display and
// routing decisions on this side of the wire.
func DecodeToken(token string) (*Session, error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}

	if claims.UserID == 0 {
		return nil, ErrMissingUserID
	}

	return &Session{
		Token:    token,
		Role:     claims.Role,
		UserID:   claims.UserID,
		Username: claims.Subject,
	}, nil
}
