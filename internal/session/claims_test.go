// ABOUTME: Tests for unverified JWT claim extraction
// ABOUTME: Verifies session construction, malformed tokens, and missing claims

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signClaims signs arbitrary claims with a throwaway key. The key is
// irrelevant since decoding never verifies it.
func signClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// mintToken creates a signed test token carrying StudyLink claims.
func mintToken(t *testing.T, role string, userID int64, username string) string {
	t.Helper()

	return signClaims(t, jwt.MapClaims{
		"sub":    username,
		"role":   role,
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
}

func TestDecodeToken_ValidToken_BuildsSession(t *testing.T) {
	token := mintToken(t, RoleAdmin, 7, "alice")

	sess, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", sess.Role, RoleAdmin)
	}
	if sess.UserID != 7 {
		t.Errorf("UserID = %d, want 7", sess.UserID)
	}
	if sess.Username != "alice" {
		t.Errorf("Username = %q, want %q", sess.Username, "alice")
	}
	if sess.Token != token {
		t.Error("expected session to retain the raw token")
	}
}

func TestDecodeToken_MalformedToken_ReturnsError(t *testing.T) {
	_, err := DecodeToken("not-a-jwt")
	if err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestDecodeToken_GarbagePayload_ReturnsError(t *testing.T) {
	// Three dot-separated segments that are not valid base64 JSON.
	_, err := DecodeToken("aaaa.%%%%.cccc")
	if err == nil {
		t.Fatal("expected error for undecodable payload, got nil")
	}
}

func TestDecodeToken_MissingUserID_ReturnsError(t *testing.T) {
	signed := signClaims(t, jwt.MapClaims{
		"sub":  "bob",
		"role": RoleUser,
	})

	_, err := DecodeToken(signed)
	if !errors.Is(err, ErrMissingUserID) {
		t.Errorf("error = %v, want ErrMissingUserID", err)
	}
}

func TestDecodeToken_SignatureNeverVerified(t *testing.T) {
	token := mintToken(t, RoleUser, 3, "carol")

	// Corrupt the signature segment; decoding must still succeed because
	// claim extraction is advisory and verification is the backend's job.
	corrupted := token[:len(token)-4] + "AAAA"
	sess, err := DecodeToken(corrupted)
	if err != nil {
		t.Fatalf("unexpected error for bad signature: %v", err)
	}
	if sess.UserID != 3 {
		t.Errorf("UserID = %d, want 3", sess.UserID)
	}
}
