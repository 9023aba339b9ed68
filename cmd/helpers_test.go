// ABOUTME: Shared test helpers for command tests
// ABOUTME: Mints session tokens and isolates the credential store per test

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/studylink/studylink-cli/internal/session"
)

// mintToken signs a token the session layer will accept. The signature
// key is irrelevant since the client never verifies it.
func mintToken(t *testing.T, role string, userID int64, username string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    username,
		"role":   role,
		"userId": userID,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

// isolateConfigDir points the credential store at a throwaway directory
// so tests never touch the developer's real session.
func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "studylink")
}

// withStoredSession persists a token for the given role into an isolated
// credential store and returns the token.
func withStoredSession(t *testing.T, role string) string {
	t.Helper()
	configDir := isolateConfigDir(t)
	token := mintToken(t, role, 7, "mina")
	if err := session.NewCredentialStore(configDir).Save(token); err != nil {
		t.Fatalf("saving credential: %v", err)
	}
	return token
}
