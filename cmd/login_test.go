// ABOUTME: Tests for the login and logout commands
// ABOUTME: Verifies the token exchange flow and credential persistence

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studylink/studylink-cli/internal/client"
	"github.com/studylink/studylink-cli/internal/session"
)

func TestLoginCommand_Success(t *testing.T) {
	token := mintToken(t, "USER", 7, "mina")

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/auth/tokens" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.TokenResponse{AccessToken: token})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	configDir := isolateConfigDir(t)
	loginUsername, loginPassword = "mina", "secret"
	defer func() { loginUsername, loginPassword = "", "" }()

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotAuth != "" {
		t.Errorf("token issuance must not carry a bearer, got %q", gotAuth)
	}
	if !strings.Contains(buf.String(), "Logged in as mina (USER)") {
		t.Errorf("unexpected output: %s", buf.String())
	}

	// The credential must be persisted for the next invocation
	stored, err := session.NewCredentialStore(configDir).Load()
	if err != nil {
		t.Fatalf("loading credential: %v", err)
	}
	if stored != token {
		t.Error("expected issued token to be persisted")
	}
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	configDir := isolateConfigDir(t)
	loginUsername, loginPassword = "mina", "wrong"
	defer func() { loginUsername, loginPassword = "", "" }()

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}

	stored, _ := session.NewCredentialStore(configDir).Load()
	if stored != "" {
		t.Error("failed login must not persist a credential")
	}
}

func TestLoginCommand_UnusableToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.TokenResponse{AccessToken: "not-a-jwt"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)
	loginUsername, loginPassword = "mina", "secret"
	defer func() { loginUsername, loginPassword = "", "" }()

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "unusable token") {
		t.Errorf("expected unusable-token message, got: %s", buf.String())
	}
}

func TestLogoutCommand_ClearsSession(t *testing.T) {
	withStoredSession(t, "USER")

	var buf bytes.Buffer
	exitCode := runLogout(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Logged out") {
		t.Error("expected logout confirmation")
	}

	// A second whoami should now report anonymous
	buf.Reset()
	if runWhoami(&buf) != 1 {
		t.Error("expected whoami to fail after logout")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runLogout(&buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Not logged in") {
		t.Error("expected not-logged-in message")
	}
}
