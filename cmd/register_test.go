// ABOUTME: Tests for the register command
// ABOUTME: Verifies the creation request shape and bearer exemption

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
)

func TestRegister_Success(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody client.RegisterRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	// A lingering session must not leak a bearer into user creation.
	withStoredSession(t, "USER")

	registerUsername = "mina"
	registerPassword = "secret"
	registerEmail = "mina@example.com"
	registerName = "Mina"
	registerTags = []string{"algorithms", "toeic"}
	defer func() {
		registerUsername = ""
		registerPassword = ""
		registerEmail = ""
		registerName = ""
		registerTags = nil
	}()

	var buf bytes.Buffer
	exitCode := runRegister(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodPost || gotPath != "/users" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotAuth != "" {
		t.Errorf("user creation must not carry a bearer, got %q", gotAuth)
	}
	if gotBody.Username != "mina" || gotBody.Email != "mina@example.com" {
		t.Errorf("unexpected payload %+v", gotBody)
	}
	if len(gotBody.InterestTags) != 2 {
		t.Errorf("expected 2 interest tags, got %v", gotBody.InterestTags)
	}
	if !strings.Contains(buf.String(), "Account mina created") {
		t.Error("expected confirmation message")
	}
}

func TestRegister_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "username taken"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)

	registerUsername = "mina"
	registerPassword = "secret"
	registerEmail = "mina@example.com"
	defer func() {
		registerUsername = ""
		registerPassword = ""
		registerEmail = ""
	}()

	var buf bytes.Buffer
	exitCode := runRegister(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "username taken") {
		t.Error("expected server error message in output")
	}
}
