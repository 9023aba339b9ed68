// ABOUTME: Tests for the StudyLink API client
// ABOUTME: Uses httptest to verify bearer attachment, exemptions, and error handling

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testToken = "header.payload.signature"

// headerRecorder captures the Authorization header of each request.
type headerRecorder struct {
	headers []string
	paths   []string
}

func recordingServer(t *testing.T, rec *headerRecorder, status int, body any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.headers = append(rec.headers, r.Header.Get("Authorization"))
		rec.paths = append(rec.paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}))
}

func TestIsExempt(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		exempt bool
	}{
		{"token issuance", http.MethodPost, "/auth/tokens", true},
		{"login", http.MethodPost, "/auth/login", true},
		{"registration", http.MethodPost, "/users", true},
		{"profile read", http.MethodGet, "/users/profile", false},
		{"account delete", http.MethodDelete, "/users/7", false},
		{"group list", http.MethodGet, "/study-groups", false},
		{"notification patch", http.MethodPatch, "/notifications/1/read", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsExempt(tc.method, tc.path); got != tc.exempt {
				t.Errorf("IsExempt(%s %s) = %t, want %t", tc.method, tc.path, got, tc.exempt)
			}
		})
	}
}

func TestRequest_WithSession_AttachesBearer(t *testing.T) {
	rec := &headerRecorder{}
	server := recordingServer(t, rec, http.StatusOK, []StudyGroup{})
	defer server.Close()

	c := New(server.URL)
	c.SetAuthorization(testToken)

	if _, err := c.ListGroups(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.headers[0]; got != "Bearer "+testToken {
		t.Errorf("Authorization = %q, want %q", got, "Bearer "+testToken)
	}
}

func TestRequest_NoSession_NoHeader(t *testing.T) {
	rec := &headerRecorder{}
	server := recordingServer(t, rec, http.StatusOK, []StudyGroup{})
	defer server.Close()

	c := New(server.URL)

	if _, err := c.ListGroups(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.headers[0]; got != "" {
		t.Errorf("Authorization = %q, want absent", got)
	}
}

func TestTokenIssuance_NeverCarriesBearer(t *testing.T) {
	rec := &headerRecorder{}
	server := recordingServer(t, rec, http.StatusOK, TokenResponse{AccessToken: "fresh"})
	defer server.Close()

	c := New(server.URL)
	// Simulate a stale session left over from a previous login.
	c.SetAuthorization(testToken)

	token, err := c.IssueToken(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "fresh" {
		t.Errorf("token = %q, want %q", token, "fresh")
	}

	if got := rec.headers[0]; got != "" {
		t.Errorf("Authorization = %q, want absent on token issuance", got)
	}
}

func TestRegistration_NeverCarriesBearer(t *testing.T) {
	rec := &headerRecorder{}
	server := recordingServer(t, rec, http.StatusCreated, nil)
	defer server.Close()

	c := New(server.URL)
	// A stale token in client state must not leak onto registration.
	c.SetAuthorization(testToken)

	err := c.Register(context.Background(), RegisterRequest{
		Username: "dana",
		Password: "pw",
		Email:    "dana@example.com",
		Name:     "Dana",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.headers[0]; got != "" {
		t.Errorf("Authorization = %q, want absent on registration", got)
	}
}

func TestUnauthorized_LeavesTokenStateUntouched(t *testing.T) {
	rec := &headerRecorder{}
	server := recordingServer(t, rec, http.StatusUnauthorized, ErrorResponse{Error: "token expired"})
	defer server.Close()

	c := New(server.URL)
	c.SetAuthorization(testToken)

	_, err := c.ListNotifications(context.Background())
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	// The 401 must not clear the default header; the next request still
	// carries the same bearer token.
	if _, err := c.ListGroups(context.Background()); err == nil {
		t.Fatal("expected error for 401 response")
	}
	if got := rec.headers[1]; got != "Bearer "+testToken {
		t.Errorf("Authorization after 401 = %q, want %q", got, "Bearer "+testToken)
	}
}

func TestErrorResponse_SurfacesStatusAndMessage(t *testing.T) {
	rec := &headerRecorder{}
	server := recordingServer(t, rec, http.StatusForbidden, ErrorResponse{Error: "not group leader"})
	defer server.Close()

	c := New(server.URL)
	c.SetAuthorization(testToken)

	err := c.ApproveMember(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected error for 403 response")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusForbidden)
	}
	if apiErr.Message != "not group leader" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "not group leader")
	}
}

func TestErrorResponse_NonJSONBody_StillTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ListGroups(context.Background())

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusBadGateway)
	}
}

func TestRequest_ConnectionError(t *testing.T) {
	c := New("http://localhost:99999")
	_, err := c.ListGroups(context.Background())
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestRequest_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode([]StudyGroup{})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := c.ListGroups(ctx)
	if err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}

func TestRequest_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode([]StudyGroup{})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.ListGroups(ctx)
	if err == nil {
		t.Error("expected error for timed out context, got nil")
	}
}

func TestGet_QueryEncoding(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]Recommendation{})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetAuthorization(testToken)

	if _, err := c.TagRecommendations(context.Background(), 37.45, 127.13); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "lat=37.45&lng=127.13" {
		t.Errorf("query = %q, want %q", gotQuery, "lat=37.45&lng=127.13")
	}
}
