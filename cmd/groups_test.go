// ABOUTME: Tests for the groups commands
// ABOUTME: Verifies listing, join gating, and output formatting

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

func TestFormatGroupLine(t *testing.T) {
	g := client.StudyGroup{
		GroupID:     3,
		Title:       "Algorithms",
		Category:    "CS",
		MemberCount: 4,
		MaxMembers:  6,
	}

	line := formatGroupLine(g)

	if !strings.Contains(line, "Algorithms") {
		t.Error("expected title in line")
	}
	if !strings.Contains(line, "4/6") {
		t.Error("expected member counts in line")
	}
}

func TestGroupsList_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.StudyGroup{
			{GroupID: 1, Title: "Algorithms", Category: "CS"},
			{GroupID: 2, Title: "TOEIC 900", Category: "Language"},
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsList(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "Algorithms") {
		t.Error("expected first group in output")
	}
	if !strings.Contains(buf.String(), "TOEIC 900") {
		t.Error("expected second group in output")
	}
}

func TestGroupsList_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.StudyGroup{})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsList(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "No study groups found") {
		t.Error("expected empty-list message")
	}
}

func TestGroupsJoin_RequiresSession(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsJoin(context.Background(), &buf, "3")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if requested {
		t.Error("join must not issue a request without a session")
	}
}

func TestGroupsJoin_Success(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	token := withStoredSession(t, "USER")

	var buf bytes.Buffer
	exitCode := runGroupsJoin(context.Background(), &buf, "3")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotPath != "/study-groups/3/members" {
		t.Errorf("unexpected join path %q", gotPath)
	}
	if gotAuth != "Bearer "+token {
		t.Errorf("expected bearer from stored session, got %q", gotAuth)
	}
}

func TestGroupsLeave_Success(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	withStoredSession(t, "USER")

	var buf bytes.Buffer
	exitCode := runGroupsLeave(context.Background(), &buf, "12")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodDelete || gotPath != "/group-members/12" {
		t.Errorf("unexpected leave request %s %s", gotMethod, gotPath)
	}
}

func TestGroupsLeave_RequiresSession(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsLeave(context.Background(), &buf, "12")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if requested {
		t.Error("leave must not issue a request without a session")
	}
}

func TestGroupsJoin_InvalidID(t *testing.T) {
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsJoin(context.Background(), &buf, "abc")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "invalid group ID") {
		t.Error("expected invalid-ID message")
	}
}

func TestGroupsCreate_Success(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody client.GroupInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.StudyGroup{GroupID: 10, Title: gotBody.Title})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	withStoredSession(t, "USER")

	input := client.GroupInput{Title: "Algorithms", Category: "CS", MaxMembers: 6}
	var buf bytes.Buffer
	exitCode := runGroupsCreate(context.Background(), &buf, input)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodPost || gotPath != "/study-groups" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotBody.Title != "Algorithms" || gotBody.MaxMembers != 6 {
		t.Errorf("unexpected payload %+v", gotBody)
	}
	if !strings.Contains(buf.String(), "Created group 10") {
		t.Error("expected confirmation with new group ID")
	}
}

func TestGroupsEdit_SendsOnlyChangedFields(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	withStoredSession(t, "USER")

	var buf bytes.Buffer
	exitCode := runGroupsEdit(context.Background(), &buf, "5", map[string]any{"title": "Algorithms II"})

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodPatch || gotPath != "/study-groups/5" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if len(gotBody) != 1 || gotBody["title"] != "Algorithms II" {
		t.Errorf("expected only the changed field, got %v", gotBody)
	}
}

func TestGroupsEdit_NoFields(t *testing.T) {
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsEdit(context.Background(), &buf, "5", map[string]any{})

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Nothing to update") {
		t.Error("expected no-fields message")
	}
}

func TestGroupsDelete_Success(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	withStoredSession(t, "USER")

	var buf bytes.Buffer
	exitCode := runGroupsDelete(context.Background(), &buf, "5")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodDelete || gotPath != "/study-groups/5" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestGroupsReject_Success(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	withStoredSession(t, "USER")

	var buf bytes.Buffer
	exitCode := runGroupsDecide(context.Background(), &buf, "3", "9", false)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotMethod != http.MethodPost || gotPath != "/study-groups/3/members/9/reject" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if !strings.Contains(buf.String(), "Rejected user 9") {
		t.Error("expected rejection confirmation")
	}
}

func TestGroupsApprove_RequiresSession(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	isolateConfigDir(t)

	var buf bytes.Buffer
	exitCode := runGroupsDecide(context.Background(), &buf, "3", "9", true)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if requested {
		t.Error("approve must not issue a request without a session")
	}
}
