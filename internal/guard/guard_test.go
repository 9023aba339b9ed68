// ABOUTME: Tests for the access decision function
// ABOUTME: Verifies decision ordering, role gating, and redirect targets

package guard

import (
	"testing"

	"github.com/studylink/studylink-cli/internal/session"
)

func TestEvaluate_Loading_NeverRedirects(t *testing.T) {
	// Even with no session, loading must win over a login redirect.
	if got := Evaluate(true, nil, ""); got != Wait {
		t.Errorf("Evaluate(loading, nil) = %v, want Wait", got)
	}
	if got := Evaluate(true, nil, session.RoleAdmin); got != Wait {
		t.Errorf("Evaluate(loading, nil, ADMIN) = %v, want Wait", got)
	}
}

func TestEvaluate_NoSession_RedirectsToLogin(t *testing.T) {
	if got := Evaluate(false, nil, ""); got != RedirectLogin {
		t.Errorf("Evaluate(nil session) = %v, want RedirectLogin", got)
	}
}

func TestEvaluate_RoleMismatch_RedirectsHomeNotLogin(t *testing.T) {
	sess := &session.Session{Role: session.RoleUser, UserID: 3, Username: "bob"}

	got := Evaluate(false, sess, session.RoleAdmin)
	if got != RedirectHome {
		t.Errorf("Evaluate(USER, need ADMIN) = %v, want RedirectHome", got)
	}
}

func TestEvaluate_RoleMatch_Allows(t *testing.T) {
	sess := &session.Session{Role: session.RoleAdmin, UserID: 7, Username: "alice"}

	if got := Evaluate(false, sess, session.RoleAdmin); got != Allow {
		t.Errorf("Evaluate(ADMIN, need ADMIN) = %v, want Allow", got)
	}
}

func TestEvaluate_NoRoleRequired_AnySessionAllows(t *testing.T) {
	sess := &session.Session{Role: session.RoleUser, UserID: 3, Username: "bob"}

	if got := Evaluate(false, sess, ""); got != Allow {
		t.Errorf("Evaluate(USER, no role) = %v, want Allow", got)
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		decision Decision
		expected string
	}{
		{Wait, "wait"},
		{RedirectLogin, "redirect-login"},
		{RedirectHome, "redirect-home"},
		{Allow, "allow"},
		{Decision(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.decision.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
