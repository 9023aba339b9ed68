// ABOUTME: Access decision function for protected screens
// ABOUTME: Pure evaluation of loading state, session, and required role

package guard

import "github.com/studylink/studylink-cli/internal/session"

// Decision is the outcome of evaluating access to a protected screen.
type Decision int

const (
	// Wait means startup restoration has not resolved yet; render a
	// neutral waiting state and do not redirect.
	Wait Decision = iota
	// RedirectLogin means no session exists; send the user to login.
	RedirectLogin
	// RedirectHome means the session lacks the required role; send the
	// user to the default authenticated landing screen, not an error.
	RedirectHome
	// Allow means the protected content may render.
	Allow
)

// Evaluate decides access for a protected screen. It holds no state and
// must be re-evaluated whenever loading, the session, or the destination
// changes. The order matters: redirecting while loading would bounce an
// about-to-be-authenticated user to login.
func Evaluate(loading bool, sess *session.Session, requiredRole string) Decision {
	if loading {
		return Wait
	}
	if sess == nil {
		return RedirectLogin
	}
	if requiredRole != "" && sess.Role != requiredRole {
		return RedirectHome
	}
	return Allow
}

// String returns the string representation of a Decision.
func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}
