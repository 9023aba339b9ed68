// ABOUTME: Session authority owning authentication state for the process
// ABOUTME: Restores, creates, and destroys sessions and syncs the API client header

package session

import (
	"fmt"
	"log/slog"
)

// Role values embedded in StudyLink tokens.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Session is the in-memory record of the authenticated identity, derived
// from the token's claims. Consumers receive it read-only; the Authority
// is its exclusive owner.
type Session struct {
	Token    string
	Role     string
	UserID   int64
	Username string
}

// TokenSink receives the active bearer token whenever the session changes.
// The API client implements this; the Authority is the only caller.
type TokenSink interface {
	SetAuthorization(token string)
}

// Authority owns the process-wide session. It is the single writer of the
// persisted credential and of the API client's default Authorization
// header; all session/guard logic runs on the UI event loop, so no
// locking is needed.
type Authority struct {
	api     TokenSink
	store   *CredentialStore
	sess    *Session
	loading bool
}

// NewAuthority creates an Authority in the initializing state.
// Loading reports true until Restore resolves.
func NewAuthority(api TokenSink, store *CredentialStore) *Authority {
	return &Authority{
		api:     api,
		store:   store,
		loading: true,
	}
}

// Restore resolves the startup state from the persisted credential.
// A missing credential yields the anonymous state. A credential that
// fails to decode, or decodes without a user identifier, is cleared from
// disk and yields the anonymous state silently; no error surfaces to the
// user. Loading becomes false exactly once, after resolution.
func (a *Authority) Restore() error {
	defer func() { a.loading = false }()

	token, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("failed to read persisted credential: %w", err)
	}
	if token == "" {
		return nil
	}

	sess, err := DecodeToken(token)
	if err != nil {
		slog.Debug("Discarding persisted credential", "reason", err)
		if clearErr := a.store.Clear(); clearErr != nil {
			return fmt.Errorf("failed to clear invalid credential: %w", clearErr)
		}
		return nil
	}

	a.setSession(sess)
	slog.Debug("Session restored", "username", sess.Username, "role", sess.Role)
	return nil
}

// Login creates a session from a freshly issued token, persists the
// credential, and syncs the client header. Decode errors propagate so the
// caller can surface a login failure; nothing is persisted in that case.
func (a *Authority) Login(token string) error {
	sess, err := DecodeToken(token)
	if err != nil {
		return err
	}

	if err := a.store.Save(token); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	a.setSession(sess)
	return nil
}

// Logout clears the persisted credential and discards the session.
func (a *Authority) Logout() error {
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	a.setSession(nil)
	return nil
}

// Current returns the active session, or nil when anonymous.
func (a *Authority) Current() *Session {
	return a.sess
}

// Loading reports whether startup restoration is still unresolved.
// Access decisions must not be made while this is true.
func (a *Authority) Loading() bool {
	return a.loading
}

// setSession is the single transition point. The client header is synced
// before it returns so no observable state sees the two out of agreement.
func (a *Authority) setSession(sess *Session) {
	a.sess = sess
	if sess != nil {
		a.api.SetAuthorization(sess.Token)
	} else {
		a.api.SetAuthorization("")
	}
}
