// ABOUTME: Durable storage for the persisted credential (raw token string)
// ABOUTME: Stores the token as JSON in the XDG config directory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// credentialFile is the fixed file name holding the persisted token.
const credentialFile = "credentials.json"

// CredentialStore reads and writes the persisted token under a config
// directory. The Authority is its sole writer; nothing else in the
// process touches the file.
type CredentialStore struct {
	configDir string
}

type credentialData struct {
	Token string `json:"token"`
}

// NewCredentialStore creates a store rooted at the given config directory.
func NewCredentialStore(configDir string) *CredentialStore {
	return &CredentialStore{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "studylink")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "studylink")
}

// path returns the full path to the credential file.
func (cs *CredentialStore) path() string {
	return filepath.Join(cs.configDir, credentialFile)
}

// Load reads the persisted token from disk.
// A missing file is not an error; it returns an empty token.
func (cs *CredentialStore) Load() (string, error) {
	data, err := os.ReadFile(cs.path())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var cred credentialData
	if err := json.Unmarshal(data, &cred); err != nil {
		// A corrupt envelope is an unusable credential. Remove it so the
		// next startup does not trip over it again.
		os.Remove(cs.path())
		return "", nil
	}
	return cred.Token, nil
}

// Save writes the token to disk, creating the config directory if needed.
// The file is user-readable only since it holds a live credential.
func (cs *CredentialStore) Save(token string) error {
	if err := os.MkdirAll(cs.configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(credentialData{Token: token}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cs.path(), data, 0600)
}

// Clear removes the persisted token. Removing an already-absent
// credential is not an error.
func (cs *CredentialStore) Clear() error {
	err := os.Remove(cs.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
