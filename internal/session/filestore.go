// ABOUTME: File-backed persistence for the session credential
// ABOUTME: Stores a single admin_token entry as JSON in the config directory

package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// TokenKey is the one persisted key
const TokenKey = "admin_token"

const fileName = "session.json"

// FileStore persists the credential to <dir>/session.json
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the session file location
func (f *FileStore) Path() string {
	return filepath.Join(f.dir, fileName)
}

// Load returns the stored token. A missing or corrupt file means no token.
func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		slog.Warn("Ignoring corrupt session file", "path", f.Path(), "error", err)
		return "", nil
	}
	return stored[TokenKey], nil
}

// Save writes token, replacing any previous value
func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(map[string]string{TokenKey: token}, "", "  ")
	if err != nil {
		return err
	}

	// Write to a temp file first so a crash never leaves a half-written token
	tmp, err := os.CreateTemp(f.dir, fileName+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path())
}

// Clear removes the session file. Missing files are not an error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore keeps the credential in memory only
type MemoryStore struct {
	token string
}

// Load implements Persister
func (m *MemoryStore) Load() (string, error) { return m.token, nil }

// Save implements Persister
func (m *MemoryStore) Save(token string) error {
	m.token = token
	return nil
}

// Clear implements Persister
func (m *MemoryStore) Clear() error {
	m.token = ""
	return nil
}
