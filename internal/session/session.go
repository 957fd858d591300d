// Package session persists the local login session for Quill.
// The session file lives in ~/.config/quill/session.toml.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Entry mirrors the fields the blog platform hands out at login: the auth
// token plus a denormalized copy of profile fields used for instant paint.
type Entry struct {
	Token          string `toml:"token"`
	Username       string `toml:"username"`
	ProfilePicture string `toml:"profile_picture"`
	Email          string `toml:"email"`
}

// LoggedIn reports whether the entry carries an auth token.
func (e Entry) LoggedIn() bool {
	return strings.TrimSpace(e.Token) != ""
}

// Store abstracts session persistence so the profile engine can be tested
// without touching the filesystem.
type Store interface {
	Load() (Entry, error)
	Save(Entry) error
}

const defaultSessionPath = "~/.config/quill/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// FileStore reads and writes the session as a TOML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore builds a FileStore for the given path; empty uses the default.
func NewFileStore(path string) (*FileStore, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}
	return &FileStore{path: resolved}, nil
}

// Load reads the session entry. A missing file yields a zero Entry, which
// callers treat as "not logged in".
func (s *FileStore) Load() (Entry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, nil
		}
		return Entry{}, fmt.Errorf("open session: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Entry{}, fmt.Errorf("read session: %w", err)
	}

	var entry Entry
	if err := toml.Unmarshal(bytes, &entry); err != nil {
		return Entry{}, fmt.Errorf("parse session: %w", err)
	}
	return entry, nil
}

// Save writes the session entry, creating parent directories as needed.
// The file carries the auth token, so it is written owner-only.
func (s *FileStore) Save(entry Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
