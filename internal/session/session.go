// Package session persists completed focus and break sessions to the user's
// session log. The log is a single JSON document, append-only in practice:
// every completed session is loaded, appended and written back.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Type distinguishes focus work from breaks in the log and statistics.
type Type string

const (
	TypeFocus Type = "focus"
	TypeBreak Type = "break"
)

// Session is one completed timer run.
type Session struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  int       `json:"duration"` // minutes
	Note      string    `json:"note,omitempty"`
	Type      Type      `json:"type"`
}

// Store reads and writes the session log at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session log location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, "focusloop", "sessions.json"), nil
}

// Load reads all recorded sessions. A missing log file is an empty history,
// not an error.
func (s *Store) Load() ([]Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session log: %w", err)
	}

	var sessions []Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("parse session log %s: %w", s.path, err)
	}
	return sessions, nil
}

// Append records a completed session at the end of the log, creating the
// log (and its directory) on first use.
func (s *Store) Append(sess Session) error {
	sessions, err := s.Load()
	if err != nil {
		return err
	}
	sessions = append(sessions, sess)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session log: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}
