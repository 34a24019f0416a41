package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

// Session is the authenticated identity: the bearer token plus the
// profile returned by the service at login.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Store holds the current session and persists it to a single JSON
// file. Lifecycle is explicit: Load at startup, Establish on login,
// Clear on logout. There is no ambient global state.
type Store struct {
	path string

	mu      sync.RWMutex
	current *Session
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads a previously persisted session. A missing or unreadable
// file leaves the store logged out; corrupt data is removed so the
// next startup is clean.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("session: read %s: %w", s.path, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		_ = os.Remove(s.path)
		return nil
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return nil
}

// SetToken records a token in memory only, so the calls that complete a
// login (fetching the profile) can authenticate before the session is
// persisted.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.current = &Session{Token: token}
	s.mu.Unlock()
}

// Establish sets the session and persists it.
func (s *Store) Establish(token string, user model.User) error {
	sess := &Session{Token: token, User: user}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: mkdir: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}

// Clear drops the in-memory session and removes the persisted file.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}
	return nil
}

// Current returns the active session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Authenticated reports whether a session with a profile is active.
// Route guarding keys off this.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.User.ID != 0
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
