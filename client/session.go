package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// SessionStore holds the current auth token. The transport reads it on every
// outgoing request; only Login and Logout write it. Stores are injected rather
// than global so tests can run several simulated sessions side by side.
type SessionStore interface {
	Token() string
	UserID() int64
	LoggedIn() bool
	Login(token string) error
	Logout() error
}

// sessionClaims mirrors the user_id claim the API puts in its tokens. The
// client has no signing secret, so the claim is decoded without verification;
// it is a convenience for display, not an authorization decision.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

func userIDFromToken(token string) int64 {
	claims := &sessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0
	}
	return claims.UserID
}

// FileSession persists the token to a single file, surviving restarts the way
// the browser client's local storage did. The zero value is not usable; create
// one with NewFileSession or DefaultFileSession.
type FileSession struct {
	path string

	mu     sync.RWMutex
	token  string
	userID int64
}

// NewFileSession loads any previously persisted token from path.
func NewFileSession(path string) (*FileSession, error) {
	s := &FileSession{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	s.token = strings.TrimSpace(string(raw))
	s.userID = userIDFromToken(s.token)
	return s, nil
}

// DefaultFileSession stores the token under the user's config directory.
func DefaultFileSession() (*FileSession, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFileSession(filepath.Join(dir, "forkful", "token"))
}

func (s *FileSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *FileSession) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *FileSession) LoggedIn() bool {
	return s.Token() != ""
}

// Login persists the token and flips the session to logged-in.
func (s *FileSession) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("persisting session token: %w", err)
	}
	s.token = token
	s.userID = userIDFromToken(token)
	return nil
}

// Logout removes the persisted token. A missing file is not an error.
func (s *FileSession) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.token = ""
	s.userID = 0
	return nil
}

// MemorySession keeps the token in memory only. Useful for tests and for
// embedding the client in processes that manage their own credential storage.
type MemorySession struct {
	mu     sync.RWMutex
	token  string
	userID int64
}

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *MemorySession) LoggedIn() bool {
	return s.Token() != ""
}

func (s *MemorySession) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userIDFromToken(token)
	return nil
}

func (s *MemorySession) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = 0
	return nil
}
