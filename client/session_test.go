package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedTestToken(t *testing.T, userID int64) string {
	t.Helper()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: userID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func TestFileSessionLoginPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	sess, err := NewFileSession(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.LoggedIn() {
		t.Error("fresh session should be logged out")
	}

	if err := sess.Login("tokenA"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !sess.LoggedIn() {
		t.Error("expected logged-in flag after login")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading persisted token: %v", err)
	}
	if string(raw) != "tokenA" {
		t.Errorf("expected persisted tokenA, got %q", raw)
	}
}

func TestFileSessionLogoutClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	sess, _ := NewFileSession(path)
	sess.Login("tokenA")

	if err := sess.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sess.LoggedIn() {
		t.Error("expected logged-out flag after logout")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected token file removed after logout")
	}

	// Logging out twice is fine.
	if err := sess.Logout(); err != nil {
		t.Errorf("second logout should be a no-op, got %v", err)
	}
}

func TestFileSessionSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	first, _ := NewFileSession(path)
	first.Login(signedTestToken(t, 42))

	second, err := NewFileSession(path)
	if err != nil {
		t.Fatalf("reloading session: %v", err)
	}
	if !second.LoggedIn() {
		t.Error("expected persisted token to survive reload")
	}
	if second.UserID() != 42 {
		t.Errorf("expected userId 42 from token claims, got %d", second.UserID())
	}
}

func TestUserIDFromOpaqueToken(t *testing.T) {
	sess := &MemorySession{}
	sess.Login("not-a-jwt")

	if sess.UserID() != 0 {
		t.Errorf("expected userId 0 for non-JWT token, got %d", sess.UserID())
	}
	if !sess.LoggedIn() {
		t.Error("opaque token still counts as logged in")
	}
}
