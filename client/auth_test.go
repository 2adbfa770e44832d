package client

import (
	"context"
	"net/http"
	"testing"
)

func TestLoginEndpointDependsOnRole(t *testing.T) {
	var path string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		writeEnvelope(w, 1, "", Credentials{Token: "tok", UserID: 1})
	})
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "sam", "pw", "user"); err != nil {
		t.Fatalf("user login: %v", err)
	}
	if path != "/user/loginWithPassword" {
		t.Errorf("expected user login path, got %s", path)
	}

	if _, err := c.Auth.Login(ctx, "root", "pw", RoleAdmin); err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if path != "/admin/login" {
		t.Errorf("expected admin login path, got %s", path)
	}
}

func TestResetPasswordSendsTokenInHeader(t *testing.T) {
	var header, newPassword string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get(TokenHeader)
		newPassword = r.URL.Query().Get("newPassword")
		writeEnvelope(w, 1, "", nil)
	})
	// A stale session token must not shadow the reset token.
	sess.Login("stale-session-token")

	err := c.Auth.ResetPassword(context.Background(), "reset-tok", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header != "reset-tok" {
		t.Errorf("expected reset token in %s header, got %q", TokenHeader, header)
	}
	if newPassword != "hunter2" {
		t.Errorf("expected newPassword query param, got %q", newPassword)
	}
}
