package client

import (
	"context"
	"net/http"
)

// RoleAdmin selects the admin login endpoint; any other role logs in as a
// regular user.
const RoleAdmin = "admin"

// AuthService signs users in and out of the API. It does not touch the
// session store: callers decide whether to persist the returned token.
type AuthService struct {
	c *Client
}

// Login exchanges credentials for a token. The endpoint depends on the role.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (Credentials, error) {
	path := "/user/loginWithPassword"
	if role == RoleAdmin {
		path = "/admin/login"
	}
	return do[Credentials](ctx, s.c, request{
		method: http.MethodPost,
		path:   path,
		body: map[string]string{
			"username": username,
			"password": password,
		},
	})
}

// Register creates a new account. The user still has to log in afterwards.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodPost,
		path:   "/user/register",
		body: map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		},
	})
}

// RequestPasswordReset asks the backend to mail a reset token to email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodPost,
		path:   "/user/forgotPassword",
		body:   map[string]string{"email": email},
	})
}

// ResetPassword consumes a one-shot reset token. The token rides in the
// User-Token header in place of a session token, and the new password is a
// query parameter, matching the backend's contract.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return doNoData(ctx, s.c, request{
		method: http.MethodPost,
		path:   "/user/resetPassword",
		query:  query("newPassword", newPassword),
		header: http.Header{TokenHeader: []string{token}},
	})
}
