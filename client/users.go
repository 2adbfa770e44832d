package client

import (
	"context"
	"net/http"
)

// UserService is the current user's profile.
type UserService struct {
	c *Client
}

// Profile returns the logged-in user's full profile.
func (s *UserService) Profile(ctx context.Context) (UserProfile, error) {
	return do[UserProfile](ctx, s.c, request{
		method: http.MethodGet,
		path:   "/user/getUserProfile",
	})
}

// UpdateProfile replaces the profile wholesale; there is no partial patch.
func (s *UserService) UpdateProfile(ctx context.Context, profile UserProfile) (UserProfile, error) {
	return do[UserProfile](ctx, s.c, request{
		method: http.MethodPut,
		path:   "/user/updateUserProfile",
		body:   profile,
	})
}
