package service

import (
	"context"

	"github.com/forkful/forkful-go/internal/crypto"
	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

// UserService exposes the current user's profile.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile returns the profile view of the user.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (model.Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}
	return model.ProfileFromUser(user), nil
}

// UpdateProfile replaces the profile wholesale. A password equal to the mask
// (or empty) keeps the current one; anything else becomes the new password.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, p model.Profile) (model.Profile, error) {
	if p.Username == "" {
		return model.Profile{}, ErrUsernameRequired
	}
	if p.Email == "" {
		return model.Profile{}, ErrEmailRequired
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	user.Username = p.Username
	user.Email = p.Email
	user.Avatar = p.Avatar

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		switch err {
		case repository.ErrDuplicateUsername:
			return model.Profile{}, ErrUsernameTaken
		case repository.ErrDuplicateEmail:
			return model.Profile{}, ErrEmailTaken
		}
		return model.Profile{}, err
	}

	if p.Password != "" && p.Password != model.PasswordMask {
		if len(p.Password) < 8 {
			return model.Profile{}, ErrPasswordTooShort
		}
		hash, err := crypto.HashPassword(p.Password)
		if err != nil {
			return model.Profile{}, err
		}
		if err := s.repo.UpdateAuthHash(ctx, userID, hash); err != nil {
			return model.Profile{}, err
		}
	}

	return model.ProfileFromUser(user), nil
}
