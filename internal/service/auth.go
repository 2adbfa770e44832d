package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/forkful/forkful-go/internal/crypto"
	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrNotAdmin           = errors.New("admin access required")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or expired")
)

// AuthService handles registration, login and password resets.
type AuthService struct {
	repo          *repository.UserRepository
	jwtSecret     string
	jwtExpiry     time.Duration
	resetTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, jwtExpiry, resetTokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:          repo,
		jwtSecret:     secret,
		jwtExpiry:     jwtExpiry,
		resetTokenTTL: resetTokenTTL,
	}
}

// Register creates a new user account. It does not log the user in; the
// client logs in separately afterwards.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) error {
	if req.Username == "" {
		return ErrUsernameRequired
	}
	if req.Email == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     model.RoleUser,
		AuthHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login authenticates a user and returns a session token. When admin is set,
// only accounts with the admin role may log in.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest, admin bool) (model.Credentials, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Credentials{}, ErrInvalidCredentials
		}
		return model.Credentials{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.Credentials{}, err
	}
	if !match {
		return model.Credentials{}, ErrInvalidCredentials
	}

	if admin && user.Role != model.RoleAdmin {
		return model.Credentials{}, ErrNotAdmin
	}

	token, err := crypto.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.Credentials{}, err
	}

	return model.Credentials{Token: token, UserID: user.ID}, nil
}

// RequestPasswordReset issues a one-shot reset token for the account behind
// email. An unknown email is not an error, so the endpoint cannot be used to
// probe which addresses exist.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := crypto.NewResetToken()
	expiry := time.Now().Add(s.resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	// No mail transport is wired up; the token lands in the server log for
	// the operator to relay. TODO: deliver by email once an SMTP sender exists.
	slog.Info("password reset token issued", "user_id", user.ID, "token", token)
	return nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	user, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdateAuthHash(ctx, user.ID, hash)
}
