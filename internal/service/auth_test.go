package service

import (
	"context"
	"testing"
	"time"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
		30*time.Minute,
	)
}

func TestRegister_EmptyUsername(t *testing.T) {
	svc := newTestAuthService()

	err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    "sam@example.com",
		Password: "password123",
	})

	if err != ErrUsernameRequired {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}
}

func TestRegister_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "sam",
		Password: "password123",
	})

	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "sam",
		Email:    "sam@example.com",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestAuthService()

	err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "short",
	})

	if err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestRequestPasswordReset_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	if err := svc.RequestPasswordReset(context.Background(), ""); err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestResetPassword_ShortPassword(t *testing.T) {
	svc := newTestAuthService()

	if err := svc.ResetPassword(context.Background(), "some-token", "short"); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}
