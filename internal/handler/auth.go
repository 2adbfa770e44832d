package handler

import (
	"errors"
	"net/http"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/service"
)

// AuthHandler handles login, registration and password resets.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

func isAuthValidationError(err error) bool {
	return errors.Is(err, service.ErrUsernameRequired) ||
		errors.Is(err, service.ErrEmailRequired) ||
		errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrPasswordTooShort)
}

// HandleRegister handles POST /user/register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case isAuthValidationError(err):
			writeFail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			writeFail(w, http.StatusConflict, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeData(w, nil)
}

// HandleLogin handles POST /user/loginWithPassword.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, false)
}

// HandleAdminLogin handles POST /admin/login.
func (h *AuthHandler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, true)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, admin bool) {
	var req model.LoginRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	creds, err := h.service.Login(r.Context(), req, admin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeFail(w, http.StatusOK, err.Error())
		case errors.Is(err, service.ErrNotAdmin):
			writeFail(w, http.StatusForbidden, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeData(w, creds)
}

// HandleForgotPassword handles POST /user/forgotPassword.
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			writeFail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeData(w, nil)
}

// HandleResetPassword handles POST /user/resetPassword. The one-shot reset
// token rides in the User-Token header and the new password in the query
// string, which is the contract the web client has always used.
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("User-Token")
	newPassword := r.URL.Query().Get("newPassword")

	if err := h.service.ResetPassword(r.Context(), token, newPassword); err != nil {
		switch {
		case isAuthValidationError(err):
			writeFail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrResetTokenInvalid):
			writeFail(w, http.StatusOK, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeData(w, nil)
}
