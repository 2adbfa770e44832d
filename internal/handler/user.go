package handler

import (
	"errors"
	"net/http"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/service"
)

// UserHandler handles the current user's profile.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleGetProfile handles GET /user/getUserProfile.
func (h *UserHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, profile)
}

// HandleUpdateProfile handles PUT /user/updateUserProfile. The body is the
// full profile record; there is no partial patch.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var profile model.Profile
	if !decodeBody(w, r, 1<<20, &profile) {
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), userID, profile)
	if err != nil {
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
	writeData(w, updated)
}
