package handler

import (
	"errors"
	"net/http"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/service"
)

// CommentHandler handles the recipe comments resource.
type CommentHandler struct {
	service *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// HandlePost handles POST /comments/postRecipeComment.
func (h *CommentHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var c model.Comment
	if !decodeBody(w, r, 1<<20, &c) {
		return
	}

	created, err := h.service.Post(r.Context(), userID, c)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeIDRequired),
			errors.Is(err, service.ErrContentRequired),
			errors.Is(err, service.ErrRatingOutOfRange):
			writeFail(w, http.StatusBadRequest, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeData(w, created)
}

// HandleForRecipe handles GET /comments/getRecipeComments?recipeId=.
func (h *CommentHandler) HandleForRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := parseID(r.URL.Query().Get("recipeId"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	comments, err := h.service.ForRecipe(r.Context(), recipeID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, comments)
}

// HandleDelete handles DELETE /comments/deleteComment?commentId=&userId=.
// The userId query parameter is legacy; ownership is decided from the session
// token, never from what the client claims.
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	commentID, ok := parseID(r.URL.Query().Get("commentId"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			writeFail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotCommentOwner):
			writeFail(w, http.StatusForbidden, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeData(w, nil)
}
