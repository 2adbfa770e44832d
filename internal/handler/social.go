package handler

import (
	"errors"
	"net/http"

	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/service"
)

// SocialHandler handles the favorites and likes resources.
type SocialHandler struct {
	service *service.SocialService
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(svc *service.SocialService) *SocialHandler {
	return &SocialHandler{service: svc}
}

// HandleAddFavorite handles POST /favorites/add.
func (h *SocialHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		RecipeID int64 `json:"recipeId"`
	}
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	if err := h.service.AddFavorite(r.Context(), userID, req.RecipeID); err != nil {
		if errors.Is(err, service.ErrRecipeIDRequired) {
			writeFail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, model.Like{UserID: userID, RecipeID: req.RecipeID})
}

// HandleRemoveFavorite handles DELETE /favorites/remove?recipeId=. Removing
// a recipe that was never favorited still succeeds.
func (h *SocialHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recipeID, ok := parseID(r.URL.Query().Get("recipeId"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), userID, recipeID); err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, nil)
}

// HandleMyFavorites handles GET /favorites/getAllMyFavorites.
func (h *SocialHandler) HandleMyFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recipes, err := h.service.Favorites(r.Context(), userID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, recipes)
}

// HandleLikeCount handles GET /likes/count?recipeId=.
func (h *SocialHandler) HandleLikeCount(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := parseID(r.URL.Query().Get("recipeId"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	count, err := h.service.LikeCount(r.Context(), recipeID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, count)
}

// HandleLike handles POST /likes/likeRecipes. The pair in the body names the
// recipe; the user comes from the session.
func (h *SocialHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var like model.Like
	if !decodeBody(w, r, 1<<20, &like) {
		return
	}

	if err := h.service.Like(r.Context(), userID, like.RecipeID); err != nil {
		if errors.Is(err, service.ErrRecipeIDRequired) {
			writeFail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, model.Like{UserID: userID, RecipeID: like.RecipeID})
}

// HandleUnlike handles DELETE /likes/UnlikeRecipe with the pair in the body.
func (h *SocialHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var like model.Like
	if !decodeBody(w, r, 1<<20, &like) {
		return
	}

	if err := h.service.Unlike(r.Context(), userID, like.RecipeID); err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, nil)
}

// HandleMyLikes handles GET /likes/getAllMyLikes.
func (h *SocialHandler) HandleMyLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recipes, err := h.service.Liked(r.Context(), userID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, recipes)
}
