package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/service"
)

// RecipeHandler handles the recipes resource.
type RecipeHandler struct {
	service *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

func isRecipeValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrIngredientsRequired) ||
		errors.Is(err, service.ErrDirectionsRequired)
}

func pageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
	return page, pageSize
}

// HandlePopular handles GET /recipes/popular.
func (h *RecipeHandler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Popular(r.Context())
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, page)
}

// HandleAll handles GET /recipes/all?page=&pageSize=.
func (h *RecipeHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	result, err := h.service.All(r.Context(), page, pageSize)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, result)
}

// HandleSearch handles GET /recipes/search?keyword=.
func (h *RecipeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, result)
}

// HandlePopularByTag handles GET /recipes/tag/popular?tag=&page=&pageSize=.
func (h *RecipeHandler) HandlePopularByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeFail(w, http.StatusBadRequest, "tag is required")
		return
	}
	page, pageSize := pageParams(r)

	result, err := h.service.PopularByTag(r.Context(), tag, page, pageSize)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, result)
}

// HandleGet handles GET /recipes/{id}.
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeFail(w, http.StatusNotFound, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, rec)
}

// HandleMine handles GET /recipes/getAllMyRecipes.
func (h *RecipeHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recipes, err := h.service.Mine(r.Context(), userID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, recipes)
}

// HandlePublish handles POST /recipes/publish.
func (h *RecipeHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var draft model.RecipeDraft
	if !decodeBody(w, r, 1<<20, &draft) {
		return
	}

	rec, err := h.service.Publish(r.Context(), userID, draft)
	if err != nil {
		if isRecipeValidationError(err) {
			writeFail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, rec)
}

// HandleEdit handles POST /recipes/edit.
func (h *RecipeHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var rec model.Recipe
	if !decodeBody(w, r, 1<<20, &rec) {
		return
	}

	updated, err := h.service.Edit(r.Context(), userID, rec)
	if err != nil {
		switch {
		case isRecipeValidationError(err):
			writeFail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRecipeNotFound):
			writeFail(w, http.StatusNotFound, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeData(w, updated)
}

// HandleDelete handles DELETE /recipes/delete?recipeId=.
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r.URL.Query().Get("recipeId"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeFail(w, http.StatusNotFound, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, nil)
}
