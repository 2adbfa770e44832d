package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/forkful/forkful-go/internal/service"
)

// TagHandler handles the global tags resource.
type TagHandler struct {
	service *service.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(svc *service.TagService) *TagHandler {
	return &TagHandler{service: svc}
}

// HandleAll handles GET /tags/getAllMyTags.
func (h *TagHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.All(r.Context())
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, tags)
}

// HandleAdd handles POST /tags/addNewTag.
func (h *TagHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	tag, err := h.service.Add(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTagNameRequired):
			writeFail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTagTaken):
			writeFail(w, http.StatusConflict, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeData(w, tag)
}

// HandleDelete handles DELETE /tags/{id}.
func (h *TagHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			writeFail(w, http.StatusNotFound, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, nil)
}
