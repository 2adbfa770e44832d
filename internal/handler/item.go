package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/forkful/forkful-go/internal/model"
	"github.com/forkful/forkful-go/internal/service"
)

// ItemHandler handles one per-user item list. The inventory and shopping-list
// routes each get their own instance; only the delete query parameter name
// differs between the two historical contracts.
type ItemHandler struct {
	service       *service.ItemService
	deleteIDParam string
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.ItemService, deleteIDParam string) *ItemHandler {
	return &ItemHandler{service: svc, deleteIDParam: deleteIDParam}
}

func isItemValidationError(err error) bool {
	return errors.Is(err, service.ErrItemNameRequired) ||
		errors.Is(err, service.ErrQuantityInvalid)
}

// HandleMine handles the list endpoint.
func (h *ItemHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.Mine(r.Context(), userID)
	if err != nil {
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, items)
}

// HandleGet handles the detail endpoint ({id} path parameter).
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeFail(w, http.StatusNotFound, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, item)
}

// HandleAdd handles the create endpoint.
func (h *ItemHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var item model.Item
	if !decodeBody(w, r, 1<<20, &item) {
		return
	}

	created, err := h.service.Add(r.Context(), userID, item)
	if err != nil {
		if isItemValidationError(err) {
			writeFail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, created)
}

// HandleUpdate handles the edit endpoint.
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var item model.Item
	if !decodeBody(w, r, 1<<20, &item) {
		return
	}

	updated, err := h.service.Update(r.Context(), userID, item)
	if err != nil {
		switch {
		case isItemValidationError(err):
			writeFail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrItemNotFound):
			writeFail(w, http.StatusNotFound, err.Error())
		default:
			writeFail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeData(w, updated)
}

// HandleDelete handles the delete endpoint, reading the id from whichever
// query parameter this list's contract uses.
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r.URL.Query().Get(h.deleteIDParam))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeFail(w, http.StatusNotFound, err.Error())
			return
		}
		writeFail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, nil)
}
