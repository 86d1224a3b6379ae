package handlers

import (
	"net/http"

	"github.com/ekocak/todo-service/internal/adapters/http/dto"
	"github.com/ekocak/todo-service/internal/adapters/http/middleware"
	"github.com/ekocak/todo-service/internal/ports"
)

// ItemHandler handles HTTP requests for owner-scoped to-do CRUD operations.
// All routes served by this handler sit behind the Authenticate middleware,
// so the owner ID is always present in the request context.
type ItemHandler struct {
	items ports.ItemService
}

// NewItemHandler creates a new ItemHandler with the given service port.
func NewItemHandler(items ports.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// ListItems handles GET /api/v1/todos.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerFromContext(r.Context())

	items, err := h.items.List(r.Context(), ownerID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemListResponse(items))
}

// CreateItem handles POST /api/v1/todos.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerFromContext(r.Context())

	var req dto.CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.items.Create(r.Context(), ownerID, mapCreateItemRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToItemResponse(created))
}

// GetItem handles GET /api/v1/todos/{id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerFromContext(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	it, err := h.items.Get(r.Context(), ownerID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(it))
}

// UpdateItem handles PUT /api/v1/todos/{id}.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerFromContext(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.items.Update(r.Context(), ownerID, id, mapUpdateItemRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(updated))
}

// DeleteItem handles DELETE /api/v1/todos/{id}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerFromContext(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.items.Delete(r.Context(), ownerID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
