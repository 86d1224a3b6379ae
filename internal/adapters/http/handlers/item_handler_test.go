package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekocak/todo-service/internal/adapters/http/dto"
	"github.com/ekocak/todo-service/internal/adapters/http/handlers"
	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/domain/item"
)

// --- ListItems ---

func TestListItems_Success(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{items: []item.Item{validItem()}}
	h := handlers.NewItemHandler(svc)

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))
	h.ListItems(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ItemListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if svc.lastOwner != testOwner {
		t.Errorf("owner = %q, want %q", svc.lastOwner, testOwner)
	}
}

func TestListItems_ServiceError(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{err: domain.ErrUnavailable}
	h := handlers.NewItemHandler(svc)

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))
	h.ListItems(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- CreateItem ---

func TestCreateItem_Success(t *testing.T) {
	t.Parallel()
	created := validItem()
	svc := &stubItemService{single: &created}
	h := handlers.NewItemHandler(svc)

	body := jsonBody(t, dto.CreateItemRequest{Title: "Buy groceries", Description: "Milk, eggs, bread", Priority: 3})
	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPost, "/api/v1/todos", body))
	req.Header.Set("Content-Type", "application/json")
	h.CreateItem(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ItemResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
	if svc.lastOwner != testOwner {
		t.Errorf("owner = %q, want %q", svc.lastOwner, testOwner)
	}
}

func TestCreateItem_MissingFields(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{}
	h := handlers.NewItemHandler(svc)

	body := jsonBody(t, dto.CreateItemRequest{Title: "Buy groceries"})
	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPost, "/api/v1/todos", body))
	h.CreateItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	if svc.lastItem != nil {
		t.Error("service called despite invalid request")
	}
}

func TestCreateItem_InvalidJSON(t *testing.T) {
	t.Parallel()
	h := handlers.NewItemHandler(&stubItemService{})

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPost, "/api/v1/todos", strings.NewReader("{not json")))
	h.CreateItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateItem_ValidationError(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{err: &domain.ValidationError{Fields: map[string]string{"title": "too short"}}}
	h := handlers.NewItemHandler(svc)

	body := jsonBody(t, dto.CreateItemRequest{Title: "ab", Description: "Milk, eggs, bread", Priority: 3})
	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPost, "/api/v1/todos", body))
	h.CreateItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.title" {
		t.Errorf("unexpected error details: %+v", resp.Errors)
	}
}

// --- GetItem ---

func TestGetItem_Success(t *testing.T) {
	t.Parallel()
	it := validItem()
	svc := &stubItemService{single: &it}
	h := handlers.NewItemHandler(svc)

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodGet, "/api/v1/todos/1", nil))
	h.GetItem(rec, withChiParams(req, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	if svc.lastID != 1 {
		t.Errorf("id = %d, want 1", svc.lastID)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{err: domain.ErrNotFound}
	h := handlers.NewItemHandler(svc)

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodGet, "/api/v1/todos/99", nil))
	h.GetItem(rec, withChiParams(req, map[string]string{"id": "99"}))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetItem_InvalidID(t *testing.T) {
	t.Parallel()
	h := handlers.NewItemHandler(&stubItemService{})

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodGet, "/api/v1/todos/abc", nil))
	h.GetItem(rec, withChiParams(req, map[string]string{"id": "abc"}))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateItem ---

func TestUpdateItem_Success(t *testing.T) {
	t.Parallel()
	updated := validItem()
	updated.Title = "Updated title"
	svc := &stubItemService{single: &updated}
	h := handlers.NewItemHandler(svc)

	body := jsonBody(t, dto.UpdateItemRequest{Title: "Updated title", Description: "Milk, eggs, bread", Priority: 2, Complete: true})
	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPut, "/api/v1/todos/1", body))
	h.UpdateItem(rec, withChiParams(req, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ItemResponse](t, rec)
	if resp.Title != "Updated title" {
		t.Errorf("Title = %q, want %q", resp.Title, "Updated title")
	}
	if svc.lastItem == nil || !svc.lastItem.Complete {
		t.Error("complete flag not passed through")
	}
}

func TestUpdateItem_MissingFields(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{}
	h := handlers.NewItemHandler(svc)

	// Full-overwrite semantics: a partial body is rejected.
	body := jsonBody(t, dto.UpdateItemRequest{Title: "Updated title"})
	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPut, "/api/v1/todos/1", body))
	h.UpdateItem(rec, withChiParams(req, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusBadRequest)
	if svc.lastItem != nil {
		t.Error("service called despite invalid request")
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{err: domain.ErrNotFound}
	h := handlers.NewItemHandler(svc)

	body := jsonBody(t, dto.UpdateItemRequest{Title: "Updated title", Description: "Milk, eggs, bread", Priority: 2})
	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodPut, "/api/v1/todos/99", body))
	h.UpdateItem(rec, withChiParams(req, map[string]string{"id": "99"}))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteItem ---

func TestDeleteItem_Success(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{}
	h := handlers.NewItemHandler(svc)

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodDelete, "/api/v1/todos/1", nil))
	h.DeleteItem(rec, withChiParams(req, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusNoContent)
	if svc.lastID != 1 {
		t.Errorf("id = %d, want 1", svc.lastID)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	t.Parallel()
	svc := &stubItemService{err: domain.ErrNotFound}
	h := handlers.NewItemHandler(svc)

	rec := httptest.NewRecorder()
	req := withOwner(httptest.NewRequest(http.MethodDelete, "/api/v1/todos/99", nil))
	h.DeleteItem(rec, withChiParams(req, map[string]string{"id": "99"}))

	requireStatus(t, rec, http.StatusNotFound)
}
