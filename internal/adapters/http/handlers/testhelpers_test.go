package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ekocak/todo-service/internal/adapters/http/middleware"
	"github.com/ekocak/todo-service/internal/domain/item"
)

const testOwner = "owner-1"

var testTime = time.Date(2026, 8, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withOwner(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithOwner(r.Context(), testOwner))
}

func validItem() item.Item {
	return item.Item{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Priority:    3,
		Complete:    false,
		OwnerID:     testOwner,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// stubItemService is a hand-written ports.ItemService stub.
type stubItemService struct {
	items     []item.Item
	single    *item.Item
	err       error
	lastOwner string
	lastID    int64
	lastItem  *item.Item
}

func (s *stubItemService) List(_ context.Context, ownerID string) ([]item.Item, error) {
	s.lastOwner = ownerID
	return s.items, s.err
}

func (s *stubItemService) Get(_ context.Context, ownerID string, id int64) (*item.Item, error) {
	s.lastOwner, s.lastID = ownerID, id
	return s.single, s.err
}

func (s *stubItemService) Create(_ context.Context, ownerID string, it *item.Item) (*item.Item, error) {
	s.lastOwner, s.lastItem = ownerID, it
	return s.single, s.err
}

func (s *stubItemService) Update(_ context.Context, ownerID string, id int64, it *item.Item) (*item.Item, error) {
	s.lastOwner, s.lastID, s.lastItem = ownerID, id, it
	return s.single, s.err
}

func (s *stubItemService) Delete(_ context.Context, ownerID string, id int64) error {
	s.lastOwner, s.lastID = ownerID, id
	return s.err
}

// stubAuthService is a hand-written ports.AuthService stub.
type stubAuthService struct {
	token        string
	err          error
	lastUsername string
	lastPassword string
}

func (s *stubAuthService) Register(_ context.Context, username, password string) error {
	s.lastUsername, s.lastPassword = username, password
	return s.err
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	s.lastUsername, s.lastPassword = username, password
	return s.token, s.err
}
