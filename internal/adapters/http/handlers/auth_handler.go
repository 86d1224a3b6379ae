package handlers

import (
	"net/http"

	"github.com/ekocak/todo-service/internal/adapters/http/dto"
	"github.com/ekocak/todo-service/internal/ports"
)

// AuthHandler handles account registration and login.
type AuthHandler struct {
	auth ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Token handles POST /api/v1/auth/token. On success the access token is
// returned in the body and also set as a cookie so both header-based and
// cookie-based clients can authenticate.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, dto.NewTokenResponse(token))
}
