package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alstha/portfolio-api/config"
	"github.com/alstha/portfolio-api/internal/auth"
	"github.com/alstha/portfolio-api/types"
	"github.com/go-chi/chi/v5"
)

// AuthHandler provides cookie-session authentication endpoints.
type AuthHandler struct {
	insider config.InsiderConfig
	secure  bool
}

// NewAuthHandler constructs an AuthHandler with the provided config.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{
		insider: cfg.Insider,
		secure:  cfg.Production(),
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, cfg config.Config) {
	handler := NewAuthHandler(cfg)

	r.Post("/signin", handler.SignIn)
	r.Post("/signout", handler.SignOut)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	User types.Principal `json:"user"`
}

// SignIn authenticates a principal and sets the session cookie.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	principal, ok := auth.Authenticate(h.insider, req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	auth.SetSessionCookie(w, principal, h.secure)
	writeJSON(w, http.StatusOK, SignInResponse{User: principal})
}

// SignOut clears the session cookie. There is no server-side session
// state to clean up.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.secure)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "signed out successfully"})
}
