package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alstha/portfolio-api/config"
	"github.com/alstha/portfolio-api/internal/auth"
	"github.com/alstha/portfolio-api/types"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *chi.Mux {
	cfg := config.Config{
		Env: "dev",
		Insider: config.InsiderConfig{
			Email:    "admin@alstha.com",
			Password: "s3cret",
			Name:     "Alstha Admin",
		},
	}

	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, cfg)
	})
	return router
}

func signInBody(t *testing.T, email, password string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(SignInRequest{Email: email, Password: password})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestSignInInsider(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", signInBody(t, "admin@alstha.com", "s3cret"))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SignInResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.RoleInsider, resp.User.Role)
	assert.Equal(t, "Alstha Admin", resp.User.Name)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)

	// The cookie must resolve back to the signed-in principal.
	resolved, ok := auth.ResolveCredential(cookies[0].Value)
	require.True(t, ok)
	assert.Equal(t, resp.User, resolved)
}

func TestSignInOutsider(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", signInBody(t, "ann@example.com", ""))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SignInResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.RoleOutsider, resp.User.Role)
	assert.Equal(t, "ann", resp.User.Name)
	assert.Equal(t, "ann@example.com", resp.User.Email)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", signInBody(t, "admin@alstha.com", "wrong"))
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignInRequiresEmail(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", signInBody(t, "", "whatever"))
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignOutClearsCookie(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
