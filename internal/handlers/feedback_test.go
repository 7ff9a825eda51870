package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alstha/portfolio-api/internal/auth"
	"github.com/alstha/portfolio-api/internal/services"
	"github.com/alstha/portfolio-api/types"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackRouter(repo *fakeFeedbackRepo) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/feedback", func(r chi.Router) {
		FeedbackRouter(r, services.NewFeedbackService(repo), auth.RequireRole(types.RoleInsider))
	})
	return router
}

func TestCreateFeedback(t *testing.T) {
	repo := newFakeFeedbackRepo()
	router := newFeedbackRouter(repo)

	body, _ := json.Marshal(FeedbackRequest{Name: "Ann", Rating: 5, Comment: "great site"})
	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewBuffer(body))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 5, created.Rating)
}

func TestCreateFeedbackValidation(t *testing.T) {
	tests := []struct {
		name string
		body FeedbackRequest
	}{
		{name: "missing name", body: FeedbackRequest{Rating: 4}},
		{name: "missing rating", body: FeedbackRequest{Name: "Ann"}},
		{name: "rating too high", body: FeedbackRequest{Name: "Ann", Rating: 6}},
		{name: "rating negative", body: FeedbackRequest{Name: "Ann", Rating: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeFeedbackRepo()
			router := newFeedbackRouter(repo)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewBuffer(body))
			rec := doRequest(router, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestFeedbackListRequiresInsider(t *testing.T) {
	router := newFeedbackRouter(newFakeFeedbackRepo())

	req := httptest.NewRequest(http.MethodGet, "/feedback", nil)
	rec := doRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/feedback", nil)
	req.AddCookie(sessionCookie(outsiderPrincipal()))
	rec = doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateFeedback(t *testing.T) {
	repo := newFakeFeedbackRepo()
	router := newFeedbackRouter(repo)

	entry, err := repo.Create(t.Context(), types.Feedback{Name: "Ann", Rating: 3})
	require.NoError(t, err)

	body, _ := json.Marshal(FeedbackRequest{Name: "Ann", Rating: 4, Comment: "better now"})
	req := httptest.NewRequest(http.MethodPut, "/feedback/"+entry.ID, bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "better now", updated.Comment)
}

func TestDeleteFeedbackTwice(t *testing.T) {
	repo := newFakeFeedbackRepo()
	router := newFeedbackRouter(repo)

	entry, err := repo.Create(t.Context(), types.Feedback{Name: "Ann", Rating: 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/feedback/"+entry.ID, nil)
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/feedback/"+entry.ID, nil)
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec = doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
