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

func newProjectRouter(repo *fakeProjectRepo) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/projects", func(r chi.Router) {
		ProjectRouter(r, services.NewProjectService(repo), auth.RequireRole(types.RoleInsider))
	})
	return router
}

func seedProject(t *testing.T, repo *fakeProjectRepo) types.Project {
	t.Helper()
	project, err := repo.Create(t.Context(), types.Project{
		Title:        "Portfolio",
		Description:  "This site",
		Image:        "/uploads/cover.png",
		Technologies: []string{"Next.js"},
	})
	require.NoError(t, err)
	return project
}

func TestListProjectsIsPublic(t *testing.T) {
	repo := newFakeProjectRepo()
	seedProject(t, repo)
	router := newProjectRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []types.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestCreateProjectRequiresInsider(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	body, _ := json.Marshal(ProjectUpsertRequest{
		Title:        "Portfolio",
		Description:  "This site",
		Technologies: []string{"Go"},
	})

	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	rec := doRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(outsiderPrincipal()))
	rec = doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	assert.Zero(t, repo.createCalls)
}

func TestCreateProjectTechnologiesRoundTrip(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	body, _ := json.Marshal(ProjectUpsertRequest{
		Title:        "Portfolio",
		Description:  "This site",
		Technologies: []string{"Go", "React"},
	})
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Read it back through the public route.
	req = httptest.NewRequest(http.MethodGet, "/projects/"+created.ID, nil)
	rec = doRequest(router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched types.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, []string{"Go", "React"}, fetched.Technologies)
}

func TestCreateProjectValidation(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	body, _ := json.Marshal(ProjectUpsertRequest{Title: "Portfolio"})
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, repo.createCalls)
}

// The two update variants deliberately disagree: the path-level PUT is
// a full replace, the collection-level PUT is a patch.

func TestReplaceProjectRejectsPartialBody(t *testing.T) {
	repo := newFakeProjectRepo()
	project := seedProject(t, repo)
	router := newProjectRouter(repo)

	body, _ := json.Marshal(map[string]any{"title": "New Title"})
	req := httptest.NewRequest(http.MethodPut, "/projects/"+project.ID, bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReplaceProjectFullBody(t *testing.T) {
	repo := newFakeProjectRepo()
	project := seedProject(t, repo)
	router := newProjectRouter(repo)

	body, _ := json.Marshal(ProjectUpsertRequest{
		Title:        "New Title",
		Description:  "New description",
		Image:        "/uploads/new.png",
		Technologies: []string{"Go", "React"},
		Featured:     true,
	})
	req := httptest.NewRequest(http.MethodPut, "/projects/"+project.ID, bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, []string{"Go", "React"}, updated.Technologies)
	assert.True(t, updated.Featured)
}

func TestPatchProjectByBodyKeepsOmittedFields(t *testing.T) {
	repo := newFakeProjectRepo()
	project := seedProject(t, repo)
	router := newProjectRouter(repo)

	body, _ := json.Marshal(map[string]any{"id": project.ID, "title": "Patched"})
	req := httptest.NewRequest(http.MethodPut, "/projects", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Patched", updated.Title)
	// Fields absent from the body keep their stored values.
	assert.Equal(t, project.Description, updated.Description)
	assert.Equal(t, project.Technologies, updated.Technologies)
}

func TestPatchProjectByBodyRequiresID(t *testing.T) {
	router := newProjectRouter(newFakeProjectRepo())

	body, _ := json.Marshal(map[string]any{"title": "Patched"})
	req := httptest.NewRequest(http.MethodPut, "/projects", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProjectByQueryParam(t *testing.T) {
	repo := newFakeProjectRepo()
	project := seedProject(t, repo)
	router := newProjectRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/projects?id="+project.ID, nil)
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/projects/"+project.ID, nil)
	rec = doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProjectByPath(t *testing.T) {
	repo := newFakeProjectRepo()
	project := seedProject(t, repo)
	router := newProjectRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID, nil)
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec := doRequest(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID, nil)
	req.AddCookie(sessionCookie(insiderPrincipal()))
	rec = doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
