package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alstha/portfolio-api/internal/services"
	"github.com/alstha/portfolio-api/internal/store"
	"github.com/alstha/portfolio-api/types"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler provides HTTP handlers for portfolio projects.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler constructs a handler with the provided service.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRouter registers project routes on the given router. Reads
// are public; all mutations are insider-only.
//
// Two update variants coexist on purpose: PUT on the collection takes
// the id in the body and patches only the fields present, while PUT on
// /{projectID} is a full replace that rejects missing fields. The
// admin panel calls both. The same duplication applies to delete
// (query-param vs. path id).
func ProjectRouter(r chi.Router, projectService *services.ProjectService, insiderOnly func(http.Handler) http.Handler) {
	handler := NewProjectHandler(projectService)

	r.Get("/", handler.ListProjects)
	r.With(insiderOnly).Post("/", handler.CreateProject)
	r.With(insiderOnly).Put("/", handler.PatchProjectByBody)
	r.With(insiderOnly).Delete("/", handler.DeleteProjectByQuery)
	r.Route("/{projectID}", func(r chi.Router) {
		r.Get("/", handler.GetProject)
		r.With(insiderOnly).Put("/", handler.ReplaceProject)
		r.With(insiderOnly).Delete("/", handler.DeleteProject)
	})
}

// ProjectUpsertRequest is the full-replace payload for creates and
// path-level updates.
type ProjectUpsertRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

// ProjectPatchRequest is the collection-level partial payload. Only
// fields present in the body are applied.
type ProjectPatchRequest struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	Technologies *[]string `json:"technologies"`
	Featured     *bool     `json:"featured"`
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeStoreError(w, "failed to fetch projects", err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeStoreError(w, "failed to fetch project", err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" || req.Technologies == nil {
		writeError(w, http.StatusBadRequest, "title, description, and technologies are required")
		return
	}

	created, err := h.projectService.Create(r.Context(), types.Project{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Technologies: req.Technologies,
		Featured:     req.Featured,
	})
	if err != nil {
		writeStoreError(w, "failed to create project", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ReplaceProject is the path-level update: the full field set must be
// present, and the row is replaced wholesale.
func (h *ProjectHandler) ReplaceProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")

	var req ProjectUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Image = strings.TrimSpace(req.Image)
	if req.Title == "" || req.Description == "" || req.Image == "" || req.Technologies == nil {
		writeError(w, http.StatusBadRequest, "title, description, image, and technologies are required")
		return
	}

	updated, err := h.projectService.Update(r.Context(), types.Project{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Technologies: req.Technologies,
		Featured:     req.Featured,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeStoreError(w, "failed to update project", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// PatchProjectByBody is the collection-level update: the id rides in
// the body and absent fields keep their stored values.
func (h *ProjectHandler) PatchProjectByBody(w http.ResponseWriter, r *http.Request) {
	var req ProjectPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "project id is required")
		return
	}

	project, err := h.projectService.Get(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeStoreError(w, "failed to fetch project", err)
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.LiveURL != nil {
		project.LiveURL = *req.LiveURL
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}

	updated, err := h.projectService.Update(r.Context(), project)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeStoreError(w, "failed to update project", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.deleteProject(w, r, chi.URLParam(r, "projectID"))
}

func (h *ProjectHandler) DeleteProjectByQuery(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "project id is required")
		return
	}
	h.deleteProject(w, r, id)
}

func (h *ProjectHandler) deleteProject(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		writeStoreError(w, "failed to delete project", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "project deleted successfully"})
}
