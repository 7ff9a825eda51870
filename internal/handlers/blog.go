package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alstha/portfolio-api/internal/auth"
	"github.com/alstha/portfolio-api/internal/services"
	"github.com/alstha/portfolio-api/internal/store"
	"github.com/alstha/portfolio-api/types"
	"github.com/go-chi/chi/v5"
)

// BlogHandler provides HTTP handlers for blog posts and comments.
type BlogHandler struct {
	blogService *services.BlogService
}

// NewBlogHandler constructs a handler with the provided service.
func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogRouter registers blog routes on the given router. Published
// posts are public; unpublished ones, and all mutations, are
// insider-only. Commenting needs any resolvable session.
func BlogRouter(r chi.Router, blogService *services.BlogService, insiderOnly func(http.Handler) http.Handler) {
	handler := NewBlogHandler(blogService)

	r.Get("/", handler.ListBlogs)
	r.With(insiderOnly).Post("/", handler.CreateBlog)
	r.Route("/{blogID}", func(r chi.Router) {
		r.Get("/", handler.GetBlog)
		r.With(insiderOnly).Put("/", handler.UpdateBlog)
		r.With(insiderOnly).Delete("/", handler.DeleteBlog)
		r.Get("/comments", handler.ListComments)
		r.With(auth.RequireSession).Post("/comments", handler.CreateComment)
	})
}

type BlogRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Image     string `json:"image"`
	Published bool   `json:"published"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

func parseBlogRequest(r *http.Request) (BlogRequest, error) {
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BlogRequest{}, errors.New("invalid request")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		return BlogRequest{}, errors.New("title and content are required")
	}

	return req, nil
}

// isInsider reports whether the request carries an insider session.
// List and get are open routes, so the cookie is read directly instead
// of going through the role middleware.
func isInsider(r *http.Request) bool {
	p, ok := auth.ReadSession(r)
	return ok && p.Role == types.RoleInsider
}

func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.List(r.Context(), !isInsider(r))
	if err != nil {
		writeStoreError(w, "failed to fetch blogs", err)
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blogID")

	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		writeStoreError(w, "failed to fetch blog", err)
		return
	}

	// Unpublished posts do not exist for non-insiders.
	if !blog.Published && !isInsider(r) {
		writeError(w, http.StatusNotFound, "blog not found")
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	req, err := parseBlogRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := auth.PrincipalFromContext(r.Context())

	created, err := h.blogService.Create(r.Context(), types.Blog{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Image:     req.Image,
		Published: req.Published,
		UserID:    principal.ID,
	})
	if err != nil {
		writeStoreError(w, "failed to create blog", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blogID")

	req, err := parseBlogRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Comments ride along on the row; fetch first so an update does
	// not wipe them.
	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		writeStoreError(w, "failed to fetch blog", err)
		return
	}

	blog.Title = req.Title
	blog.Content = req.Content
	blog.Excerpt = req.Excerpt
	blog.Image = req.Image
	blog.Published = req.Published

	updated, err := h.blogService.Update(r.Context(), blog)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		writeStoreError(w, "failed to update blog", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blogID")

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		writeStoreError(w, "failed to delete blog", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "blog deleted successfully"})
}

func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blogID")

	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		writeStoreError(w, "failed to fetch comments", err)
		return
	}

	writeJSON(w, http.StatusOK, blog.Comments)
}

func (h *BlogHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blogID")

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	comment, err := h.blogService.AppendComment(r.Context(), id, types.Comment{
		Content:  req.Content,
		UserID:   principal.ID,
		UserName: principal.Name,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		writeStoreError(w, "failed to create comment", err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
