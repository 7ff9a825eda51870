package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/alstha/portfolio-api/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxUploadBytes     = 16 << 20
	maxUploadFormParts = 8 << 20
	formFieldFile      = "file"
)

// UploadHandler serves media uploads (project covers, avatars, blog
// images) backed by object storage.
type UploadHandler struct {
	storage *storage.Storage
}

// NewUploadHandler constructs a handler with the provided storage.
// Storage may be nil when no backend is configured; upload routes then
// answer with a server error instead of panicking.
func NewUploadHandler(st *storage.Storage) *UploadHandler {
	return &UploadHandler{storage: st}
}

// UploadRouter registers upload routes on the given router. Uploading
// is insider-only; fetching an uploaded object is public, since the
// stored URLs appear on the public site.
func UploadRouter(r chi.Router, st *storage.Storage, insiderOnly func(http.Handler) http.Handler) {
	handler := NewUploadHandler(st)

	r.With(insiderOnly).Post("/", handler.Upload)
	r.Get("/{key}", handler.Serve)
}

// UploadResponse reports where an uploaded object landed.
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusInternalServerError, "uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadFormParts); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile(formFieldFile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := uuid.NewString() + ext

	if err := h.storage.Put(r.Context(), key, file, header.Size, contentType); err != nil {
		writeStoreError(w, "failed to store upload", err)
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{
		Key: key,
		URL: "/uploads/" + key,
	})
}

func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusInternalServerError, "uploads are not configured")
		return
	}

	key := chi.URLParam(r, "key")

	obj, err := h.storage.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "upload not found")
		return
	}
	defer obj.Close()

	// MinIO opens objects lazily; a missing key only surfaces on the
	// first read, so buffer before committing to a status code.
	data, err := io.ReadAll(io.LimitReader(obj, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusNotFound, "upload not found")
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
