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

// FeedbackHandler provides HTTP handlers for feedback entries.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler constructs a handler with the provided service.
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRouter registers feedback routes on the given router.
func FeedbackRouter(r chi.Router, feedbackService *services.FeedbackService, insiderOnly func(http.Handler) http.Handler) {
	handler := NewFeedbackHandler(feedbackService)

	r.Post("/", handler.CreateFeedback)
	r.With(insiderOnly).Get("/", handler.ListFeedback)
	r.Route("/{feedbackID}", func(r chi.Router) {
		r.Use(insiderOnly)
		r.Get("/", handler.GetFeedback)
		r.Put("/", handler.UpdateFeedback)
		r.Delete("/", handler.DeleteFeedback)
	})
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func parseFeedbackRequest(r *http.Request) (FeedbackRequest, error) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return FeedbackRequest{}, errors.New("invalid request")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Rating == 0 {
		return FeedbackRequest{}, errors.New("name and rating are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return FeedbackRequest{}, errors.New("rating must be between 1 and 5")
	}

	return req, nil
}

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackService.List(r.Context())
	if err != nil {
		writeStoreError(w, "failed to fetch feedback", err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "feedbackID")

	entry, err := h.feedbackService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		writeStoreError(w, "failed to fetch feedback", err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	req, err := parseFeedbackRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.feedbackService.Create(r.Context(), types.Feedback{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeStoreError(w, "failed to create feedback", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "feedbackID")

	req, err := parseFeedbackRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.feedbackService.Update(r.Context(), types.Feedback{
		ID:      id,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		writeStoreError(w, "failed to update feedback", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "feedbackID")

	if err := h.feedbackService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		writeStoreError(w, "failed to delete feedback", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "feedback deleted successfully"})
}
