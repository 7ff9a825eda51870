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

// ContactHandler provides HTTP handlers for contact messages.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler constructs a handler with the provided service.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRouter registers contact routes on the given router. Anyone
// may submit a message; reading and managing them is insider-only.
func ContactRouter(r chi.Router, contactService *services.ContactService, insiderOnly func(http.Handler) http.Handler) {
	handler := NewContactHandler(contactService)

	r.Post("/", handler.CreateContact)
	r.With(insiderOnly).Get("/", handler.ListContacts)
	r.Route("/{contactID}", func(r chi.Router) {
		r.Use(insiderOnly)
		r.Get("/", handler.GetContact)
		r.Put("/", handler.UpdateContact)
		r.Delete("/", handler.DeleteContact)
	})
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func parseContactRequest(r *http.Request) (ContactRequest, error) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ContactRequest{}, errors.New("invalid request")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return ContactRequest{}, errors.New("name, email, and message are required")
	}

	return req, nil
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		writeStoreError(w, "failed to fetch contacts", err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactID")

	contact, err := h.contactService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "contact not found")
			return
		}
		writeStoreError(w, "failed to fetch contact", err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	req, err := parseContactRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.contactService.Create(r.Context(), types.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		writeStoreError(w, "failed to send message", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactID")

	req, err := parseContactRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.contactService.Update(r.Context(), types.Contact{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "contact not found")
			return
		}
		writeStoreError(w, "failed to update contact", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactID")

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "contact not found")
			return
		}
		writeStoreError(w, "failed to delete contact", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "contact deleted successfully"})
}
