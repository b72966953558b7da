package handler

import (
	"net/http"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ContactHandler struct {
	repo repository.ContactRepository
}

func NewContactHandler(repo repository.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

func (h *ContactHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/contact", h.Submit)
}

func (h *ContactHandler) RegisterEditorRoutes(r chi.Router) {
	r.Get("/admin/contacts", h.List)
	r.Put("/admin/contacts/{id}/read", h.MarkRead)
	r.Delete("/admin/contacts/{id}", h.Delete)
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var c model.ContactMessage
	if err := decodeJSON(r, &c); err != nil {
		handleError(w, err)
		return
	}
	if c.Name == "" || c.Email == "" || c.Message == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}
	c.ID = uuid.NewString()
	c.Status = "new"
	c.IsRead = false
	c.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), &c); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: c.ID})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.repo.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
