package handler

import (
	"net/http"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type TemplateHandler struct {
	repo repository.TemplateRepository
}

func NewTemplateHandler(repo repository.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

func (h *TemplateHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/templates", h.List)
	r.Get("/templates/{slug}", h.GetBySlug)
}

func (h *TemplateHandler) RegisterEditorRoutes(r chi.Router) {
	r.Post("/admin/templates", h.Create)
	r.Put("/admin/templates/{id}", h.Update)
	r.Delete("/admin/templates/{id}", h.Delete)
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repo.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	template, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, template)
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t model.Template
	if err := decodeJSON(r, &t); err != nil {
		handleError(w, err)
		return
	}
	if t.Name == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Template name is required")
		return
	}
	t.ID = uuid.NewString()
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}
	// New templates start with a clean track record.
	t.Downloads = 0
	if t.Rating == 0 {
		t.Rating = 5.0
	}
	t.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), &t); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: t.ID})
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var t model.Template
	if err := decodeJSON(r, &t); err != nil {
		handleError(w, err)
		return
	}
	t.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &t); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
