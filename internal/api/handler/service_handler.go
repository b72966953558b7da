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

type ServiceHandler struct {
	repo repository.ServiceRepository
}

func NewServiceHandler(repo repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

func (h *ServiceHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/services", h.List)
	r.Get("/services/{slug}", h.GetBySlug)
}

func (h *ServiceHandler) RegisterEditorRoutes(r chi.Router) {
	r.Post("/admin/services", h.Create)
	r.Put("/admin/services/{id}", h.Update)
	r.Delete("/admin/services/{id}", h.Delete)
}

func (h *ServiceHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/admin/services/reset", h.Reset)
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	svc, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s model.Service
	if err := decodeJSON(r, &s); err != nil {
		handleError(w, err)
		return
	}
	if s.NameEN == "" && s.NameID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Service name is required")
		return
	}
	s.ID = uuid.NewString()
	if s.Slug == "" {
		name := s.NameEN
		if name == "" {
			name = s.NameID
		}
		s.Slug = slug.Make(name)
	}
	s.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), &s); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: s.ID})
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var s model.Service
	if err := decodeJSON(r, &s); err != nil {
		handleError(w, err)
		return
	}
	s.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &s); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

// Reset restores the stock service catalog. Admin-only escape hatch for a
// mangled services collection.
func (h *ServiceHandler) Reset(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.repo.Reset(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "seeded": seeded})
}
