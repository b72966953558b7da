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

type PricingHandler struct {
	repo repository.PricingRepository
}

func NewPricingHandler(repo repository.PricingRepository) *PricingHandler {
	return &PricingHandler{repo: repo}
}

func (h *PricingHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/pricing", h.List)
}

func (h *PricingHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/admin/pricing", h.Create)
	r.Put("/admin/pricing/{id}", h.Update)
	r.Delete("/admin/pricing/{id}", h.Delete)
}

func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.repo.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, packages)
}

func (h *PricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.PricingPackage
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, err)
		return
	}
	if p.NameEN == "" && p.NameID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Package name is required")
		return
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), &p); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: p.ID})
}

func (h *PricingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.PricingPackage
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, err)
		return
	}
	if err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &p); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *PricingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
