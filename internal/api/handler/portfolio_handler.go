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

type PortfolioHandler struct {
	repo repository.PortfolioRepository
}

func NewPortfolioHandler(repo repository.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{repo: repo}
}

func (h *PortfolioHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/portfolio", h.List)
}

func (h *PortfolioHandler) RegisterEditorRoutes(r chi.Router) {
	r.Post("/admin/portfolio", h.Create)
	r.Put("/admin/portfolio/{id}", h.Update)
	r.Delete("/admin/portfolio/{id}", h.Delete)
}

func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, items)
}

func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.PortfolioItem
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, err)
		return
	}
	if p.Title == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Portfolio title is required")
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

func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.PortfolioItem
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, err)
		return
	}
	p.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &p); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
