package handler

import (
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	repo repository.SettingsRepository
}

func NewSettingsHandler(repo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
}

func (h *SettingsHandler) RegisterAdminRoutes(r chi.Router) {
	r.Put("/settings", h.Update)
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.Get(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var s model.SiteSettings
	if err := decodeJSON(r, &s); err != nil {
		handleError(w, err)
		return
	}
	if err := h.repo.Upsert(r.Context(), &s); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
