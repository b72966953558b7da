package handler

import (
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"

	"github.com/go-chi/chi/v5"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) RegisterAuthedRoutes(r chi.Router) {
	r.Get("/admin/stats", h.Overview)
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Overview(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stats)
}
