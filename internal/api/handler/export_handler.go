package handler

import (
	"fmt"
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type ExportHandler struct {
	contacts  repository.ContactRepository
	txs       repository.TransactionRepository
	templates repository.TemplateRepository
	portfolio repository.PortfolioRepository
	blog      repository.BlogRepository
}

func NewExportHandler(
	contacts repository.ContactRepository,
	txs repository.TransactionRepository,
	templates repository.TemplateRepository,
	portfolio repository.PortfolioRepository,
	blog repository.BlogRepository,
) *ExportHandler {
	return &ExportHandler{contacts: contacts, txs: txs, templates: templates, portfolio: portfolio, blog: blog}
}

func (h *ExportHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/export/{collection}", h.Export)
}

// Export dumps one collection as a JSON download for offline backups.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var data interface{}
	var err error
	switch collection {
	case "contacts":
		data, err = h.contacts.List(r.Context())
	case "orders":
		data, err = h.txs.List(r.Context())
	case "templates":
		data, err = h.templates.List(r.Context(), "")
	case "portfolio":
		data, err = h.portfolio.List(r.Context(), "")
	case "blog":
		data, err = h.blog.List(r.Context(), "", 1000)
	default:
		common.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("Unknown collection %q", collection))
		return
	}
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-export.json", collection))
	common.RespondWithJSON(w, http.StatusOK, data)
}
