package handler

import (
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"

	"github.com/go-chi/chi/v5"
)

type WebhookHandler struct {
	webhooks *service.WebhookService
}

func NewWebhookHandler(webhooks *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

func (h *WebhookHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/webhooks/midtrans", h.HandleNotification)
}

// HandleNotification receives Midtrans' server-to-server status callback.
// It always answers 200 unless persistence itself failed; Midtrans retries
// on anything else.
func (h *WebhookHandler) HandleNotification(w http.ResponseWriter, r *http.Request) {
	var n service.GatewayNotification
	if err := decodeJSON(r, &n); err != nil {
		handleError(w, err)
		return
	}
	result, err := h.webhooks.Handle(r.Context(), n)
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}
