package handler

import (
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"

	"github.com/go-chi/chi/v5"
)

type PaymentHandler struct {
	payments     *service.PaymentService
	clientKey    string
	isProduction bool
}

func NewPaymentHandler(payments *service.PaymentService, clientKey string, isProduction bool) *PaymentHandler {
	return &PaymentHandler{payments: payments, clientKey: clientKey, isProduction: isProduction}
}

func (h *PaymentHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/payments/create-token", h.CreateTransaction)
	r.Get("/payments/status/{orderID}", h.Status)
	r.Get("/config/midtrans", h.ClientConfig)
}

func (h *PaymentHandler) RegisterEditorRoutes(r chi.Router) {
	r.Get("/admin/orders", h.ListTransactions)
	r.Get("/admin/orders/{orderID}", h.Status)
}

func (h *PaymentHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}
	resp, err := h.payments.CreateCheckout(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	tx, err := h.payments.GetStatus(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tx)
}

func (h *PaymentHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.payments.ListTransactions(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, txs)
}

// ClientConfig exposes the public half of the Midtrans credentials so the
// frontend can load the Snap script. The server key never leaves the server.
func (h *PaymentHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"client_key":    h.clientKey,
		"is_production": h.isProduction,
	})
}
