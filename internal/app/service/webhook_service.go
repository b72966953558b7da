package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
)

// GatewayNotification is the subset of Midtrans' webhook payload this
// service acts on. Unknown fields are ignored.
type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}

type WebhookResult struct {
	Status string `json:"status"`
}

// OrderNotifier queues the post-payment emails for an order.
// *NotificationService is the production implementation.
type OrderNotifier interface {
	EnqueueOrderNotifications(ctx context.Context, orderID string) error
}

type WebhookService struct {
	serverKey     string
	txRepo        repository.TransactionRepository
	notifications OrderNotifier
}

func NewWebhookService(serverKey string, txRepo repository.TransactionRepository, notifications OrderNotifier) *WebhookService {
	return &WebhookService{serverKey: serverKey, txRepo: txRepo, notifications: notifications}
}

// Handle verifies and applies one gateway notification. Midtrans retries on
// non-200 responses, so every outcome except an internal failure is
// acknowledged: a bad signature is answered with "unauthorized" and no state
// change, an unknown order with "ok".
func (s *WebhookService) Handle(ctx context.Context, n GatewayNotification) (*WebhookResult, error) {
	if !s.verifySignature(n) {
		log.Printf("WARN: webhook signature mismatch for order %s", n.OrderID)
		return &WebhookResult{Status: "unauthorized"}, nil
	}

	status := model.StatusFromGateway(n.TransactionStatus)
	previous, err := s.txRepo.UpdateStatus(ctx, n.OrderID, status, n.TransactionStatus, n.PaymentType)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Printf("WARN: webhook for unknown order %s ignored", n.OrderID)
			return &WebhookResult{Status: "ok"}, nil
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	// Notify only on the first transition into success. Midtrans redelivers
	// settlement notifications; the pre-image keeps emails single-shot.
	if status == model.StatusSuccess && previous.Status != model.StatusSuccess {
		if err := s.notifications.EnqueueOrderNotifications(ctx, n.OrderID); err != nil {
			log.Printf("ERROR: failed to enqueue notifications for order %s: %v", n.OrderID, err)
		}
	}

	return &WebhookResult{Status: "ok"}, nil
}

// verifySignature recomputes Midtrans' signature_key:
// sha512(order_id + status_code + gross_amount + server_key) in hex,
// with gross_amount normalized to a whole-unit string first.
func (s *WebhookService) verifySignature(n GatewayNotification) bool {
	gross, ok := normalizeGrossAmount(n.GrossAmount)
	if !ok {
		return false
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + gross + s.serverKey))
	expected := hex.EncodeToString(sum[:])
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(n.SignatureKey)))
}

// normalizeGrossAmount turns Midtrans' decimal string ("150000.00") into the
// whole-unit form used for the signature ("150000"). A fractional part other
// than zeros is rejected; amounts are whole rupiah everywhere in this system.
func normalizeGrossAmount(raw string) (string, bool) {
	whole, frac, _ := strings.Cut(raw, ".")
	if whole == "" {
		return "", false
	}
	for _, r := range whole {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	for _, r := range frac {
		if r != '0' {
			return "", false
		}
	}
	return whole, true
}
