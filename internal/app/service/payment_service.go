package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
	"github.com/kebo-sukses/calius-digital/internal/platform/payment"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type PaymentService struct {
	gateway payment.SnapGateway
	txRepo  repository.TransactionRepository
}

// NewPaymentService accepts a nil gateway; checkout then fails with a
// misconfiguration error instead of a panic.
func NewPaymentService(gateway payment.SnapGateway, txRepo repository.TransactionRepository) *PaymentService {
	return &PaymentService{gateway: gateway, txRepo: txRepo}
}

type CheckoutItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int32  `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	Items         []CheckoutItem `json:"items"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreateCheckout asks Midtrans Snap for a hosted-checkout token and records
// the order as pending. The webhook is the only thing that moves it forward.
func (s *PaymentService) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("payment gateway is not configured: %w", common.ErrMisconfigured)
	}
	if req.CustomerName == "" || req.CustomerEmail == "" {
		return nil, fmt.Errorf("customer name and email are required: %w", common.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("at least one item is required: %w", common.ErrValidation)
	}

	var gross int64
	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	txItems := make([]model.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Price <= 0 || it.Quantity <= 0 {
			return nil, fmt.Errorf("item price and quantity must be positive: %w", common.ErrValidation)
		}
		gross += it.Price * int64(it.Quantity)
		items = append(items, midtrans.ItemDetails{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Quantity,
		})
		txItems = append(txItems, model.TransactionItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	orderID := newOrderID()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Items: &items,
	}

	resp, gatewayErr := s.gateway.CreateTransaction(snapReq)
	if gatewayErr != nil {
		return nil, fmt.Errorf("midtrans rejected the transaction: %s: %w", gatewayErr.Message, common.ErrUpstream)
	}

	tx := &model.Transaction{
		OrderID:       orderID,
		GrossAmount:   gross,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		SnapToken:     resp.Token,
		Status:        model.StatusPending,
		Items:         txItems,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return &CheckoutResponse{OrderID: orderID, Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func (s *PaymentService) GetStatus(ctx context.Context, orderID string) (*model.Transaction, error) {
	return s.txRepo.FindByOrderID(ctx, orderID)
}

func (s *PaymentService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.txRepo.List(ctx)
}

func newOrderID() string {
	short := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("ORDER-%d-%s", time.Now().Unix(), strings.ToUpper(short))
}
