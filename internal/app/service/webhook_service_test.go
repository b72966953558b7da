package service

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "SB-Mid-server-testkey"

type fakeTxRepo struct {
	transactions map[string]*model.Transaction
	updateCalls  int
}

func newFakeTxRepo(txs ...*model.Transaction) *fakeTxRepo {
	repo := &fakeTxRepo{transactions: map[string]*model.Transaction{}}
	for _, tx := range txs {
		repo.transactions[tx.OrderID] = tx
	}
	return repo
}

func (r *fakeTxRepo) Create(ctx context.Context, tx *model.Transaction) error {
	r.transactions[tx.OrderID] = tx
	return nil
}

func (r *fakeTxRepo) FindByOrderID(ctx context.Context, orderID string) (*model.Transaction, error) {
	tx, ok := r.transactions[orderID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return tx, nil
}

func (r *fakeTxRepo) List(ctx context.Context) ([]model.Transaction, error) { return nil, nil }
func (r *fakeTxRepo) Count(ctx context.Context) (int64, error)             { return 0, nil }
func (r *fakeTxRepo) CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error) {
	return 0, nil
}
func (r *fakeTxRepo) SuccessRevenue(ctx context.Context) (int64, error) { return 0, nil }

func (r *fakeTxRepo) UpdateStatus(ctx context.Context, orderID string, status model.TransactionStatus, rawStatus, paymentType string) (*model.Transaction, error) {
	r.updateCalls++
	tx, ok := r.transactions[orderID]
	if !ok {
		return nil, common.ErrNotFound
	}
	previous := *tx
	tx.Status = status
	tx.TransactionStatus = rawStatus
	tx.PaymentType = paymentType
	return &previous, nil
}

type fakeNotifier struct {
	enqueued []string
}

func (n *fakeNotifier) EnqueueOrderNotifications(ctx context.Context, orderID string) error {
	n.enqueued = append(n.enqueued, orderID)
	return nil
}

func signedNotification(orderID, statusCode, grossAmount, transactionStatus string) GatewayNotification {
	sum := sha512.Sum512([]byte(orderID + statusCode + "150000" + testServerKey))
	return GatewayNotification{
		OrderID:           orderID,
		StatusCode:        statusCode,
		GrossAmount:       grossAmount,
		SignatureKey:      hex.EncodeToString(sum[:]),
		TransactionStatus: transactionStatus,
		PaymentType:       "bank_transfer",
	}
}

func TestWebhookSettlementTransitionsAndNotifies(t *testing.T) {
	txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending, GrossAmount: 150000})
	notifier := &fakeNotifier{}
	svc := NewWebhookService(testServerKey, txRepo, notifier)

	result, err := svc.Handle(context.Background(), signedNotification("ORDER-1", "200", "150000.00", "settlement"))
	require.NoError(t, err)

	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, model.StatusSuccess, txRepo.transactions["ORDER-1"].Status)
	assert.Equal(t, "settlement", txRepo.transactions["ORDER-1"].TransactionStatus)
	assert.Equal(t, []string{"ORDER-1"}, notifier.enqueued)
}

func TestWebhookRedeliveryDoesNotNotifyTwice(t *testing.T) {
	txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending, GrossAmount: 150000})
	notifier := &fakeNotifier{}
	svc := NewWebhookService(testServerKey, txRepo, notifier)

	n := signedNotification("ORDER-1", "200", "150000.00", "settlement")
	_, err := svc.Handle(context.Background(), n)
	require.NoError(t, err)
	_, err = svc.Handle(context.Background(), n)
	require.NoError(t, err)

	assert.Len(t, notifier.enqueued, 1)
	assert.Equal(t, 2, txRepo.updateCalls)
}

func TestWebhookBadSignatureIsRejectedWithoutMutation(t *testing.T) {
	txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending, GrossAmount: 150000})
	notifier := &fakeNotifier{}
	svc := NewWebhookService(testServerKey, txRepo, notifier)

	n := signedNotification("ORDER-1", "200", "150000.00", "settlement")
	n.SignatureKey = "deadbeef"

	result, err := svc.Handle(context.Background(), n)
	require.NoError(t, err)

	assert.Equal(t, "unauthorized", result.Status)
	assert.Equal(t, model.StatusPending, txRepo.transactions["ORDER-1"].Status)
	assert.Zero(t, txRepo.updateCalls)
	assert.Empty(t, notifier.enqueued)
}

func TestWebhookFractionalGrossAmountIsRejected(t *testing.T) {
	txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending, GrossAmount: 150000})
	svc := NewWebhookService(testServerKey, txRepo, &fakeNotifier{})

	n := signedNotification("ORDER-1", "200", "150000.50", "settlement")

	result, err := svc.Handle(context.Background(), n)
	require.NoError(t, err)

	assert.Equal(t, "unauthorized", result.Status)
	assert.Zero(t, txRepo.updateCalls)
}

func TestWebhookUnknownOrderIsAcknowledged(t *testing.T) {
	txRepo := newFakeTxRepo()
	notifier := &fakeNotifier{}
	svc := NewWebhookService(testServerKey, txRepo, notifier)

	result, err := svc.Handle(context.Background(), signedNotification("ORDER-404", "200", "150000.00", "settlement"))
	require.NoError(t, err)

	assert.Equal(t, "ok", result.Status)
	assert.Empty(t, notifier.enqueued)
}

func TestWebhookNonSuccessStatusesDoNotNotify(t *testing.T) {
	cases := map[string]model.TransactionStatus{
		"pending": model.StatusPending,
		"deny":    model.StatusFailed,
		"cancel":  model.StatusCancelled,
		"expire":  model.StatusExpired,
		"refund":  model.StatusUnknown,
	}
	for raw, want := range cases {
		txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending, GrossAmount: 150000})
		notifier := &fakeNotifier{}
		svc := NewWebhookService(testServerKey, txRepo, notifier)

		result, err := svc.Handle(context.Background(), signedNotification("ORDER-1", "201", "150000.00", raw))
		require.NoError(t, err, raw)

		assert.Equal(t, "ok", result.Status, raw)
		assert.Equal(t, want, txRepo.transactions["ORDER-1"].Status, raw)
		assert.Empty(t, notifier.enqueued, raw)
	}
}

func TestNormalizeGrossAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"150000.00", "150000", true},
		{"150000", "150000", true},
		{"150000.", "150000", true},
		{"150000.000", "150000", true},
		{"150000.50", "", false},
		{".00", "", false},
		{"", "", false},
		{"15e3", "", false},
		{"-150000.00", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizeGrossAmount(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
