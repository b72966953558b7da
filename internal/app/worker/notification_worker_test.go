package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/platform/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	notifications map[string]*model.Notification
	findCalls     int
	sentIDs       []string
	failedIDs     []string
	lastAttempts  int
	lastTerminal  bool
}

func newFakeNotificationRepo(ns ...*model.Notification) *fakeNotificationRepo {
	repo := &fakeNotificationRepo{notifications: map[string]*model.Notification{}}
	for _, n := range ns {
		repo.notifications[n.ID] = n
	}
	return repo
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	r.notifications[n.ID] = n
	return nil
}

func (r *fakeNotificationRepo) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	r.findCalls++
	n, ok := r.notifications[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepo) ListPending(ctx context.Context) ([]model.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) MarkSent(ctx context.Context, id string) error {
	r.sentIDs = append(r.sentIDs, id)
	r.notifications[id].Status = model.NotificationSent
	return nil
}

func (r *fakeNotificationRepo) MarkAttemptFailed(ctx context.Context, id string, attempts int, lastError string, terminal bool) error {
	r.failedIDs = append(r.failedIDs, id)
	r.lastAttempts = attempts
	r.lastTerminal = terminal
	n := r.notifications[id]
	n.Attempts = attempts
	n.LastError = lastError
	if terminal {
		n.Status = model.NotificationFailed
	}
	return nil
}

type fakeOrderRepo struct {
	tx *model.Transaction
}

func (r *fakeOrderRepo) Create(ctx context.Context, tx *model.Transaction) error { return nil }

func (r *fakeOrderRepo) FindByOrderID(ctx context.Context, orderID string) (*model.Transaction, error) {
	if r.tx == nil || r.tx.OrderID != orderID {
		return nil, common.ErrNotFound
	}
	return r.tx, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]model.Transaction, error) { return nil, nil }
func (r *fakeOrderRepo) Count(ctx context.Context) (int64, error)              { return 0, nil }
func (r *fakeOrderRepo) CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error) {
	return 0, nil
}
func (r *fakeOrderRepo) SuccessRevenue(ctx context.Context) (int64, error) { return 0, nil }
func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status model.TransactionStatus, rawStatus, paymentType string) (*model.Transaction, error) {
	return nil, common.ErrNotFound
}

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, from string, to []string, subject, html string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, subject)
	return "msg-1", nil
}

func pendingNotification(attempts int) *model.Notification {
	return &model.Notification{
		ID:       "n-1",
		OrderID:  "ORDER-1",
		Kind:     model.NotificationAdminNotice,
		Status:   model.NotificationPending,
		Attempts: attempts,
	}
}

func paidOrder() *model.Transaction {
	return &model.Transaction{
		OrderID:       "ORDER-1",
		GrossAmount:   150000,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		Status:        model.StatusSuccess,
	}
}

func newTestWorker(repo *fakeNotificationRepo, txRepo *fakeOrderRepo, mailer mail.Mailer) *NotificationWorker {
	notifications := service.NewNotificationService(repo, txRepo, nil, mailer, "admin@calius.digital", "noreply@calius.digital", "https://calius.digital")
	return NewNotificationWorker(nil, "notifications", repo, nil, notifications)
}

func TestProcessLeavesRecordPendingWithoutMailer(t *testing.T) {
	repo := newFakeNotificationRepo(pendingNotification(0))
	w := newTestWorker(repo, &fakeOrderRepo{tx: paidOrder()}, nil)

	w.process(context.Background(), "n-1")

	assert.Zero(t, repo.findCalls, "record should not even be loaded")
	assert.Empty(t, repo.failedIDs)
	assert.Empty(t, repo.sentIDs)
	assert.Equal(t, model.NotificationPending, repo.notifications["n-1"].Status)
	assert.Zero(t, repo.notifications["n-1"].Attempts)
}

func TestProcessDeliversAndMarksSent(t *testing.T) {
	repo := newFakeNotificationRepo(pendingNotification(0))
	mailer := &fakeMailer{}
	w := newTestWorker(repo, &fakeOrderRepo{tx: paidOrder()}, mailer)

	w.process(context.Background(), "n-1")

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"n-1"}, repo.sentIDs)
	assert.Equal(t, model.NotificationSent, repo.notifications["n-1"].Status)
}

func TestProcessMarksFailedAfterFinalAttempt(t *testing.T) {
	repo := newFakeNotificationRepo(pendingNotification(maxDeliveryAttempts - 1))
	mailer := &fakeMailer{err: errors.New("resend: 429 too many requests")}
	w := newTestWorker(repo, &fakeOrderRepo{tx: paidOrder()}, mailer)

	w.process(context.Background(), "n-1")

	assert.Equal(t, []string{"n-1"}, repo.failedIDs)
	assert.Equal(t, maxDeliveryAttempts, repo.lastAttempts)
	assert.True(t, repo.lastTerminal)
	assert.Equal(t, model.NotificationFailed, repo.notifications["n-1"].Status)
}

func TestProcessSkipsAlreadySentRecord(t *testing.T) {
	n := pendingNotification(0)
	n.Status = model.NotificationSent
	repo := newFakeNotificationRepo(n)
	mailer := &fakeMailer{}
	w := newTestWorker(repo, &fakeOrderRepo{tx: paidOrder()}, mailer)

	w.process(context.Background(), "n-1")

	assert.Empty(t, mailer.sent)
	assert.Empty(t, repo.sentIDs)
	assert.Empty(t, repo.failedIDs)
}
