package handler

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplateRepo struct {
	templates map[string]*model.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[string]*model.Template{}}
}

func (r *fakeTemplateRepo) List(ctx context.Context, category string) ([]model.Template, error) {
	out := []model.Template{}
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTemplateRepo) FindBySlug(ctx context.Context, slug string) (*model.Template, error) {
	for _, t := range r.templates {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeTemplateRepo) Create(ctx context.Context, t *model.Template) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, id string, t *model.Template) error {
	if _, ok := r.templates[id]; !ok {
		return common.ErrNotFound
	}
	t.ID = id
	r.templates[id] = t
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.templates[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *fakeTemplateRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.templates)), nil
}

type fakeTxRepo struct {
	transactions map[string]*model.Transaction
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

func (r *fakeTxRepo) List(ctx context.Context) ([]model.Transaction, error) {
	out := []model.Transaction{}
	for _, tx := range r.transactions {
		out = append(out, *tx)
	}
	return out, nil
}

func (r *fakeTxRepo) Count(ctx context.Context) (int64, error) { return 0, nil }
func (r *fakeTxRepo) CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error) {
	return 0, nil
}
func (r *fakeTxRepo) SuccessRevenue(ctx context.Context) (int64, error) { return 0, nil }

func (r *fakeTxRepo) UpdateStatus(ctx context.Context, orderID string, status model.TransactionStatus, rawStatus, paymentType string) (*model.Transaction, error) {
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

type fakeGateway struct{}

func (g *fakeGateway) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	return &snap.Response{Token: "snap-token", RedirectURL: "https://app.sandbox.midtrans.com/snap"}, nil
}

type fakeNotifier struct {
	enqueued []string
}

func (n *fakeNotifier) EnqueueOrderNotifications(ctx context.Context, orderID string) error {
	n.enqueued = append(n.enqueued, orderID)
	return nil
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTemplateManagementRoutes(t *testing.T) {
	repo := newFakeTemplateRepo()
	h := NewTemplateHandler(repo)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		h.RegisterEditorRoutes(r)
	})

	rec := doJSON(t, router, http.MethodPost, "/api/admin/templates", map[string]interface{}{
		"name": "Landing Page", "category": "landing", "price": 150000,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created mutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/templates", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/admin/templates/"+created.ID, map[string]interface{}{
		"name": "Landing Page v2", "category": "landing", "price": 200000,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, "/api/admin/templates/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/admin/templates/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPaymentRoutes(t *testing.T) {
	txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending})
	h := NewPaymentHandler(service.NewPaymentService(&fakeGateway{}, txRepo), "client-key", false)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		h.RegisterEditorRoutes(r)
	})

	rec := doJSON(t, router, http.MethodPost, "/api/payments/create-token", map[string]interface{}{
		"customer_name":  "Budi",
		"customer_email": "budi@example.com",
		"items": []map[string]interface{}{
			{"id": "tpl-1", "name": "Landing Page", "price": 150000, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/payments/status/ORDER-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/config/midtrans", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/orders", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/orders/ORDER-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookRoute(t *testing.T) {
	const serverKey = "SB-Mid-server-testkey"
	txRepo := newFakeTxRepo(&model.Transaction{OrderID: "ORDER-1", Status: model.StatusPending, GrossAmount: 150000})
	notifier := &fakeNotifier{}
	h := NewWebhookHandler(service.NewWebhookService(serverKey, txRepo, notifier))

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
	})

	sum := sha512.Sum512([]byte("ORDER-1" + "200" + "150000" + serverKey))
	rec := doJSON(t, router, http.MethodPost, "/api/webhooks/midtrans", map[string]interface{}{
		"order_id":           "ORDER-1",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"signature_key":      hex.EncodeToString(sum[:]),
		"transaction_status": "settlement",
		"payment_type":       "bank_transfer",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, []string{"ORDER-1"}, notifier.enqueued)
}
