package service

import (
	"context"
	"testing"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	lastRequest *snap.Request
	err         *midtrans.Error
}

func (g *fakeGateway) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	g.lastRequest = req
	if g.err != nil {
		return nil, g.err
	}
	return &snap.Response{Token: "snap-token-123", RedirectURL: "https://app.sandbox.midtrans.com/snap/v3/redirection/snap-token-123"}, nil
}

func checkoutRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		Items: []CheckoutItem{
			{ID: "tpl-1", Name: "Landing Page Template", Price: 150000, Quantity: 1},
			{ID: "tpl-2", Name: "Company Profile", Price: 250000, Quantity: 2},
		},
	}
}

func TestCreateCheckoutRecordsPendingTransaction(t *testing.T) {
	gateway := &fakeGateway{}
	txRepo := newFakeTxRepo()
	svc := NewPaymentService(gateway, txRepo)

	resp, err := svc.CreateCheckout(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "snap-token-123", resp.Token)
	assert.NotEmpty(t, resp.OrderID)
	assert.NotEmpty(t, resp.RedirectURL)

	require.NotNil(t, gateway.lastRequest)
	assert.Equal(t, int64(650000), gateway.lastRequest.TransactionDetails.GrossAmt)
	assert.Equal(t, resp.OrderID, gateway.lastRequest.TransactionDetails.OrderID)

	tx, err := txRepo.FindByOrderID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, tx.Status)
	assert.Equal(t, int64(650000), tx.GrossAmount)
	assert.Equal(t, "snap-token-123", tx.SnapToken)
	assert.Len(t, tx.Items, 2)
}

func TestCreateCheckoutFailsWithoutGateway(t *testing.T) {
	svc := NewPaymentService(nil, newFakeTxRepo())

	_, err := svc.CreateCheckout(context.Background(), checkoutRequest())
	assert.ErrorIs(t, err, common.ErrMisconfigured)
}

func TestCreateCheckoutSurfacesGatewayRejection(t *testing.T) {
	gateway := &fakeGateway{err: &midtrans.Error{Message: "transaction_details.gross_amount is invalid"}}
	txRepo := newFakeTxRepo()
	svc := NewPaymentService(gateway, txRepo)

	_, err := svc.CreateCheckout(context.Background(), checkoutRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.Contains(t, err.Error(), "gross_amount is invalid")
	assert.Empty(t, txRepo.transactions)
}

func TestCreateCheckoutValidatesInput(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, newFakeTxRepo())

	req := checkoutRequest()
	req.CustomerEmail = ""
	_, err := svc.CreateCheckout(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrValidation)

	req = checkoutRequest()
	req.Items = nil
	_, err = svc.CreateCheckout(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrValidation)

	req = checkoutRequest()
	req.Items[0].Price = -1
	_, err = svc.CreateCheckout(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrValidation)
}
