package payment

import (
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// SnapGateway creates hosted-checkout transactions against Midtrans Snap.
// It exists as an interface so the payment service can be tested without
// hitting the gateway.
type SnapGateway interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type snapClient struct {
	client snap.Client
}

func NewSnapClient(serverKey string, isProduction bool) SnapGateway {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}
	c := snap.Client{}
	c.New(serverKey, env)
	return &snapClient{client: c}
}

func (s *snapClient) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	return s.client.CreateTransaction(req)
}
