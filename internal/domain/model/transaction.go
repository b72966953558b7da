package model

import "time"

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusSuccess   TransactionStatus = "success"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
	StatusExpired   TransactionStatus = "expired"
	StatusUnknown   TransactionStatus = "unknown"
)

// StatusFromGateway maps Midtrans' transaction_status vocabulary onto the
// internal status set.
func StatusFromGateway(transactionStatus string) TransactionStatus {
	switch transactionStatus {
	case "settlement", "capture":
		return StatusSuccess
	case "pending":
		return StatusPending
	case "deny":
		return StatusFailed
	case "cancel":
		return StatusCancelled
	case "expire":
		return StatusExpired
	}
	return StatusUnknown
}

type TransactionItem struct {
	ID       string `bson:"id,omitempty" json:"id,omitempty"`
	Name     string `bson:"name" json:"name"`
	Price    int64  `bson:"price" json:"price"`
	Quantity int32  `bson:"quantity" json:"quantity"`
}

// Transaction is one checkout attempt. Created pending when a Snap token is
// requested; only the webhook handler moves its status afterwards. Never
// deleted.
type Transaction struct {
	OrderID           string            `bson:"order_id" json:"order_id"`
	GrossAmount       int64             `bson:"gross_amount" json:"gross_amount"`
	CustomerEmail     string            `bson:"customer_email" json:"customer_email"`
	CustomerName      string            `bson:"customer_name" json:"customer_name"`
	CustomerPhone     string            `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	SnapToken         string            `bson:"snap_token" json:"snap_token"`
	Status            TransactionStatus `bson:"status" json:"status"`
	TransactionStatus string            `bson:"transaction_status,omitempty" json:"transaction_status,omitempty"` // raw gateway status
	PaymentType       string            `bson:"payment_type,omitempty" json:"payment_type,omitempty"`
	Items             []TransactionItem `bson:"item_details" json:"item_details"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
