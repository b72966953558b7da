package model

import "time"

type NotificationKind string

const (
	NotificationAdminNotice     NotificationKind = "admin_notice"
	NotificationCustomerReceipt NotificationKind = "customer_receipt"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is an outbox row. It is written in the same request that
// commits a payment status change, then delivered by the worker, so a
// process restart cannot lose a queued email.
type Notification struct {
	ID        string             `bson:"id" json:"id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	Kind      NotificationKind   `bson:"kind" json:"kind"`
	Status    NotificationStatus `bson:"status" json:"status"`
	Attempts  int                `bson:"attempts" json:"attempts"`
	LastError string             `bson:"last_error,omitempty" json:"last_error,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	SentAt    time.Time          `bson:"sent_at,omitempty" json:"sent_at,omitempty"`
}
