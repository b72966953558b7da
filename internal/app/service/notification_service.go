package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
	"github.com/kebo-sukses/calius-digital/internal/platform/mail"
	"github.com/kebo-sukses/calius-digital/internal/platform/queue"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo        repository.NotificationRepository
	txRepo      repository.TransactionRepository
	queue       *queue.NotificationQueue
	mailer      mail.Mailer
	adminEmail  string
	senderEmail string
	siteBaseURL string
}

func NewNotificationService(
	repo repository.NotificationRepository,
	txRepo repository.TransactionRepository,
	q *queue.NotificationQueue,
	mailer mail.Mailer,
	adminEmail, senderEmail, siteBaseURL string,
) *NotificationService {
	return &NotificationService{
		repo:        repo,
		txRepo:      txRepo,
		queue:       q,
		mailer:      mailer,
		adminEmail:  adminEmail,
		senderEmail: senderEmail,
		siteBaseURL: siteBaseURL,
	}
}

// EnqueueOrderNotifications writes the outbox rows for a paid order and hands
// their ids to the delivery queue. A failed push is only logged: the row is
// already persisted as pending and gets re-enqueued at startup.
func (s *NotificationService) EnqueueOrderNotifications(ctx context.Context, orderID string) error {
	kinds := []model.NotificationKind{model.NotificationAdminNotice, model.NotificationCustomerReceipt}
	for _, kind := range kinds {
		n := &model.Notification{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			Kind:      kind,
			Status:    model.NotificationPending,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, n); err != nil {
			return fmt.Errorf("failed to create %s notification: %w", kind, err)
		}
		if err := s.queue.Push(ctx, n.ID); err != nil {
			log.Printf("WARN: failed to push notification %s to queue: %v", n.ID, err)
		}
	}
	return nil
}

// RequeuePending pushes every still-pending outbox row back onto the queue.
// Called once at startup so rows stranded by a crash are delivered.
func (s *NotificationService) RequeuePending(ctx context.Context) (int, error) {
	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	requeued := 0
	for _, n := range pending {
		if err := s.queue.Push(ctx, n.ID); err != nil {
			log.Printf("WARN: failed to requeue notification %s: %v", n.ID, err)
			continue
		}
		requeued++
	}
	return requeued, nil
}

// Enabled reports whether email delivery is configured at all. The worker
// checks it before loading a record, so an unconfigured mailer leaves rows
// pending instead of marching them to failed.
func (s *NotificationService) Enabled() bool {
	return s.mailer != nil
}

// Deliver renders and sends one notification email. Bookkeeping (marking
// sent or failed, retries) belongs to the worker.
func (s *NotificationService) Deliver(ctx context.Context, n *model.Notification) error {
	if s.mailer == nil {
		return fmt.Errorf("mailer is not configured")
	}

	tx, err := s.txRepo.FindByOrderID(ctx, n.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", n.OrderID, err)
	}

	var to []string
	var subject, html string
	switch n.Kind {
	case model.NotificationAdminNotice:
		to = []string{s.adminEmail}
		subject = fmt.Sprintf("Pembayaran Berhasil - %s", tx.OrderID)
		html, err = renderEmail(adminNoticeTmpl, s.emailData(tx))
	case model.NotificationCustomerReceipt:
		to = []string{tx.CustomerEmail}
		subject = fmt.Sprintf("Terima Kasih! Pembayaran %s Berhasil", tx.OrderID)
		html, err = renderEmail(customerReceiptTmpl, s.emailData(tx))
	default:
		return fmt.Errorf("unknown notification kind %q", n.Kind)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s email: %w", n.Kind, err)
	}

	from := fmt.Sprintf("Calius Digital <%s>", s.senderEmail)
	msgID, err := s.mailer.Send(ctx, from, to, subject, html)
	if err != nil {
		return err
	}
	log.Printf("INFO: sent %s for order %s (message %s)", n.Kind, tx.OrderID, msgID)
	return nil
}

type emailItem struct {
	Name     string
	Quantity int32
	Price    string
}

type emailData struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	GrossAmount   string
	PaymentType   string
	PaidAt        string
	Items         []emailItem
	SiteBaseURL   string
}

func (s *NotificationService) emailData(tx *model.Transaction) emailData {
	items := make([]emailItem, 0, len(tx.Items))
	for _, it := range tx.Items {
		items = append(items, emailItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    formatRupiah(it.Price * int64(it.Quantity)),
		})
	}
	paidAt := tx.UpdatedAt
	if paidAt.IsZero() {
		paidAt = tx.CreatedAt
	}
	return emailData{
		OrderID:       tx.OrderID,
		CustomerName:  tx.CustomerName,
		CustomerEmail: tx.CustomerEmail,
		CustomerPhone: tx.CustomerPhone,
		GrossAmount:   formatRupiah(tx.GrossAmount),
		PaymentType:   tx.PaymentType,
		PaidAt:        paidAt.Format("02 Jan 2006 15:04 MST"),
		Items:         items,
		SiteBaseURL:   s.siteBaseURL,
	}
}

func renderEmail(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatRupiah renders whole rupiah with dot thousand separators, e.g.
// 1500000 -> "Rp 1.500.000".
func formatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	var buf bytes.Buffer
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			buf.WriteByte('.')
		}
		buf.WriteRune(r)
	}
	return "Rp " + buf.String()
}

var adminNoticeTmpl = template.Must(template.New("admin_notice").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981;">💰 Pembayaran Berhasil</h2>
  <p>Pesanan <strong>{{.OrderID}}</strong> telah dibayar.</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 6px 0; color: #666;">Pelanggan</td><td style="padding: 6px 0;">{{.CustomerName}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Email</td><td style="padding: 6px 0;">{{.CustomerEmail}}</td></tr>
    {{if .CustomerPhone}}<tr><td style="padding: 6px 0; color: #666;">Telepon</td><td style="padding: 6px 0;">{{.CustomerPhone}}</td></tr>{{end}}
    {{if .PaymentType}}<tr><td style="padding: 6px 0; color: #666;">Metode</td><td style="padding: 6px 0;">{{.PaymentType}}</td></tr>{{end}}
    <tr><td style="padding: 6px 0; color: #666;">Waktu</td><td style="padding: 6px 0;">{{.PaidAt}}</td></tr>
  </table>
  <h3>Item</h3>
  <table style="width: 100%; border-collapse: collapse;">
    {{range .Items}}
    <tr style="border-bottom: 1px solid #eee;">
      <td style="padding: 8px 0;">{{.Name}} x{{.Quantity}}</td>
      <td style="padding: 8px 0; text-align: right;">{{.Price}}</td>
    </tr>
    {{end}}
    <tr>
      <td style="padding: 8px 0; font-weight: bold;">Total</td>
      <td style="padding: 8px 0; text-align: right; font-weight: bold;">{{.GrossAmount}}</td>
    </tr>
  </table>
</div>
`))

var customerReceiptTmpl = template.Must(template.New("customer_receipt").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981;">Terima Kasih, {{.CustomerName}}! 🎉</h2>
  <p>Pembayaran Anda untuk pesanan <strong>{{.OrderID}}</strong> telah kami terima.</p>
  <table style="width: 100%; border-collapse: collapse; background: #f9fafb; border-radius: 8px;">
    {{range .Items}}
    <tr style="border-bottom: 1px solid #eee;">
      <td style="padding: 10px;">{{.Name}} x{{.Quantity}}</td>
      <td style="padding: 10px; text-align: right;">{{.Price}}</td>
    </tr>
    {{end}}
    <tr>
      <td style="padding: 10px; font-weight: bold;">Total Dibayar</td>
      <td style="padding: 10px; text-align: right; font-weight: bold;">{{.GrossAmount}}</td>
    </tr>
  </table>
  <p>Tim kami akan segera memproses pesanan Anda. Jika ada pertanyaan, balas email ini.</p>
  <p style="color: #666; font-size: 13px;">Calius Digital · <a href="{{.SiteBaseURL}}">{{.SiteBaseURL}}</a></p>
</div>
`))
