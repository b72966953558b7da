package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
	"github.com/kebo-sukses/calius-digital/internal/platform/queue"

	"github.com/redis/go-redis/v9"
)

const maxDeliveryAttempts = 3

// NotificationWorker drains the outbox delivery queue. One goroutine is
// enough: email volume is one order at a time and Resend rate-limits anyway.
type NotificationWorker struct {
	rdb           *redis.Client
	queueName     string
	repo          repository.NotificationRepository
	queue         *queue.NotificationQueue
	notifications *service.NotificationService
}

func NewNotificationWorker(
	rdb *redis.Client,
	queueName string,
	repo repository.NotificationRepository,
	q *queue.NotificationQueue,
	notifications *service.NotificationService,
) *NotificationWorker {
	return &NotificationWorker{rdb: rdb, queueName: queueName, repo: repo, queue: q, notifications: notifications}
}

// Start blocks until ctx is cancelled. Run it in its own goroutine.
func (w *NotificationWorker) Start(ctx context.Context) {
	log.Println("INFO: Notification worker started. Waiting for jobs...")

	// Re-enqueue rows a previous process left pending.
	if requeued, err := w.notifications.RequeuePending(ctx); err != nil {
		log.Printf("ERROR: failed to requeue pending notifications: %v", err)
	} else if requeued > 0 {
		log.Printf("INFO: requeued %d pending notifications", requeued)
	}

	for {
		result, err := w.rdb.BRPop(ctx, 5*time.Second, w.queueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				log.Println("INFO: Notification worker shutting down.")
				return
			}
			log.Printf("ERROR: failed to pop from queue: %v", err)
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [queueName, value].
		w.process(ctx, result[1])
	}
}

func (w *NotificationWorker) process(ctx context.Context, notificationID string) {
	if !w.notifications.Enabled() {
		log.Printf("WARN: mailer not configured, leaving notification %s pending", notificationID)
		return
	}

	n, err := w.repo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Printf("WARN: notification %s no longer exists, dropping job", notificationID)
			return
		}
		log.Printf("ERROR: failed to load notification %s: %v", notificationID, err)
		return
	}
	if n.Status != model.NotificationPending {
		log.Printf("INFO: notification %s already %s, skipping", n.ID, n.Status)
		return
	}

	if err := w.notifications.Deliver(ctx, n); err != nil {
		attempts := n.Attempts + 1
		terminal := attempts >= maxDeliveryAttempts
		log.Printf("WARN: delivery attempt %d for notification %s failed: %v", attempts, n.ID, err)

		if markErr := w.repo.MarkAttemptFailed(ctx, n.ID, attempts, err.Error(), terminal); markErr != nil {
			log.Printf("ERROR: failed to record delivery failure for %s: %v", n.ID, markErr)
			return
		}
		if terminal {
			log.Printf("ERROR: notification %s failed permanently after %d attempts", n.ID, attempts)
			return
		}
		if pushErr := w.queue.Push(ctx, n.ID); pushErr != nil {
			log.Printf("ERROR: failed to requeue notification %s: %v", n.ID, pushErr)
		}
		return
	}

	if err := w.repo.MarkSent(ctx, n.ID); err != nil {
		log.Printf("ERROR: failed to mark notification %s sent: %v", n.ID, err)
	}
}
