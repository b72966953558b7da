package queue

import (
	"context"
	"fmt"

	"github.com/kebo-sukses/calius-digital/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("queue.ConnectRedis: %w", err)
	}
	fmt.Println("Successfully connected to Redis!")
	return rdb, nil
}

// NotificationQueue is the outbox delivery queue. Producers push
// notification ids, the worker pops them with BRPop.
type NotificationQueue struct {
	rdb  *redis.Client
	name string
}

func NewNotificationQueue(rdb *redis.Client, name string) *NotificationQueue {
	return &NotificationQueue{rdb: rdb, name: name}
}

func (q *NotificationQueue) Push(ctx context.Context, notificationID string) error {
	if err := q.rdb.LPush(ctx, q.name, notificationID).Err(); err != nil {
		return fmt.Errorf("NotificationQueue.Push: %w", err)
	}
	return nil
}
