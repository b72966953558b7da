package repository

import (
	"context"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByID(ctx context.Context, id string) (*model.Notification, error)
	ListPending(ctx context.Context) ([]model.Notification, error)
	MarkSent(ctx context.Context, id string) error
	MarkAttemptFailed(ctx context.Context, id string, attempts int, lastError string, terminal bool) error
}

type mongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) NotificationRepository {
	return &mongoNotificationRepository{coll: db.Collection("notifications")}
}

func (r *mongoNotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return common.Errorf("mongoNotificationRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoNotificationRepository) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	return findOne[model.Notification](ctx, r.coll, bson.M{"id": id})
}

func (r *mongoNotificationRepository) ListPending(ctx context.Context) ([]model.Notification, error) {
	return findAll[model.Notification](ctx, r.coll, bson.M{"status": model.NotificationPending})
}

func (r *mongoNotificationRepository) MarkSent(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":  model.NotificationSent,
		"sent_at": time.Now().UTC(),
	}})
	if err != nil {
		return common.Errorf("mongoNotificationRepository.MarkSent: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoNotificationRepository) MarkAttemptFailed(ctx context.Context, id string, attempts int, lastError string, terminal bool) error {
	status := model.NotificationPending
	if terminal {
		status = model.NotificationFailed
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"attempts":   attempts,
		"last_error": lastError,
	}})
	if err != nil {
		return common.Errorf("mongoNotificationRepository.MarkAttemptFailed: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
