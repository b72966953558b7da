package repository

import (
	"context"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository interface {
	Create(ctx context.Context, c *model.ContactMessage) error
	List(ctx context.Context) ([]model.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type mongoContactRepository struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepository{coll: db.Collection("contacts")}
}

func (r *mongoContactRepository) Create(ctx context.Context, c *model.ContactMessage) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return common.Errorf("mongoContactRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findAll[model.ContactMessage](ctx, r.coll, bson.M{}, opts)
}

func (r *mongoContactRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_read": true, "status": "read"}})
	if err != nil {
		return common.Errorf("mongoContactRepository.MarkRead: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *mongoContactRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, common.Errorf("mongoContactRepository.Count: %w", err)
	}
	return n, nil
}

func (r *mongoContactRepository) CountUnread(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"is_read": false})
	if err != nil {
		return 0, common.Errorf("mongoContactRepository.CountUnread: %w", err)
	}
	return n, nil
}
