package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error)
	SuccessRevenue(ctx context.Context) (int64, error)
	// UpdateStatus transitions the transaction and returns the pre-update
	// document, so callers can tell a genuine transition from a redelivery.
	UpdateStatus(ctx context.Context, orderID string, status model.TransactionStatus, rawStatus, paymentType string) (*model.Transaction, error)
}

type mongoTransactionRepository struct {
	coll *mongo.Collection
}

func NewMongoTransactionRepository(db *mongo.Database) TransactionRepository {
	return &mongoTransactionRepository{coll: db.Collection("transactions")}
}

func (r *mongoTransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	if _, err := r.coll.InsertOne(ctx, tx); err != nil {
		return fmt.Errorf("mongoTransactionRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoTransactionRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Transaction, error) {
	return findOne[model.Transaction](ctx, r.coll, bson.M{"order_id": orderID})
}

func (r *mongoTransactionRepository) List(ctx context.Context) ([]model.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findAll[model.Transaction](ctx, r.coll, bson.M{}, opts)
}

func (r *mongoTransactionRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongoTransactionRepository.Count: %w", err)
	}
	return n, nil
}

func (r *mongoTransactionRepository) CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("mongoTransactionRepository.CountByStatus: %w", err)
	}
	return n, nil
}

func (r *mongoTransactionRepository) SuccessRevenue(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": model.StatusSuccess}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$gross_amount"}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("mongoTransactionRepository.SuccessRevenue: %w", err)
	}
	defer cur.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("mongoTransactionRepository.SuccessRevenue decode: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *mongoTransactionRepository) UpdateStatus(ctx context.Context, orderID string, status model.TransactionStatus, rawStatus, paymentType string) (*model.Transaction, error) {
	update := bson.M{"$set": bson.M{
		"status":             status,
		"transaction_status": rawStatus,
		"payment_type":       paymentType,
		"updated_at":         time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	previous := &model.Transaction{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"order_id": orderID}, update, opts).Decode(previous)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoTransactionRepository.UpdateStatus: %w", err)
	}
	return previous, nil
}
