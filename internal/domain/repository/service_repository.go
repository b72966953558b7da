package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/defaults"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]model.Service, error)
	FindBySlug(ctx context.Context, slug string) (*model.Service, error)
	Create(ctx context.Context, s *model.Service) error
	Update(ctx context.Context, id string, s *model.Service) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) (int, error)
}

type mongoServiceRepository struct {
	coll *mongo.Collection
}

func NewMongoServiceRepository(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepository{coll: db.Collection("services")}
}

func (r *mongoServiceRepository) stampNow(s *model.Service) {
	s.CreatedAt = time.Now().UTC()
}

func (r *mongoServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	items, err := findAll[model.Service](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// Services seed on first public list; the site navigation depends
		// on them existing as real documents.
		if err := seedIfAbsent(ctx, r.coll, defaults.Services(), serviceID, r.stampNow); err != nil {
			return nil, err
		}
		return defaults.Services(), nil
	}
	return items, nil
}

func serviceID(s model.Service) string { return s.ID }

func (r *mongoServiceRepository) FindBySlug(ctx context.Context, slug string) (*model.Service, error) {
	s, err := findOne[model.Service](ctx, r.coll, bson.M{"slug": slug})
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	for _, d := range defaults.Services() {
		if d.Slug == slug {
			if err := seedIfAbsent(ctx, r.coll, defaults.Services(), serviceID, r.stampNow); err != nil {
				return nil, err
			}
			return &d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *mongoServiceRepository) Create(ctx context.Context, s *model.Service) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return common.Errorf("mongoServiceRepository.Create: %w", err)
	}
	return nil
}

// Update upserts so that a default service edited before first seed still
// lands in storage under its known id.
func (r *mongoServiceRepository) Update(ctx context.Context, id string, s *model.Service) error {
	s.ID = id
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": s}, opts); err != nil {
		return common.Errorf("mongoServiceRepository.Update: %w", err)
	}
	return nil
}

func (r *mongoServiceRepository) Delete(ctx context.Context, id string) error {
	// Deleting a default entry only works once defaults are materialized.
	empty, err := isEmpty(ctx, r.coll)
	if err != nil {
		return err
	}
	if empty {
		if err := seedIfAbsent(ctx, r.coll, defaults.Services(), serviceID, r.stampNow); err != nil {
			return err
		}
	}
	return deleteByID(ctx, r.coll, id)
}

func (r *mongoServiceRepository) Reset(ctx context.Context) (int, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, common.Errorf("mongoServiceRepository.Reset: %w", err)
	}
	seeded := defaults.Services()
	if err := seedIfAbsent(ctx, r.coll, seeded, serviceID, r.stampNow); err != nil {
		return 0, err
	}
	return len(seeded), nil
}
