package repository

import (
	"context"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/defaults"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PricingRepository interface {
	List(ctx context.Context) ([]model.PricingPackage, error)
	Create(ctx context.Context, p *model.PricingPackage) error
	Update(ctx context.Context, id string, p *model.PricingPackage) error
	Delete(ctx context.Context, id string) error
}

type mongoPricingRepository struct {
	coll *mongo.Collection
}

func NewMongoPricingRepository(db *mongo.Database) PricingRepository {
	return &mongoPricingRepository{coll: db.Collection("pricing")}
}

func (r *mongoPricingRepository) List(ctx context.Context) ([]model.PricingPackage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	items, err := findAll[model.PricingPackage](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return defaults.Pricing(), nil
	}
	return items, nil
}

func (r *mongoPricingRepository) Create(ctx context.Context, p *model.PricingPackage) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return common.Errorf("mongoPricingRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoPricingRepository) Update(ctx context.Context, id string, p *model.PricingPackage) error {
	p.ID = id
	return replaceByID(ctx, r.coll, id, p)
}

func (r *mongoPricingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
