package repository

import (
	"context"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/defaults"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PortfolioRepository interface {
	List(ctx context.Context, category string) ([]model.PortfolioItem, error)
	Create(ctx context.Context, p *model.PortfolioItem) error
	Update(ctx context.Context, id string, p *model.PortfolioItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoPortfolioRepository struct {
	coll *mongo.Collection
}

func NewMongoPortfolioRepository(db *mongo.Database) PortfolioRepository {
	return &mongoPortfolioRepository{coll: db.Collection("portfolio")}
}

func (r *mongoPortfolioRepository) List(ctx context.Context, category string) ([]model.PortfolioItem, error) {
	items, err := findAll[model.PortfolioItem](ctx, r.coll, categoryFilter(category))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		empty, err := isEmpty(ctx, r.coll)
		if err != nil {
			return nil, err
		}
		if empty {
			out := []model.PortfolioItem{}
			for _, d := range defaults.Portfolio() {
				if category == "" || category == "all" || d.Category == category {
					out = append(out, d)
				}
			}
			return out, nil
		}
	}
	return items, nil
}

func (r *mongoPortfolioRepository) Create(ctx context.Context, p *model.PortfolioItem) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return common.Errorf("mongoPortfolioRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoPortfolioRepository) Update(ctx context.Context, id string, p *model.PortfolioItem) error {
	p.ID = id
	return replaceByID(ctx, r.coll, id, p)
}

func (r *mongoPortfolioRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *mongoPortfolioRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, common.Errorf("mongoPortfolioRepository.Count: %w", err)
	}
	return n, nil
}
