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

type BlogRepository interface {
	List(ctx context.Context, category string, limit int64) ([]model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Create(ctx context.Context, p *model.BlogPost) error
	Update(ctx context.Context, id string, p *model.BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoBlogRepository struct {
	coll *mongo.Collection
}

func NewMongoBlogRepository(db *mongo.Database) BlogRepository {
	return &mongoBlogRepository{coll: db.Collection("blog")}
}

func (r *mongoBlogRepository) List(ctx context.Context, category string, limit int64) ([]model.BlogPost, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}}).SetLimit(limit)
	posts, err := findAll[model.BlogPost](ctx, r.coll, categoryFilter(category), opts)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		empty, err := isEmpty(ctx, r.coll)
		if err != nil {
			return nil, err
		}
		if empty {
			out := []model.BlogPost{}
			for _, d := range defaults.BlogPosts() {
				if category == "" || category == "all" || d.Category == category {
					out = append(out, d)
				}
			}
			return out, nil
		}
	}
	return posts, nil
}

func (r *mongoBlogRepository) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	p, err := findOne[model.BlogPost](ctx, r.coll, bson.M{"slug": slug})
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	for _, d := range defaults.BlogPosts() {
		if d.Slug == slug {
			if err := seedIfAbsent(ctx, r.coll, defaults.BlogPosts(), func(p model.BlogPost) string { return p.ID }, func(p *model.BlogPost) {
				p.CreatedAt = time.Now().UTC()
			}); err != nil {
				return nil, err
			}
			return &d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *mongoBlogRepository) Create(ctx context.Context, p *model.BlogPost) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return common.Errorf("mongoBlogRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoBlogRepository) Update(ctx context.Context, id string, p *model.BlogPost) error {
	p.ID = id
	return replaceByID(ctx, r.coll, id, p)
}

func (r *mongoBlogRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *mongoBlogRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, common.Errorf("mongoBlogRepository.Count: %w", err)
	}
	return n, nil
}
