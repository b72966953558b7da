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
)

type TemplateRepository interface {
	List(ctx context.Context, category string) ([]model.Template, error)
	FindBySlug(ctx context.Context, slug string) (*model.Template, error)
	Create(ctx context.Context, t *model.Template) error
	Update(ctx context.Context, id string, t *model.Template) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoTemplateRepository struct {
	coll *mongo.Collection
}

func NewMongoTemplateRepository(db *mongo.Database) TemplateRepository {
	return &mongoTemplateRepository{coll: db.Collection("templates")}
}

func categoryFilter(category string) bson.M {
	filter := bson.M{}
	if category != "" && category != "all" {
		filter["category"] = category
	}
	return filter
}

func (r *mongoTemplateRepository) List(ctx context.Context, category string) ([]model.Template, error) {
	items, err := findAll[model.Template](ctx, r.coll, categoryFilter(category))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		empty, err := isEmpty(ctx, r.coll)
		if err != nil {
			return nil, err
		}
		if empty {
			out := []model.Template{}
			for _, d := range defaults.Templates() {
				if category == "" || category == "all" || d.Category == category {
					out = append(out, d)
				}
			}
			return out, nil
		}
	}
	return items, nil
}

func (r *mongoTemplateRepository) FindBySlug(ctx context.Context, slug string) (*model.Template, error) {
	t, err := findOne[model.Template](ctx, r.coll, bson.M{"slug": slug})
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	for _, d := range defaults.Templates() {
		if d.Slug == slug {
			// A hit against the default set seeds storage so later writes
			// have real documents to target.
			if err := seedIfAbsent(ctx, r.coll, defaults.Templates(), func(t model.Template) string { return t.ID }, func(t *model.Template) {
				t.CreatedAt = time.Now().UTC()
			}); err != nil {
				return nil, err
			}
			return &d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *mongoTemplateRepository) Create(ctx context.Context, t *model.Template) error {
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return common.Errorf("mongoTemplateRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoTemplateRepository) Update(ctx context.Context, id string, t *model.Template) error {
	t.ID = id
	return replaceByID(ctx, r.coll, id, t)
}

func (r *mongoTemplateRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *mongoTemplateRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, common.Errorf("mongoTemplateRepository.Count: %w", err)
	}
	return n, nil
}
