package repository

import (
	"context"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/defaults"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TestimonialRepository interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, id string, t *model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type mongoTestimonialRepository struct {
	coll *mongo.Collection
}

func NewMongoTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return &mongoTestimonialRepository{coll: db.Collection("testimonials")}
}

func (r *mongoTestimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	items, err := findAll[model.Testimonial](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return defaults.Testimonials(), nil
	}
	return items, nil
}

func (r *mongoTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return common.Errorf("mongoTestimonialRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoTestimonialRepository) Update(ctx context.Context, id string, t *model.Testimonial) error {
	t.ID = id
	return replaceByID(ctx, r.coll, id, t)
}

func (r *mongoTestimonialRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
