package repository

import (
	"context"
	"fmt"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("mongoUserRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"username": username})
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"id": id})
}

func (r *mongoUserRepository) List(ctx context.Context) ([]model.User, error) {
	return findAll[model.User](ctx, r.coll, bson.M{})
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongoUserRepository.Count: %w", err)
	}
	return n, nil
}

func (r *mongoUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{bson.M{"username": username}, bson.M{"email": email}}}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("mongoUserRepository.ExistsByUsernameOrEmail: %w", err)
	}
	return n > 0, nil
}

// Update patches only the given fields; the dedicated user-update endpoint is
// the one place with partial-patch semantics.
func (r *mongoUserRepository) Update(ctx context.Context, id string, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("mongoUserRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
