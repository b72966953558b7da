package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kebo-sukses/calius-digital/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shared mongo plumbing for the collection-backed repositories.

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	doc := new(T)
	err := coll.FindOne(ctx, filter).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find one %s: %w", coll.Name(), err)
	}
	return doc, nil
}

func isEmpty(ctx context.Context, coll *mongo.Collection) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n == 0, nil
}

// replaceByID applies full-document replace semantics: every field of doc is
// written over the stored document with the matching application id.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// seedIfAbsent inserts the default documents that are not in storage yet, so
// repeated seeding never duplicates.
func seedIfAbsent[T any](ctx context.Context, coll *mongo.Collection, docs []T, idOf func(T) string, stamp func(*T)) error {
	for _, d := range docs {
		n, err := coll.CountDocuments(ctx, bson.M{"id": idOf(d)})
		if err != nil {
			return fmt.Errorf("seed count %s: %w", coll.Name(), err)
		}
		if n > 0 {
			continue
		}
		if stamp != nil {
			stamp(&d)
		}
		if _, err := coll.InsertOne(ctx, d); err != nil {
			return fmt.Errorf("seed insert %s: %w", coll.Name(), err)
		}
	}
	return nil
}
