package repository

import (
	"context"
	"errors"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const siteSettingsID = "site_settings"

type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Upsert(ctx context.Context, s *model.SiteSettings) error
}

type mongoSettingsRepository struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepository(db *mongo.Database) SettingsRepository {
	return &mongoSettingsRepository{coll: db.Collection("site_settings")}
}

// Get returns the defaults when the singleton document has never been saved.
func (r *mongoSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings := &model.SiteSettings{}
	err := r.coll.FindOne(ctx, bson.M{"_id": siteSettingsID}).Decode(settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			def := model.DefaultSiteSettings()
			return &def, nil
		}
		return nil, common.Errorf("mongoSettingsRepository.Get: %w", err)
	}
	return settings, nil
}

func (r *mongoSettingsRepository) Upsert(ctx context.Context, s *model.SiteSettings) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": siteSettingsID}, bson.M{"$set": s}, opts)
	if err != nil {
		return common.Errorf("mongoSettingsRepository.Upsert: %w", err)
	}
	return nil
}
