package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photoscript/models"
)

type AssetRepository struct {
	col *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{col: db.Collection("assets")}
}

// GetOrCreate upserts an asset keyed by (provider, source_url) and returns the
// stored document. Existing assets are immutable: only $setOnInsert fields are
// written, so a concurrent upsert of the same URL cannot modify the cache.
func (r *AssetRepository) GetOrCreate(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	filter := bson.M{"provider": a.Provider, "source_url": a.SourceURL}
	update := bson.M{
		"$setOnInsert": bson.M{
			"provider":      a.Provider,
			"asset_type":    a.AssetType,
			"source_url":    a.SourceURL,
			"thumbnail_url": a.ThumbnailURL,
			"title":         a.Title,
			"license":       a.License,
			"meta":          a.Meta,
			"created_at":    time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Asset
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error) {
	var a models.Asset
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByIDs returns assets keyed by id for join-style lookups.
func (r *AssetRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Asset, error) {
	out := make(map[primitive.ObjectID]models.Asset, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var assets []models.Asset
	if err := cur.All(ctx, &assets); err != nil {
		return nil, err
	}
	for _, a := range assets {
		out[a.ID] = a
	}
	return out, nil
}
