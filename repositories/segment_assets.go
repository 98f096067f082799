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

type SegmentAssetRepository struct {
	col *mongo.Collection
}

func NewSegmentAssetRepository(db *mongo.Database) *SegmentAssetRepository {
	return &SegmentAssetRepository{col: db.Collection("segment_assets")}
}

func (r *SegmentAssetRepository) Insert(ctx context.Context, link *models.SegmentAsset) error {
	link.ID = primitive.NewObjectID()
	link.CreatedAt = time.Now()
	_, err := r.col.InsertOne(ctx, link)
	return err
}

func (r *SegmentAssetRepository) InsertMany(ctx context.Context, links []models.SegmentAsset) error {
	if len(links) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(links))
	for i := range links {
		links[i].ID = primitive.NewObjectID()
		links[i].CreatedAt = now
		docs = append(docs, links[i])
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// ListBySegment returns candidate links ordered best-first.
func (r *SegmentAssetRepository) ListBySegment(ctx context.Context, segmentID primitive.ObjectID) ([]models.SegmentAsset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"segment_id": segmentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var links []models.SegmentAsset
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *SegmentAssetRepository) FindBySegmentAndAsset(ctx context.Context, segmentID, assetID primitive.ObjectID) (*models.SegmentAsset, error) {
	var link models.SegmentAsset
	err := r.col.FindOne(ctx, bson.M{"segment_id": segmentID, "asset_id": assetID}).Decode(&link)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *SegmentAssetRepository) FindPrimary(ctx context.Context, segmentID primitive.ObjectID) (*models.SegmentAsset, error) {
	var link models.SegmentAsset
	err := r.col.FindOne(ctx, bson.M{"segment_id": segmentID, "is_primary": true}).Decode(&link)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DemotePrimary clears is_primary on every link of the segment. Run before
// SetPrimary so the partial unique index never sees two primaries.
func (r *SegmentAssetRepository) DemotePrimary(ctx context.Context, segmentID primitive.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"segment_id": segmentID, "is_primary": true},
		bson.M{"$set": bson.M{"is_primary": false}})
	return err
}

func (r *SegmentAssetRepository) SetPrimary(ctx context.Context, linkID primitive.ObjectID, chosenBy models.ChosenBy) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": linkID},
		bson.M{"$set": bson.M{"is_primary": true, "chosen_by": chosenBy}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SegmentAssetRepository) DeleteBySegment(ctx context.Context, segmentID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"segment_id": segmentID})
	return err
}

func (r *SegmentAssetRepository) DeleteBySegments(ctx context.Context, segmentIDs []primitive.ObjectID) error {
	if len(segmentIDs) == 0 {
		return nil
	}
	_, err := r.col.DeleteMany(ctx, bson.M{"segment_id": bson.M{"$in": segmentIDs}})
	return err
}
