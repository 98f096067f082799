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

type SegmentRepository struct {
	col *mongo.Collection
}

func NewSegmentRepository(db *mongo.Database) *SegmentRepository {
	return &SegmentRepository{col: db.Collection("segments")}
}

func (r *SegmentRepository) Insert(ctx context.Context, s *models.Segment) (*models.Segment, error) {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Keywords == nil {
		s.Keywords = []string{}
	}

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return s, nil
}

func (r *SegmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	var s models.Segment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByProject returns the project's segments in order-ascending position.
func (r *SegmentRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Segment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Segment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NextAfter returns the segment with the smallest order greater than the given
// order, or nil when the segment is last.
func (r *SegmentRepository) NextAfter(ctx context.Context, projectID primitive.ObjectID, order float64) (*models.Segment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: 1}})
	var s models.Segment
	err := r.col.FindOne(ctx, bson.M{"project_id": projectID, "order": bson.M{"$gt": order}}, opts).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SegmentRepository) UpdateText(ctx context.Context, id primitive.ObjectID, text string, status models.SegmentStatus) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"text": text, "status": status, "updated_at": time.Now()},
	})
	return err
}

func (r *SegmentRepository) UpdateKeywords(ctx context.Context, id primitive.ObjectID, kws []string, status models.SegmentStatus) error {
	if kws == nil {
		kws = []string{}
	}
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"keywords": kws, "status": status, "updated_at": time.Now()},
	})
	return err
}

func (r *SegmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SegmentStatus) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	return err
}

// UpdateOrder rewrites only the segment's own order value.
func (r *SegmentRepository) UpdateOrder(ctx context.Context, id primitive.ObjectID, order float64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"order": order, "updated_at": time.Now()},
	})
	return err
}

func (r *SegmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *SegmentRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (r *SegmentRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
