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

type QAVersionRepository struct {
	col *mongo.Collection
}

func NewQAVersionRepository(db *mongo.Database) *QAVersionRepository {
	return &QAVersionRepository{col: db.Collection("qa_versions")}
}

// Insert writes the version as-is. The unique (project_id, version_number)
// index rejects duplicates; callers re-read the max and retry on conflict.
func (r *QAVersionRepository) Insert(ctx context.Context, v *models.QAVersion) error {
	v.ID = primitive.NewObjectID()
	v.CreatedAt = time.Now()
	_, err := r.col.InsertOne(ctx, v)
	return err
}

// MaxVersionNumber returns the highest version number stored for the project,
// or 0 when the project has none.
func (r *QAVersionRepository) MaxVersionNumber(ctx context.Context, projectID primitive.ObjectID) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version_number", Value: -1}})
	var v models.QAVersion
	err := r.col.FindOne(ctx, bson.M{"project_id": projectID}, opts).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v.VersionNumber, nil
}

func (r *QAVersionRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.QAVersion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version_number", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var versions []models.QAVersion
	if err := cur.All(ctx, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *QAVersionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.QAVersion, error) {
	var v models.QAVersion
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *QAVersionRepository) FindByNumber(ctx context.Context, projectID primitive.ObjectID, number int) (*models.QAVersion, error) {
	var v models.QAVersion
	err := r.col.FindOne(ctx, bson.M{"project_id": projectID, "version_number": number}).Decode(&v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateMeta changes the user-editable fields only. Diagnosis and the
// corrected script are immutable once written.
func (r *QAVersionRepository) UpdateMeta(ctx context.Context, id primitive.ObjectID, versionName, memo string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"version_name": versionName, "memo": memo}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *QAVersionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *QAVersionRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
