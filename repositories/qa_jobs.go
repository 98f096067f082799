package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"photoscript/models"
)

type QAJobRepository struct {
	col *mongo.Collection
}

func NewQAJobRepository(db *mongo.Database) *QAJobRepository {
	return &QAJobRepository{col: db.Collection("qa_jobs")}
}

func (r *QAJobRepository) Insert(ctx context.Context, job *models.QAJob) error {
	job.ID = primitive.NewObjectID()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	_, err := r.col.InsertOne(ctx, job)
	return err
}

func (r *QAJobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.QAJob, error) {
	var job models.QAJob
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// MarkRunning transitions queued -> running. Returns false when the job was
// already claimed or is no longer queued, so a redelivered event is a no-op.
func (r *QAJobRepository) MarkRunning(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.JobQueued},
		bson.M{"$set": bson.M{"status": models.JobRunning, "updated_at": time.Now()}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *QAJobRepository) SetProgress(ctx context.Context, id primitive.ObjectID, progress int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.JobRunning},
		bson.M{"$set": bson.M{"progress": progress, "updated_at": time.Now()}})
	return err
}

func (r *QAJobRepository) Complete(ctx context.Context, id primitive.ObjectID, result *models.QAResult, versionID primitive.ObjectID) error {
	now := time.Now()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":       models.JobCompleted,
			"progress":     100,
			"result":       result,
			"version_id":   versionID,
			"updated_at":   now,
			"completed_at": now,
		}})
	return err
}

func (r *QAJobRepository) Fail(ctx context.Context, id primitive.ObjectID, errMsg string) error {
	now := time.Now()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":        models.JobFailed,
			"error_message": errMsg,
			"updated_at":    now,
			"completed_at":  now,
		}})
	return err
}

// HasActive reports whether the project already has a queued or running job.
func (r *QAJobRepository) HasActive(ctx context.Context, projectID primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"project_id": projectID,
		"status":     bson.M{"$in": []models.QAJobStatus{models.JobQueued, models.JobRunning}},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *QAJobRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.QAJob, error) {
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.QAJob
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *QAJobRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
