package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"dayplanner/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns an AttemptRecordRepository backed by MongoDB.
func NewMongoRecordRepo(client *mongo.Client, dbName string) AttemptRecordRepository {
	return &mongoRecordRepo{
		coll: client.Database(dbName).Collection("attempt_records"),
	}
}

// EnsureIndexes creates the indexes used by the record queries.
func EnsureIndexes(ctx context.Context, repo AttemptRecordRepository) error {
	r, ok := repo.(*mongoRecordRepo)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("session_created_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create attempt record indexes: %w", err)
	}
	return nil
}

// Create inserts a new attempt record and returns its ID.
func (r *mongoRecordRepo) Create(ctx context.Context, record models.AttemptRecord) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *mongoRecordRepo) GetBySessionID(ctx context.Context, sessionID string, limit int) ([]models.AttemptRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(normalizeLimit(limit)))
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttemptRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
