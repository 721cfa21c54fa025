package repository

import (
	"careerfit/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo is the submission sink for finished attempts
type ResultRepo interface {
	Save(ctx context.Context, result *model.AssessmentResult) error
	GetBySession(ctx context.Context, sessionID string) (*model.AssessmentResult, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error)
}

type resultRepo struct {
	results *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		results: db.Collection("assessment_results"),
	}
}

// Save upserts on (assessmentId, sessionId) so resubmits overwrite
func (r *resultRepo) Save(ctx context.Context, result *model.AssessmentResult) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"assessmentId": result.AssessmentID, "sessionId": result.SessionID}
	_, err := r.results.ReplaceOne(ctx, filter, result, opts)
	return err
}

func (r *resultRepo) GetBySession(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.results.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cursor, err := r.results.Find(ctx, bson.M{"assessmentId": assessmentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []*model.AssessmentResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
