package repository

import (
	"careerfit/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnswerRepo archives the frozen answers of finished attempts
type AnswerRepo interface {
	SaveSheet(ctx context.Context, sheet *model.AnswerSheet) error
	GetBySession(ctx context.Context, sessionID string) (*model.AnswerSheet, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answer_sheets"),
	}
}

func (r *answerRepo) SaveSheet(ctx context.Context, sheet *model.AnswerSheet) error {
	if sheet.SubmittedAt.IsZero() {
		sheet.SubmittedAt = time.Now()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"sessionId": sheet.SessionID}, sheet, opts)
	return err
}

func (r *answerRepo) GetBySession(ctx context.Context, sessionID string) (*model.AnswerSheet, error) {
	var sheet model.AnswerSheet
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&sheet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}
