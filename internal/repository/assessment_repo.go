package repository

import (
	"careerfit/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssessmentRepo handles MongoDB operations for assessment definitions
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	GetBySlug(ctx context.Context, slug string) (*model.Assessment, error)
	List(ctx context.Context, publishedOnly bool) ([]*model.Assessment, error)
	Update(ctx context.Context, assessment *model.Assessment) error
	UpsertBySlug(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	assessment.ID = ""
	assessment.CreatedAt = time.Now()
	assessment.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	assessment.ID = oid.Hex()
	return assessment.ID, nil
}

// GetByID returns nil, nil for unknown or malformed ids
func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var assessment model.Assessment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	assessment.ID = id
	return &assessment, nil
}

func (r *assessmentRepo) GetBySlug(ctx context.Context, slug string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepo) List(ctx context.Context, publishedOnly bool) ([]*model.Assessment, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assessments := []*model.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) Update(ctx context.Context, assessment *model.Assessment) error {
	oid, err := primitive.ObjectIDFromHex(assessment.ID)
	if err != nil {
		return err
	}

	assessment.UpdatedAt = time.Now()
	doc := *assessment
	doc.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &doc)
	return err
}

// UpsertBySlug replaces the definition with the same slug or inserts a new one
func (r *assessmentRepo) UpsertBySlug(ctx context.Context, assessment *model.Assessment) error {
	now := time.Now()
	assessment.UpdatedAt = now
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = now
	}

	doc := *assessment
	doc.ID = ""
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"slug": assessment.Slug}, &doc, opts)
	return err
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
