package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/model"
)

// SessionRepo keeps the durable record of every assessment session, including
// ones abandoned before completion.
type SessionRepo interface {
	Create(ctx context.Context, session *model.AssessmentSession) error
	GetByID(ctx context.Context, id string) (*model.AssessmentSession, error)
	UpdateStatus(ctx context.Context, id string, status model.SessionStatus) error
	GetByStudentID(ctx context.Context, studentID string) ([]*model.AssessmentSession, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("assessment_sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.AssessmentSession) error {
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.AssessmentSession, error) {
	var session model.AssessmentSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateStatus also stamps completedAt when the status is complete
func (r *sessionRepo) UpdateStatus(ctx context.Context, id string, status model.SessionStatus) error {
	now := time.Now().UTC()
	set := bson.M{"status": status, "updatedAt": now}
	if status == model.SessionComplete {
		set["completedAt"] = now
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *sessionRepo) GetByStudentID(ctx context.Context, studentID string) ([]*model.AssessmentSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*model.AssessmentSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
