package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/model"
)

// CourseRepo handles MongoDB operations for the seeded course catalog
type CourseRepo interface {
	ReplaceAll(ctx context.Context, courses []model.Course) error
	List(ctx context.Context) ([]model.Course, error)
	Count(ctx context.Context) (int64, error)
}

// courseDoc keeps the catalog position so ties rank the same after a round trip
type courseDoc struct {
	model.Course `bson:",inline"`
	Position     int `bson:"position"`
}

type courseRepo struct {
	collection *mongo.Collection
}

// NewCourseRepo creates a new course repository
func NewCourseRepo(db *mongo.Database) CourseRepo {
	return &courseRepo{
		collection: db.Collection("courses"),
	}
}

// ReplaceAll upserts every course with its position and removes courses no
// longer in the list.
func (r *courseRepo) ReplaceAll(ctx context.Context, courses []model.Course) error {
	ids := make([]string, len(courses))
	models := make([]mongo.WriteModel, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": c.ID}).
			SetReplacement(courseDoc{Course: c, Position: i}).
			SetUpsert(true)
	}

	if len(models) > 0 {
		if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
			return err
		}
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ids}})
	return err
}

// List returns the courses in catalog order
func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []courseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	courses := make([]model.Course, len(docs))
	for i, d := range docs {
		courses[i] = d.Course
	}
	return courses, nil
}

func (r *courseRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
