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

// ResultRepo handles MongoDB operations for completed assessment results
type ResultRepo interface {
	Save(ctx context.Context, result *model.AssessmentResult) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.AssessmentResult, error)
	GetByStudentID(ctx context.Context, studentID string) ([]*model.AssessmentResult, error)
	Summary(ctx context.Context, class model.ClassLevel) (*model.CohortSummary, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("assessment_results"),
	}
}

// Save upserts by session id so a retried finish overwrites rather than duplicates
func (r *resultRepo) Save(ctx context.Context, result *model.AssessmentResult) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": result.SessionID}, result, opts)
	return err
}

func (r *resultRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByStudentID returns a student's results, newest first
func (r *resultRepo) GetByStudentID(ctx context.Context, studentID string) ([]*model.AssessmentResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
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

type cohortFacet struct {
	Totals []struct {
		Count  int               `bson:"count"`
		Latest time.Time         `bson:"latest"`
		Scores model.ScoreVector `bson:",inline"`
	} `bson:"totals"`
	Dimensions []model.DimensionCount `bson:"dimensions"`
}

// Summary aggregates results, optionally for one class level. Dimension
// counts use each result's strongest dimension and are sorted by count.
func (r *resultRepo) Summary(ctx context.Context, class model.ClassLevel) (*model.CohortSummary, error) {
	totals := bson.D{
		{Key: "_id", Value: nil},
		{Key: "count", Value: bson.M{"$sum": 1}},
		{Key: "latest", Value: bson.M{"$max": "$completedAt"}},
	}
	for _, d := range model.Dimensions {
		totals = append(totals, bson.E{Key: string(d), Value: bson.M{"$avg": "$scores." + string(d)}})
	}

	pipeline := mongo.Pipeline{}
	if class != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"profile.classLevel": class}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.M{
		"totals": bson.A{bson.D{{Key: "$group", Value: totals}}},
		"dimensions": bson.A{
			bson.D{{Key: "$match", Value: bson.M{"topDimensions.0": bson.M{"$exists": true}}}},
			bson.D{{Key: "$group", Value: bson.M{
				"_id":   bson.M{"$arrayElemAt": bson.A{"$topDimensions", 0}},
				"count": bson.M{"$sum": 1},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		},
	}}})

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var facets []cohortFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, err
	}

	summary := &model.CohortSummary{ClassLevel: class, TopDimensionCounts: []model.DimensionCount{}}
	if len(facets) == 0 {
		return summary, nil
	}
	f := facets[0]
	if f.Dimensions != nil {
		summary.TopDimensionCounts = f.Dimensions
	}
	if len(f.Totals) > 0 && f.Totals[0].Count > 0 {
		t := f.Totals[0]
		summary.Results = t.Count
		summary.AverageScores = t.Scores.Rounded()
		latest := t.Latest
		summary.LatestCompletedAt = &latest
	}
	return summary, nil
}
