package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
)

const workoutCollectionName = "workout_definitions"

// mongoWorkoutCatalog implements repository.WorkoutCatalog over the
// workout_definitions collection, one document per scheduled weekday.
type mongoWorkoutCatalog struct {
	collection *mongo.Collection
}

// NewMongoWorkoutCatalog creates a new workout catalog.
func NewMongoWorkoutCatalog(db *mongo.Database) repository.WorkoutCatalog {
	return &mongoWorkoutCatalog{
		collection: db.Collection(workoutCollectionName),
	}
}

// GetWorkoutForDay returns the workout scheduled for the given day.
// ErrNotFound means the day is a rest day, which is an expected state.
func (r *mongoWorkoutCatalog) GetWorkoutForDay(ctx context.Context, day domain.DayOfWeek) (*domain.WorkoutDefinition, error) {
	var def domain.WorkoutDefinition
	err := r.collection.FindOne(ctx, bson.M{"day": day}).Decode(&def)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &def, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// One workout definition per weekday.
			Keys:    bson.D{{Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := db.Collection(workoutCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}

// SeedWorkoutCatalog inserts the default workout definitions when the
// collection is empty, so a fresh installation has content to complete
// against.
func SeedWorkoutCatalog(ctx context.Context, db *mongo.Database, defs []domain.WorkoutDefinition) error {
	collection := db.Collection(workoutCollectionName)
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 || len(defs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(defs))
	for i := range defs {
		docs[i] = defs[i]
	}
	_, err = collection.InsertMany(ctx, docs)
	return err
}
