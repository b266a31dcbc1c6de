package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
)

const routineCollectionName = "weekly_routines"

// RoutineDocumentID is the fixed _id of the singleton aggregate. There is
// exactly one weekly routine per installation.
const RoutineDocumentID = "weekly"

// mongoRoutineStore implements repository.RoutineStore over a single
// document in the weekly_routines collection.
type mongoRoutineStore struct {
	collection *mongo.Collection
}

// NewMongoRoutineStore creates a new routine store.
func NewMongoRoutineStore(db *mongo.Database) repository.RoutineStore {
	return &mongoRoutineStore{
		collection: db.Collection(routineCollectionName),
	}
}

// Load fetches the whole aggregate.
func (r *mongoRoutineStore) Load(ctx context.Context) (*domain.WeeklyRoutine, error) {
	var routine domain.WeeklyRoutine
	err := r.collection.FindOne(ctx, bson.M{"_id": RoutineDocumentID}).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

// Save replaces the whole aggregate. The filter pins the revision that was
// loaded, so a writer that lost the race gets ErrConflict instead of
// silently overwriting the other writer's changes.
func (r *mongoRoutineStore) Save(ctx context.Context, routine *domain.WeeklyRoutine) error {
	if routine.ID == "" {
		routine.ID = RoutineDocumentID
	}
	loadedRevision := routine.Revision
	routine.Revision = loadedRevision + 1

	filter := bson.M{"_id": routine.ID, "revision": loadedRevision}
	result, err := r.collection.ReplaceOne(ctx, filter, routine)
	if err != nil {
		routine.Revision = loadedRevision
		return err
	}
	if result.MatchedCount == 0 {
		// Document missing or revision moved underneath us.
		routine.Revision = loadedRevision
		return repository.ErrConflict
	}
	return nil
}

// SeedRoutine inserts the singleton aggregate if the collection is still
// empty. Called once at startup; a routine that already exists is left
// untouched.
func SeedRoutine(ctx context.Context, db *mongo.Database, routine *domain.WeeklyRoutine) error {
	collection := db.Collection(routineCollectionName)
	err := collection.FindOne(ctx, bson.M{"_id": RoutineDocumentID}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	routine.ID = RoutineDocumentID
	routine.Revision = 0
	_, err = collection.InsertOne(ctx, routine)
	return err
}
