package repository

import (
	"context"

	"homeboard/fitness/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("revision conflict")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// RoutineStore persists the single WeeklyRoutine aggregate as one opaque
// record. The contract is strictly read-modify-write: load the whole
// aggregate, mutate in memory, save the whole aggregate. There are no
// field-level updates, and the store is never assumed cached across calls.
type RoutineStore interface {
	// Load returns the aggregate, or ErrNotFound when nothing was seeded yet.
	Load(ctx context.Context) (*domain.WeeklyRoutine, error)
	// Save writes the whole aggregate back. Implementations that track a
	// revision return ErrConflict when a concurrent writer got there first;
	// the in-memory mutation is then lost and the caller must reload.
	Save(ctx context.Context, routine *domain.WeeklyRoutine) error
}

// WorkoutCatalog is the engine's read-only view of workout content. A day
// with no scheduled workout is an expected state and surfaces as ErrNotFound.
type WorkoutCatalog interface {
	GetWorkoutForDay(ctx context.Context, day domain.DayOfWeek) (*domain.WorkoutDefinition, error)
}
