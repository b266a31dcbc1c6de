package service

import (
	"context"
	"time"

	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
)

// fixedNow is a Monday in week 36 of 2026. All service tests pin the clock.
var fixedNow = time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)

const fixedWeek = 36

// memoryStore is an in-memory RoutineStore double. Load hands out the same
// aggregate pointer the engine mutates, matching the read-modify-write
// contract closely enough for state-machine tests.
type memoryStore struct {
	routine *domain.WeeklyRoutine
	saveErr error
	saves   int
}

func (m *memoryStore) Load(ctx context.Context) (*domain.WeeklyRoutine, error) {
	if m.routine == nil {
		return nil, repository.ErrNotFound
	}
	return m.routine, nil
}

func (m *memoryStore) Save(ctx context.Context, routine *domain.WeeklyRoutine) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.routine = routine
	return nil
}

// stubCatalog serves fixed workout definitions; unlisted days are rest days.
type stubCatalog struct {
	defs map[domain.DayOfWeek]*domain.WorkoutDefinition
}

func (c *stubCatalog) GetWorkoutForDay(ctx context.Context, day domain.DayOfWeek) (*domain.WorkoutDefinition, error) {
	if def, ok := c.defs[day]; ok {
		return def, nil
	}
	return nil, repository.ErrNotFound
}

// mondayWorkout has five exercise IDs spread across three groups:
// wu-1, ex-1, ex-2, ex-3, fin-1.
func mondayWorkout() *domain.WorkoutDefinition {
	return &domain.WorkoutDefinition{
		ID:        "workout-push",
		Day:       domain.Monday,
		Name:      "Push Day",
		VersionID: "v1",
		Warmup: &domain.ExerciseGroup{Name: "Warmup", Exercises: []domain.Exercise{
			{ID: "wu-1", Name: "Band Pull-Apart"},
		}},
		Exercises: []domain.Exercise{
			{ID: "ex-1", Name: "Bench Press"},
			{ID: "ex-2", Name: "Overhead Press"},
			{ID: "ex-3", Name: "Dips"},
		},
		Finisher: []domain.Exercise{
			{ID: "fin-1", Name: "Triceps Pushdown"},
		},
	}
}

var mondayExerciseIDs = []string{"ex-1", "ex-2", "ex-3", "fin-1", "wu-1"}

func seededRoutine() *domain.WeeklyRoutine {
	return &domain.WeeklyRoutine{
		ID: "weekly",
		Schedule: map[domain.DayOfWeek]domain.DayFocus{
			domain.Monday: {Focus: "Push", Goal: "Upper body"},
		},
		DailyRoutines: domain.DailyRoutines{
			Morning: domain.RoutineDefinition{ID: "routine-morning", Name: "Morning Stretch"},
			Night:   domain.RoutineDefinition{ID: "routine-night", Name: "Night Stretch"},
		},
	}
}

// newTestService wires a seeded aggregate, a catalog with a Monday workout
// and a fixed clock.
func newTestService() (*routineService, *memoryStore) {
	store := &memoryStore{routine: seededRoutine()}
	catalog := &stubCatalog{defs: map[domain.DayOfWeek]*domain.WorkoutDefinition{
		domain.Monday: mondayWorkout(),
	}}
	svc := &routineService{
		store:   store,
		catalog: catalog,
		now:     func() time.Time { return fixedNow },
	}
	return svc, store
}

// workoutRecord digs the Monday-week workout record out of the store.
func workoutRecord(store *memoryStore, weekNumber int, day domain.DayOfWeek) *domain.CompletionRecord {
	week := store.routine.FindWeek(weekNumber)
	if week == nil {
		return nil
	}
	dayData := week.Day(day)
	if dayData == nil {
		return nil
	}
	return dayData.Workout
}

func routineRecord(store *memoryStore, weekNumber int, day domain.DayOfWeek, typ domain.RoutineType) *domain.CompletionRecord {
	week := store.routine.FindWeek(weekNumber)
	if week == nil {
		return nil
	}
	dayData := week.Day(day)
	if dayData == nil {
		return nil
	}
	return dayData.Routine(typ)
}
