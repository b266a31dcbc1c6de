package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"homeboard/fitness/internal/calendar"
	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
)

// --- Error Definitions ---
var (
	ErrRoutineNotFound    = errors.New("weekly routine not found")
	ErrNoWorkoutDefined   = errors.New("no workout defined for this day")
	ErrInvalidDay         = errors.New("invalid day of week")
	ErrInvalidRoutineType = errors.New("invalid routine type")
)

// RoutineService is the completion and consistency engine: it records
// whether the scheduled workout and the morning/night routines were done on
// a given day, supports skip/unskip and partial exercise completion, and
// derives the 30-day consistency view.
type RoutineService interface {
	GetRoutine(ctx context.Context) (*domain.WeeklyRoutine, error)
	GetWorkoutForDay(ctx context.Context, day domain.DayOfWeek) (*domain.WorkoutDefinition, error)

	MarkWorkoutComplete(ctx context.Context, day domain.DayOfWeek, weekNumber int, exerciseIDs []string, versionID string) error
	MarkWorkoutUncomplete(ctx context.Context, day domain.DayOfWeek, weekNumber int) error
	AddCompletedExercises(ctx context.Context, day domain.DayOfWeek, weekNumber int, exerciseIDs []string, versionID string) (*domain.ExerciseCompletionResult, error)
	SkipWorkout(ctx context.Context, day domain.DayOfWeek, weekNumber int, reason, versionID string) error
	UnskipWorkout(ctx context.Context, day domain.DayOfWeek, weekNumber int) error

	MarkRoutineComplete(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int, versionID string) error
	MarkRoutineIncomplete(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int) error
	SkipRoutine(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int, reason, versionID string) error
	UnskipRoutine(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int) error

	SkipDay(ctx context.Context, day domain.DayOfWeek, weekNumber int, reason, versionID string) error

	GetWeeklyProgress(ctx context.Context, weekNumber int) (*domain.WeeklyProgress, error)
	GetConsistencyStats(ctx context.Context) (*domain.ConsistencyStats, error)
}

// routineService implements the RoutineService interface. Every mutating
// operation is a single load / mutate / save round trip against the store;
// a failed save loses the in-memory mutation and surfaces the error.
type routineService struct {
	store   repository.RoutineStore
	catalog repository.WorkoutCatalog
	now     func() time.Time
}

// NewRoutineService creates a new instance of routineService.
func NewRoutineService(store repository.RoutineStore, catalog repository.WorkoutCatalog) RoutineService {
	return &routineService{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
}

// GetRoutine returns the whole aggregate, making sure the current week
// exists as a side effect. Returns nil (not an error) when nothing has been
// seeded yet; the dashboard renders that as its setup state.
func (s *routineService) GetRoutine(ctx context.Context) (*domain.WeeklyRoutine, error) {
	routine, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := s.now()
	currentWeek := calendar.WeekNumber(now)
	if routine.FindWeek(currentWeek) == nil {
		s.getOrCreateWeek(routine, currentWeek, now)
		if err := s.store.Save(ctx, routine); err != nil {
			return nil, err
		}
	}
	return routine, nil
}

// GetWorkoutForDay delegates to the workout catalog. A rest day returns
// nil, nil.
func (s *routineService) GetWorkoutForDay(ctx context.Context, day domain.DayOfWeek) (*domain.WorkoutDefinition, error) {
	if !day.Valid() {
		return nil, ErrInvalidDay
	}
	def, err := s.catalog.GetWorkoutForDay(ctx, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return def, nil
}

// getOrCreateWeek returns the week with the given number, creating and
// inserting an empty one first if needed. The weeks slice is kept sorted
// ascending by week number. Mutates the routine in place; the caller must
// save for a creation to persist.
func (s *routineService) getOrCreateWeek(routine *domain.WeeklyRoutine, weekNumber int, now time.Time) *domain.Week {
	if week := routine.FindWeek(weekNumber); week != nil {
		return week
	}

	week := domain.Week{
		WeekNumber: weekNumber,
		StartDate:  calendar.WeekStart(weekNumber, now).Format("2006-01-02"),
		Days:       make(map[domain.DayOfWeek]*domain.DayData),
	}
	routine.Weeks = append(routine.Weeks, week)
	sort.Slice(routine.Weeks, func(i, j int) bool {
		return routine.Weeks[i].WeekNumber < routine.Weeks[j].WeekNumber
	})
	return routine.FindWeek(weekNumber)
}

// mutateWeek is the shared read-modify-write skeleton: load the aggregate,
// resolve (or create) the target week, apply fn, save. fn returning an error
// aborts before the save.
func (s *routineService) mutateWeek(ctx context.Context, weekNumber int, fn func(routine *domain.WeeklyRoutine, week *domain.Week) error) error {
	routine, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoutineNotFound
		}
		return err
	}

	week := s.getOrCreateWeek(routine, weekNumber, s.now())
	if err := fn(routine, week); err != nil {
		return err
	}
	return s.store.Save(ctx, routine)
}

// lookupWorkout resolves the day's workout definition, translating catalog
// absence into ErrNoWorkoutDefined for operations that require one.
func (s *routineService) lookupWorkout(ctx context.Context, day domain.DayOfWeek) (*domain.WorkoutDefinition, error) {
	def, err := s.catalog.GetWorkoutForDay(ctx, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoWorkoutDefined
		}
		return nil, err
	}
	return def, nil
}
