package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeboard/fitness/internal/domain"
)

func TestMarkWorkoutComplete_RequiresDefinition(t *testing.T) {
	svc, _ := newTestService()

	// Wednesday is a rest day in the test catalog.
	err := svc.MarkWorkoutComplete(context.Background(), domain.Wednesday, fixedWeek, nil, "")
	assert.ErrorIs(t, err, ErrNoWorkoutDefined)
}

func TestMarkWorkoutComplete_ForcesFullExerciseSet(t *testing.T) {
	svc, store := newTestService()

	// Passing a subset (or nothing) still completes every exercise.
	err := svc.MarkWorkoutComplete(context.Background(), domain.Monday, fixedWeek, []string{"ex-1"}, "v1")
	require.NoError(t, err)

	record := workoutRecord(store, fixedWeek, domain.Monday)
	require.NotNil(t, record)
	assert.True(t, record.Completed)
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, fixedNow, *record.CompletedAt)
	assert.Equal(t, mondayExerciseIDs, record.ExercisesCompleted)
	assert.Equal(t, "workout-push", record.WorkoutID)
	assert.Equal(t, "v1", record.RoutineVersionID)
}

func TestMarkWorkoutComplete_Idempotent(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkWorkoutComplete(ctx, domain.Monday, fixedWeek, mondayExerciseIDs, "v1"))
	first := *workoutRecord(store, fixedWeek, domain.Monday)

	// Second call with fewer IDs and a different version must not change
	// anything under a fixed clock.
	require.NoError(t, svc.MarkWorkoutComplete(ctx, domain.Monday, fixedWeek, []string{"ex-2"}, "v2"))
	second := *workoutRecord(store, fixedWeek, domain.Monday)

	assert.Equal(t, first, second)
}

func TestMarkWorkoutComplete_KeepsPreviouslyRecordedExercises(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	// An exercise recorded earlier that the definition no longer lists
	// stays in the union.
	_, err := svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"legacy-1"}, "v1")
	require.NoError(t, err)
	require.NoError(t, svc.MarkWorkoutComplete(ctx, domain.Monday, fixedWeek, nil, "v2"))

	record := workoutRecord(store, fixedWeek, domain.Monday)
	assert.Contains(t, record.ExercisesCompleted, "legacy-1")
	for _, id := range mondayExerciseIDs {
		assert.Contains(t, record.ExercisesCompleted, id)
	}
	// Version was stamped by the first write and must survive the second.
	assert.Equal(t, "v1", record.RoutineVersionID)
}

func TestMarkWorkoutComplete_ClearsSkipState(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SkipWorkout(ctx, domain.Monday, fixedWeek, "tired", "v1"))
	require.NoError(t, svc.MarkWorkoutComplete(ctx, domain.Monday, fixedWeek, nil, "v2"))

	record := workoutRecord(store, fixedWeek, domain.Monday)
	assert.True(t, record.Completed)
	assert.False(t, record.Skipped)
	assert.Nil(t, record.SkippedAt)
	assert.Empty(t, record.SkippedReason)
}

func TestMarkWorkoutUncomplete_NoRecordIsNoop(t *testing.T) {
	svc, store := newTestService()

	err := svc.MarkWorkoutUncomplete(context.Background(), domain.Monday, fixedWeek)
	require.NoError(t, err)
	assert.Nil(t, workoutRecord(store, fixedWeek, domain.Monday))
}

func TestMarkWorkoutUncomplete_ResetsRecordInPlace(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkWorkoutComplete(ctx, domain.Monday, fixedWeek, nil, "v1"))
	require.NoError(t, svc.MarkWorkoutUncomplete(ctx, domain.Monday, fixedWeek))

	record := workoutRecord(store, fixedWeek, domain.Monday)
	require.NotNil(t, record, "uncomplete keeps the record, unlike unskip")
	assert.False(t, record.Completed)
	assert.Nil(t, record.CompletedAt)
	assert.Empty(t, record.ExercisesCompleted)
	assert.False(t, record.Skipped)
	assert.Equal(t, "v1", record.RoutineVersionID, "version stamp survives the reset")
}

func TestAddCompletedExercises_MonotonicUnion(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	result, err := svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"ex-1", "ex-2"}, "v1")
	require.NoError(t, err)
	assert.False(t, result.AllComplete)
	assert.Equal(t, []string{"ex-1", "ex-2"}, result.ExercisesCompleted)

	// Duplicates collapse.
	result, err = svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"ex-2", "ex-3"}, "v1")
	require.NoError(t, err)
	assert.False(t, result.AllComplete)
	assert.Equal(t, []string{"ex-1", "ex-2", "ex-3"}, result.ExercisesCompleted)

	record := workoutRecord(store, fixedWeek, domain.Monday)
	assert.False(t, record.Completed)
	assert.Nil(t, record.CompletedAt, "no timestamp while partial")

	// Supplying the rest flips completion exactly at the superset point.
	result, err = svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"wu-1", "fin-1"}, "v1")
	require.NoError(t, err)
	assert.True(t, result.AllComplete)
	assert.Equal(t, mondayExerciseIDs, result.ExercisesCompleted)

	record = workoutRecord(store, fixedWeek, domain.Monday)
	assert.True(t, record.Completed)
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, fixedNow, *record.CompletedAt)
}

func TestAddCompletedExercises_CompletedAtOnlyOnTransition(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	clock := fixedNow
	svc.now = func() time.Time { return clock }

	_, err := svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, mondayExerciseIDs, "v1")
	require.NoError(t, err)
	completedAt := *workoutRecord(store, fixedWeek, domain.Monday).CompletedAt

	// Re-adding later must not move the original completion time.
	clock = clock.Add(2 * time.Hour)
	_, err = svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"ex-1"}, "v1")
	require.NoError(t, err)
	assert.Equal(t, completedAt, *workoutRecord(store, fixedWeek, domain.Monday).CompletedAt)
}

func TestAddCompletedExercises_VersionStampStable(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"ex-1"}, "v1")
	require.NoError(t, err)
	_, err = svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"ex-2"}, "v9")
	require.NoError(t, err)

	assert.Equal(t, "v1", workoutRecord(store, fixedWeek, domain.Monday).RoutineVersionID)
}

func TestSkipWorkout_RequiresDefinition(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SkipWorkout(context.Background(), domain.Sunday, fixedWeek, "resting", "")
	assert.ErrorIs(t, err, ErrNoWorkoutDefined)
}

func TestSkipWorkout_PreservesPartialProgress(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AddCompletedExercises(ctx, domain.Monday, fixedWeek, []string{"ex-1", "ex-2"}, "v1")
	require.NoError(t, err)
	require.NoError(t, svc.SkipWorkout(ctx, domain.Monday, fixedWeek, "sore", "v2"))

	record := workoutRecord(store, fixedWeek, domain.Monday)
	assert.True(t, record.Skipped)
	assert.Equal(t, "sore", record.SkippedReason)
	require.NotNil(t, record.SkippedAt)
	assert.Equal(t, fixedNow, *record.SkippedAt)
	assert.False(t, record.Completed)
	// The day can legitimately show both partial progress and a skip.
	assert.Equal(t, []string{"ex-1", "ex-2"}, record.ExercisesCompleted)
	assert.Equal(t, "v1", record.RoutineVersionID)
}

func TestUnskipWorkout_RemovesRecordEntirely(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SkipWorkout(ctx, domain.Monday, fixedWeek, "sick", "v1"))
	require.NoError(t, svc.UnskipWorkout(ctx, domain.Monday, fixedWeek))

	// Not "skipped=false" on a surviving record: the record is gone.
	assert.Nil(t, workoutRecord(store, fixedWeek, domain.Monday))

	progress, err := svc.GetWeeklyProgress(ctx, fixedWeek)
	require.NoError(t, err)
	assert.Nil(t, progress.WorkoutsByDay[domain.Monday].Workout)
	assert.Zero(t, progress.SkippedWorkouts)
}

func TestMarkRoutineComplete_SetsRecord(t *testing.T) {
	svc, store := newTestService()

	err := svc.MarkRoutineComplete(context.Background(), domain.RoutineMorning, domain.Monday, fixedWeek, "mv1")
	require.NoError(t, err)

	record := routineRecord(store, fixedWeek, domain.Monday, domain.RoutineMorning)
	require.NotNil(t, record)
	assert.True(t, record.Completed)
	assert.Equal(t, "routine-morning", record.RoutineID)
	assert.Equal(t, "mv1", record.RoutineVersionID)
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, fixedNow, *record.CompletedAt)

	// The other routine of the day stays untouched.
	assert.Nil(t, routineRecord(store, fixedWeek, domain.Monday, domain.RoutineNight))
}

func TestMarkRoutineIncomplete_PreservesVersion(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkRoutineComplete(ctx, domain.RoutineNight, domain.Monday, fixedWeek, "nv1"))
	require.NoError(t, svc.MarkRoutineIncomplete(ctx, domain.RoutineNight, domain.Monday, fixedWeek))

	record := routineRecord(store, fixedWeek, domain.Monday, domain.RoutineNight)
	require.NotNil(t, record)
	assert.False(t, record.Completed)
	assert.Nil(t, record.CompletedAt)
	assert.Equal(t, "nv1", record.RoutineVersionID)
}

func TestMarkRoutineIncomplete_NoRecordIsNoop(t *testing.T) {
	svc, store := newTestService()

	err := svc.MarkRoutineIncomplete(context.Background(), domain.RoutineMorning, domain.Tuesday, fixedWeek)
	require.NoError(t, err)
	assert.Nil(t, routineRecord(store, fixedWeek, domain.Tuesday, domain.RoutineMorning))
}

func TestUnskipRoutine_RemovesRecordEntirely(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SkipRoutine(ctx, domain.RoutineMorning, domain.Monday, fixedWeek, "travel", "mv1"))
	require.NotNil(t, routineRecord(store, fixedWeek, domain.Monday, domain.RoutineMorning))

	require.NoError(t, svc.UnskipRoutine(ctx, domain.RoutineMorning, domain.Monday, fixedWeek))
	assert.Nil(t, routineRecord(store, fixedWeek, domain.Monday, domain.RoutineMorning))
}

func TestSkipDay_SkipsEverythingWithSharedTimestamp(t *testing.T) {
	svc, store := newTestService()

	err := svc.SkipDay(context.Background(), domain.Monday, fixedWeek, "sick", "v1")
	require.NoError(t, err)

	workout := workoutRecord(store, fixedWeek, domain.Monday)
	morning := routineRecord(store, fixedWeek, domain.Monday, domain.RoutineMorning)
	night := routineRecord(store, fixedWeek, domain.Monday, domain.RoutineNight)
	require.NotNil(t, workout)
	require.NotNil(t, morning)
	require.NotNil(t, night)

	for _, record := range []*domain.CompletionRecord{workout, morning, night} {
		assert.True(t, record.Skipped)
		assert.Equal(t, "sick", record.SkippedReason)
		require.NotNil(t, record.SkippedAt)
		assert.Equal(t, fixedNow, *record.SkippedAt)
	}
}

func TestSkipDay_RestDaySkipsRoutinesOnly(t *testing.T) {
	svc, store := newTestService()

	err := svc.SkipDay(context.Background(), domain.Wednesday, fixedWeek, "holiday", "")
	require.NoError(t, err)

	assert.Nil(t, workoutRecord(store, fixedWeek, domain.Wednesday))
	assert.True(t, routineRecord(store, fixedWeek, domain.Wednesday, domain.RoutineMorning).Skipped)
	assert.True(t, routineRecord(store, fixedWeek, domain.Wednesday, domain.RoutineNight).Skipped)
}

func TestMutations_SurfaceStoreFailures(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	store.saveErr = errors.New("write timed out")
	err := svc.MarkRoutineComplete(ctx, domain.RoutineMorning, domain.Monday, fixedWeek, "")
	assert.EqualError(t, err, "write timed out")

	store.routine = nil
	store.saveErr = nil
	err = svc.MarkRoutineComplete(ctx, domain.RoutineMorning, domain.Monday, fixedWeek, "")
	assert.ErrorIs(t, err, ErrRoutineNotFound)
}

func TestMutations_RejectInvalidInputs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.MarkWorkoutComplete(ctx, "funday", fixedWeek, nil, ""), ErrInvalidDay)
	assert.ErrorIs(t, svc.MarkRoutineComplete(ctx, "afternoon", domain.Monday, fixedWeek, ""), ErrInvalidRoutineType)
}
