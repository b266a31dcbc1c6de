package service

import (
	"context"
	"time"

	"homeboard/fitness/internal/domain"
)

// carriedVersion implements the write-once version stamp across record
// rebuilds: a stamp already on the previous record always wins over the
// supplied one.
func carriedVersion(prev *domain.CompletionRecord, supplied string) string {
	if prev != nil && prev.RoutineVersionID != "" {
		return prev.RoutineVersionID
	}
	return supplied
}

// MarkWorkoutComplete records the day's workout as fully done. The final
// exercise set is the union of every exercise in the definition, the IDs the
// caller supplied, and anything already recorded for that day — completing
// the whole workout forces every exercise in. Idempotent: a second call with
// the same or fewer IDs yields the same record.
func (s *routineService) MarkWorkoutComplete(ctx context.Context, day domain.DayOfWeek, weekNumber int, exerciseIDs []string, versionID string) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	def, err := s.lookupWorkout(ctx, day)
	if err != nil {
		return err
	}

	return s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		dayData := week.EnsureDay(day)
		prev := dayData.Workout

		now := s.now()
		record := &domain.CompletionRecord{
			WorkoutID:        def.ID,
			Completed:        true,
			CompletedAt:      &now,
			RoutineVersionID: carriedVersion(prev, versionID),
		}
		record.AddExercises(def.AllExerciseIDs())
		record.AddExercises(exerciseIDs)
		if prev != nil {
			record.AddExercises(prev.ExercisesCompleted)
		}
		// Rebuilding the record is what clears any earlier skip flags.
		dayData.Workout = record
		return nil
	})
}

// MarkWorkoutUncomplete resets the day's workout record back to unrecorded
// state: completion and skip fields zeroed, exercise set emptied. The record
// itself stays (contrast with UnskipWorkout, which removes it) and the
// version stamp is kept for historical accuracy. No-op when no record exists.
func (s *routineService) MarkWorkoutUncomplete(ctx context.Context, day domain.DayOfWeek, weekNumber int) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	return s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		dayData := week.Day(day)
		if dayData == nil || dayData.Workout == nil {
			return nil
		}
		record := dayData.Workout
		record.Completed = false
		record.CompletedAt = nil
		record.Skipped = false
		record.SkippedAt = nil
		record.SkippedReason = ""
		record.ExercisesCompleted = nil
		return nil
	})
}

// AddCompletedExercises is the incremental variant driven by the
// per-exercise checkboxes. It merges the supplied IDs into the recorded set,
// flips the record to completed exactly when the set covers every exercise
// in the definition, and returns the resulting set so the caller can render
// partial progress without re-reading. CompletedAt is only written on the
// transition into complete.
func (s *routineService) AddCompletedExercises(ctx context.Context, day domain.DayOfWeek, weekNumber int, exerciseIDs []string, versionID string) (*domain.ExerciseCompletionResult, error) {
	if !day.Valid() {
		return nil, ErrInvalidDay
	}
	def, err := s.lookupWorkout(ctx, day)
	if err != nil {
		return nil, err
	}

	var result domain.ExerciseCompletionResult
	err = s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		dayData := week.EnsureDay(day)
		if dayData.Workout == nil {
			dayData.Workout = &domain.CompletionRecord{WorkoutID: def.ID}
		}
		record := dayData.Workout
		record.AddExercises(exerciseIDs)
		record.StampVersion(versionID)

		allComplete := record.HasAllExercises(def.AllExerciseIDs())
		if allComplete && !record.Completed {
			now := s.now()
			record.CompletedAt = &now
		}
		record.Completed = allComplete

		result = domain.ExerciseCompletionResult{
			AllComplete:        allComplete,
			ExercisesCompleted: record.ExercisesCompleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SkipWorkout marks the day's workout as deliberately skipped. A partial
// exercise set already recorded for the day is left untouched, so the day
// can legitimately show both "3 of 8 done" and "skipped".
func (s *routineService) SkipWorkout(ctx context.Context, day domain.DayOfWeek, weekNumber int, reason, versionID string) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	def, err := s.lookupWorkout(ctx, day)
	if err != nil {
		return err
	}

	return s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		skipWorkoutRecord(week, day, def.ID, reason, versionID, s.now())
		return nil
	})
}

// skipWorkoutRecord applies the workout skip in place. Shared with SkipDay
// so a whole-day skip carries a single timestamp.
func skipWorkoutRecord(week *domain.Week, day domain.DayOfWeek, workoutID, reason, versionID string, at time.Time) {
	dayData := week.EnsureDay(day)
	if dayData.Workout == nil {
		dayData.Workout = &domain.CompletionRecord{WorkoutID: workoutID}
	}
	record := dayData.Workout
	record.Skipped = true
	record.SkippedAt = &at
	record.SkippedReason = reason
	record.Completed = false
	record.StampVersion(versionID)
}

// UnskipWorkout removes the day's workout record entirely, back to fully
// unrecorded. Deliberately asymmetric with MarkWorkoutUncomplete, which
// zeroes the fields but keeps the record; the dashboard depends on both
// behaviors.
func (s *routineService) UnskipWorkout(ctx context.Context, day domain.DayOfWeek, weekNumber int) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	return s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		if dayData := week.Day(day); dayData != nil {
			dayData.Workout = nil
		}
		return nil
	})
}

// MarkRoutineComplete records the morning or night routine as done. Same
// rebuild semantics as the workout variant, minus exercise tracking.
func (s *routineService) MarkRoutineComplete(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int, versionID string) error {
	if !typ.Valid() {
		return ErrInvalidRoutineType
	}
	if !day.Valid() {
		return ErrInvalidDay
	}
	return s.mutateWeek(ctx, weekNumber, func(routine *domain.WeeklyRoutine, week *domain.Week) error {
		dayData := week.EnsureDay(day)
		prev := dayData.Routine(typ)

		now := s.now()
		dayData.SetRoutine(typ, &domain.CompletionRecord{
			RoutineID:        routine.RoutineDefinition(typ).ID,
			Completed:        true,
			CompletedAt:      &now,
			RoutineVersionID: carriedVersion(prev, versionID),
		})
		return nil
	})
}

// MarkRoutineIncomplete reverts the routine to unrecorded state in place,
// preserving the version stamp. No-op when no record exists.
func (s *routineService) MarkRoutineIncomplete(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int) error {
	if !typ.Valid() {
		return ErrInvalidRoutineType
	}
	if !day.Valid() {
		return ErrInvalidDay
	}
	return s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		dayData := week.Day(day)
		if dayData == nil {
			return nil
		}
		record := dayData.Routine(typ)
		if record == nil {
			return nil
		}
		record.Completed = false
		record.CompletedAt = nil
		record.Skipped = false
		record.SkippedAt = nil
		record.SkippedReason = ""
		return nil
	})
}

// SkipRoutine marks the morning or night routine as skipped with a reason.
func (s *routineService) SkipRoutine(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int, reason, versionID string) error {
	if !typ.Valid() {
		return ErrInvalidRoutineType
	}
	if !day.Valid() {
		return ErrInvalidDay
	}
	return s.mutateWeek(ctx, weekNumber, func(routine *domain.WeeklyRoutine, week *domain.Week) error {
		skipRoutineRecord(week, day, typ, routine.RoutineDefinition(typ).ID, reason, versionID, s.now())
		return nil
	})
}

// skipRoutineRecord applies the routine skip in place; shared with SkipDay.
func skipRoutineRecord(week *domain.Week, day domain.DayOfWeek, typ domain.RoutineType, routineID, reason, versionID string, at time.Time) {
	dayData := week.EnsureDay(day)
	record := dayData.Routine(typ)
	if record == nil {
		record = &domain.CompletionRecord{RoutineID: routineID}
		dayData.SetRoutine(typ, record)
	}
	record.Skipped = true
	record.SkippedAt = &at
	record.SkippedReason = reason
	record.Completed = false
	record.StampVersion(versionID)
}

// UnskipRoutine removes the routine record entirely, mirroring
// UnskipWorkout's asymmetry with the incomplete variant.
func (s *routineService) UnskipRoutine(ctx context.Context, typ domain.RoutineType, day domain.DayOfWeek, weekNumber int) error {
	if !typ.Valid() {
		return ErrInvalidRoutineType
	}
	if !day.Valid() {
		return ErrInvalidDay
	}
	return s.mutateWeek(ctx, weekNumber, func(_ *domain.WeeklyRoutine, week *domain.Week) error {
		if dayData := week.Day(day); dayData != nil {
			dayData.SetRoutine(typ, nil)
		}
		return nil
	})
}

// SkipDay declares a full rest or sick day: the scheduled workout (when one
// exists), the morning routine and the night routine are all skipped with
// the same reason and the same timestamp, in one read-modify-write.
func (s *routineService) SkipDay(ctx context.Context, day domain.DayOfWeek, weekNumber int, reason, versionID string) error {
	if !day.Valid() {
		return ErrInvalidDay
	}

	// Rest days simply have no workout to skip; any other catalog failure
	// still aborts.
	def, err := s.GetWorkoutForDay(ctx, day)
	if err != nil {
		return err
	}

	return s.mutateWeek(ctx, weekNumber, func(routine *domain.WeeklyRoutine, week *domain.Week) error {
		at := s.now()
		if def != nil {
			skipWorkoutRecord(week, day, def.ID, reason, versionID, at)
		}
		skipRoutineRecord(week, day, domain.RoutineMorning, routine.DailyRoutines.Morning.ID, reason, versionID, at)
		skipRoutineRecord(week, day, domain.RoutineNight, routine.DailyRoutines.Night.ID, reason, versionID, at)
		return nil
	})
}
