package service

import (
	"context"
	"errors"

	"homeboard/fitness/internal/calendar"
	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
)

// GetWeeklyProgress builds the read-only per-week projection: completion and
// skip counts per activity plus a per-day snapshot map. weekNumber <= 0
// means the current week. A week that was never touched yields zero counts
// without creating anything.
func (s *routineService) GetWeeklyProgress(ctx context.Context, weekNumber int) (*domain.WeeklyProgress, error) {
	routine, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	if weekNumber <= 0 {
		weekNumber = calendar.WeekNumber(s.now())
	}
	week := routine.FindWeek(weekNumber)

	progress := &domain.WeeklyProgress{
		WeekNumber:           weekNumber,
		TotalMorningRoutines: len(domain.DaysOfWeek),
		TotalNightRoutines:   len(domain.DaysOfWeek),
		WorkoutsByDay:        make(map[domain.DayOfWeek]domain.DayProgress, len(domain.DaysOfWeek)),
	}
	if week != nil {
		progress.StartDate = week.StartDate
	}

	for _, day := range domain.DaysOfWeek {
		scheduled, err := s.workoutScheduled(ctx, day)
		if err != nil {
			return nil, err
		}
		if scheduled {
			progress.TotalWorkouts++
		}

		snapshot := domain.DayProgress{WorkoutScheduled: scheduled}
		var dayData *domain.DayData
		if week != nil {
			dayData = week.Day(day)
		}
		if dayData != nil {
			snapshot.Workout = activitySnapshot(dayData.Workout)
			snapshot.MorningRoutine = activitySnapshot(dayData.MorningRoutine)
			snapshot.NightRoutine = activitySnapshot(dayData.NightRoutine)

			if rec := dayData.Workout; rec != nil {
				if rec.Completed {
					progress.CompletedWorkouts++
				}
				if rec.Skipped {
					progress.SkippedWorkouts++
				}
			}
			if rec := dayData.MorningRoutine; rec != nil && rec.Completed {
				progress.CompletedMorningRoutines++
			}
			if rec := dayData.NightRoutine; rec != nil && rec.Completed {
				progress.CompletedNightRoutines++
			}
		}
		progress.WorkoutsByDay[day] = snapshot
	}
	return progress, nil
}

// workoutScheduled reports whether the catalog has a definition for the day.
func (s *routineService) workoutScheduled(ctx context.Context, day domain.DayOfWeek) (bool, error) {
	_, err := s.catalog.GetWorkoutForDay(ctx, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// activitySnapshot condenses one completion record for the progress view.
// nil in, nil out: an unrecorded activity stays absent in the snapshot.
func activitySnapshot(rec *domain.CompletionRecord) *domain.ActivityProgress {
	if rec == nil {
		return nil
	}
	return &domain.ActivityProgress{
		Completed:          rec.Completed,
		Skipped:            rec.Skipped,
		SkippedReason:      rec.SkippedReason,
		ExercisesCompleted: len(rec.ExercisesCompleted),
	}
}
