package service

import (
	"context"
	"errors"

	"homeboard/fitness/internal/calendar"
	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
)

// GetConsistencyStats derives the rolling 30-day view: streaks, completion
// percentages and per-activity counts, read-only over the aggregate.
//
// Two behaviors are kept from the dashboard on purpose (see DESIGN.md):
// the owning week of an older date is approximated as
// currentWeek - i/7 rather than recomputed from the date itself, and
// weeklyCompletion equals monthlyCompletion because both come from the same
// 30-day workout window.
func (s *routineService) GetConsistencyStats(ctx context.Context) (*domain.ConsistencyStats, error) {
	routine, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	now := s.now()
	currentWeek := calendar.WeekNumber(now)

	// The catalog schedule repeats weekly; resolve each weekday once.
	scheduled := make(map[domain.DayOfWeek]bool, len(domain.DaysOfWeek))
	for _, day := range domain.DaysOfWeek {
		has, err := s.workoutScheduled(ctx, day)
		if err != nil {
			return nil, err
		}
		scheduled[day] = has
	}

	stats := &domain.ConsistencyStats{}
	var (
		tempStreak    int
		streakBroken  bool
		totalWorkouts int
		doneWorkouts  int
		doneMorning   int
		doneNight     int
	)

	for i := 0; i < 30; i++ {
		checkDate := now.AddDate(0, 0, -i)
		day := calendar.DayName(checkDate)

		var dayData *domain.DayData
		if week := routine.FindWeek(currentWeek - i/7); week != nil {
			dayData = week.Day(day)
		}

		workoutDone := dayData != nil && dayData.Workout != nil && dayData.Workout.Completed
		morningDone := dayData != nil && dayData.MorningRoutine != nil && dayData.MorningRoutine.Completed
		nightDone := dayData != nil && dayData.NightRoutine != nil && dayData.NightRoutine.Completed

		// Streak walk: tempStreak tracks the run in progress; currentStreak
		// is frozen at the first gap going back from today, longestStreak
		// keeps the best run anywhere in the window.
		if workoutDone || morningDone || nightDone {
			tempStreak++
			if !streakBroken {
				stats.CurrentStreak = tempStreak
			}
			if tempStreak > stats.LongestStreak {
				stats.LongestStreak = tempStreak
			}
			if stats.LastActiveDate == nil {
				active := checkDate
				stats.LastActiveDate = &active
			}
		} else {
			tempStreak = 0
			streakBroken = true
		}

		if scheduled[day] {
			totalWorkouts++
			if workoutDone {
				doneWorkouts++
			}
		}
		if morningDone {
			doneMorning++
		}
		if nightDone {
			doneNight++
		}
	}

	if totalWorkouts > 0 {
		stats.WeeklyCompletion = float64(doneWorkouts) / float64(totalWorkouts) * 100
		stats.MonthlyCompletion = stats.WeeklyCompletion
	}
	stats.TotalDaysActive = doneWorkouts + doneMorning + doneNight
	stats.Streaks = domain.StreakBreakdown{
		Workouts:        stats.CurrentStreak,
		MorningRoutines: doneMorning,
		NightRoutines:   doneNight,
	}
	return stats, nil
}
