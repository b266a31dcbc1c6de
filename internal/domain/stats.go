package domain

import "time"

// ConsistencyStats is the derived 30-day rolling view: streaks, completion
// percentages and per-activity counts. Computed read-only from the aggregate.
//
// WeeklyCompletion and MonthlyCompletion are currently both derived from the
// same 30-day window; the distinct 7-day calculation the name suggests never
// existed in the dashboard. Preserved as-is (see DESIGN.md).
type ConsistencyStats struct {
	CurrentStreak     int             `json:"currentStreak"`
	LongestStreak     int             `json:"longestStreak"`
	WeeklyCompletion  float64         `json:"weeklyCompletion"`
	MonthlyCompletion float64         `json:"monthlyCompletion"`
	TotalDaysActive   int             `json:"totalDaysActive"`
	LastActiveDate    *time.Time      `json:"lastActiveDate,omitempty"`
	Streaks           StreakBreakdown `json:"streaks"`
}

// StreakBreakdown mirrors the dashboard's per-activity numbers: the workout
// figure is the current streak, the routine figures are 30-day completion
// counts.
type StreakBreakdown struct {
	Workouts        int `json:"workouts"`
	MorningRoutines int `json:"morningRoutines"`
	NightRoutines   int `json:"nightRoutines"`
}

// WeeklyProgress is a read-only projection over a single week, distinct from
// the 30-day ConsistencyStats.
type WeeklyProgress struct {
	WeekNumber               int                       `json:"weekNumber"`
	StartDate                string                    `json:"startDate,omitempty"`
	CompletedWorkouts        int                       `json:"completedWorkouts"`
	TotalWorkouts            int                       `json:"totalWorkouts"`
	SkippedWorkouts          int                       `json:"skippedWorkouts"`
	CompletedMorningRoutines int                       `json:"completedMorningRoutines"`
	TotalMorningRoutines     int                       `json:"totalMorningRoutines"`
	CompletedNightRoutines   int                       `json:"completedNightRoutines"`
	TotalNightRoutines       int                       `json:"totalNightRoutines"`
	WorkoutsByDay            map[DayOfWeek]DayProgress `json:"workoutsByDay"`
}

// DayProgress is one day's per-activity completion snapshot.
type DayProgress struct {
	WorkoutScheduled bool              `json:"workoutScheduled"`
	Workout          *ActivityProgress `json:"workout,omitempty"`
	MorningRoutine   *ActivityProgress `json:"morningRoutine,omitempty"`
	NightRoutine     *ActivityProgress `json:"nightRoutine,omitempty"`
}

// ActivityProgress summarizes one completion record for the progress view.
type ActivityProgress struct {
	Completed          bool   `json:"completed"`
	Skipped            bool   `json:"skipped"`
	SkippedReason      string `json:"skippedReason,omitempty"`
	ExercisesCompleted int    `json:"exercisesCompleted,omitempty"`
}

// ExerciseCompletionResult is returned by incremental exercise completion so
// the caller can reflect partial progress without re-reading the aggregate.
type ExerciseCompletionResult struct {
	AllComplete        bool     `json:"allComplete"`
	ExercisesCompleted []string `json:"exercisesCompleted"`
}
