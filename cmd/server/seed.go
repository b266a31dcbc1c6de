package main

import (
	"github.com/google/uuid"

	"homeboard/fitness/internal/domain"
)

// defaultWeeklyRoutine is the aggregate a fresh installation starts from:
// the weekly focus schedule plus morning/night routine definitions with
// freshly minted stable IDs. Weeks start empty and are created lazily.
func defaultWeeklyRoutine() *domain.WeeklyRoutine {
	return &domain.WeeklyRoutine{
		Schedule: map[domain.DayOfWeek]domain.DayFocus{
			domain.Monday:    {Focus: "Push", Goal: "Chest, shoulders, triceps"},
			domain.Tuesday:   {Focus: "Pull", Goal: "Back and biceps"},
			domain.Wednesday: {Focus: "Rest", Goal: "Walk, easy mobility"},
			domain.Thursday:  {Focus: "Legs", Goal: "Squat pattern, posterior chain"},
			domain.Friday:    {Focus: "Conditioning", Goal: "Intervals and core"},
			domain.Saturday:  {Focus: "Full Body", Goal: "Light full-body circuit"},
			domain.Sunday:    {Focus: "Rest", Goal: "Full recovery day"},
		},
		DailyRoutines: domain.DailyRoutines{
			Morning: domain.RoutineDefinition{ID: uuid.NewString(), Name: "Morning Stretch"},
			Night:   domain.RoutineDefinition{ID: uuid.NewString(), Name: "Night Stretch"},
		},
	}
}

// defaultWorkoutDefinitions seeds the catalog for the five training days.
// Wednesday and Sunday stay rest days on purpose: the engine's
// "no workout defined" path is part of normal operation.
func defaultWorkoutDefinitions() []domain.WorkoutDefinition {
	exercises := func(names ...string) []domain.Exercise {
		out := make([]domain.Exercise, len(names))
		for i, name := range names {
			out[i] = domain.Exercise{ID: uuid.NewString(), Name: name}
		}
		return out
	}

	return []domain.WorkoutDefinition{
		{
			ID:        uuid.NewString(),
			Day:       domain.Monday,
			Name:      "Push Day",
			VersionID: uuid.NewString(),
			Warmup:    &domain.ExerciseGroup{Name: "Warmup", Exercises: exercises("Band Pull-Apart", "Scap Push-Up")},
			Exercises: exercises("Bench Press", "Overhead Press", "Incline Dumbbell Press", "Dips"),
			Finisher:  exercises("Triceps Pushdown"),
		},
		{
			ID:        uuid.NewString(),
			Day:       domain.Tuesday,
			Name:      "Pull Day",
			VersionID: uuid.NewString(),
			Warmup:    &domain.ExerciseGroup{Name: "Warmup", Exercises: exercises("Dead Hang", "Face Pull")},
			Exercises: exercises("Pull-Up", "Barbell Row", "Lat Pulldown", "Hammer Curl"),
			Mobility:  &domain.ExerciseGroup{Name: "Mobility", Exercises: exercises("Thoracic Rotation")},
		},
		{
			ID:             uuid.NewString(),
			Day:            domain.Thursday,
			Name:           "Leg Day",
			VersionID:      uuid.NewString(),
			Warmup:         &domain.ExerciseGroup{Name: "Warmup", Exercises: exercises("Leg Swing", "Goblet Squat")},
			Exercises:      exercises("Back Squat", "Romanian Deadlift", "Walking Lunge", "Calf Raise"),
			MetabolicFlush: &domain.ExerciseGroup{Name: "Flush", Exercises: exercises("Assault Bike")},
		},
		{
			ID:        uuid.NewString(),
			Day:       domain.Friday,
			Name:      "Conditioning",
			VersionID: uuid.NewString(),
			Exercises: exercises("Row Intervals", "Kettlebell Swing", "Plank", "Hanging Leg Raise"),
		},
		{
			ID:        uuid.NewString(),
			Day:       domain.Saturday,
			Name:      "Full Body Circuit",
			VersionID: uuid.NewString(),
			Exercises: exercises("Push-Up", "Inverted Row", "Split Squat", "Farmer Carry"),
		},
	}
}
