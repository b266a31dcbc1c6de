package domain

import (
	"sort"
	"time"
)

// WeeklyRoutine is the single top-level aggregate: the weekly schedule, the
// two daily routine definitions, and every recorded week. There is exactly
// one per installation; it is created once at seed time and mutated in place
// by every write operation.
type WeeklyRoutine struct {
	ID            string                 `bson:"_id" json:"id"`
	Schedule      map[DayOfWeek]DayFocus `bson:"schedule" json:"schedule"`
	DailyRoutines DailyRoutines          `bson:"dailyRoutines" json:"dailyRoutines"`
	Weeks         []Week                 `bson:"weeks" json:"weeks"`

	// Revision backs the optimistic-concurrency check at save time. It lives
	// only in the database document, not in the JSON aggregate the frontend
	// consumes, so the wire shape is unchanged.
	Revision int64 `bson:"revision" json:"-"`
}

// DayFocus is one entry of the weekly schedule: what the day is for.
type DayFocus struct {
	Focus string `bson:"focus" json:"focus"`
	Goal  string `bson:"goal" json:"goal"`
}

// DailyRoutines holds the morning and night routine definitions.
type DailyRoutines struct {
	Morning RoutineDefinition `bson:"morning" json:"morning"`
	Night   RoutineDefinition `bson:"night" json:"night"`
}

// RoutineDefinition identifies one daily routine. The engine only depends on
// the stable ID; the content (steps, durations) is owned by the routine
// editor and is out of scope here.
type RoutineDefinition struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Week is one calendar week's record of per-day completion data. Days is
// sparse: an absent day means nothing was recorded.
//
// Note the identity is weekNumber alone, with no stored year. The start date
// is reconstructed relative to "now" at creation time, so week 52 of last
// year and week 52 of this year collide. Kept as-is for compatibility with
// the persisted shape; see DESIGN.md.
type Week struct {
	WeekNumber int                    `bson:"weekNumber" json:"weekNumber"`
	StartDate  string                 `bson:"startDate" json:"startDate"`
	Days       map[DayOfWeek]*DayData `bson:"days" json:"days"`
}

// Day returns the day's record or nil if nothing was recorded.
func (w *Week) Day(day DayOfWeek) *DayData {
	if w.Days == nil {
		return nil
	}
	return w.Days[day]
}

// EnsureDay returns the day's record, creating an empty one first if needed.
func (w *Week) EnsureDay(day DayOfWeek) *DayData {
	if w.Days == nil {
		w.Days = make(map[DayOfWeek]*DayData)
	}
	if w.Days[day] == nil {
		w.Days[day] = &DayData{}
	}
	return w.Days[day]
}

// DayData holds the per-activity completion records for one day. All three
// are optional; an absent record means the activity is unrecorded.
type DayData struct {
	Workout        *CompletionRecord `bson:"workout,omitempty" json:"workout,omitempty"`
	MorningRoutine *CompletionRecord `bson:"morningRoutine,omitempty" json:"morningRoutine,omitempty"`
	NightRoutine   *CompletionRecord `bson:"nightRoutine,omitempty" json:"nightRoutine,omitempty"`
}

// Routine returns the routine record for the given type, or nil.
func (d *DayData) Routine(typ RoutineType) *CompletionRecord {
	switch typ {
	case RoutineMorning:
		return d.MorningRoutine
	case RoutineNight:
		return d.NightRoutine
	}
	return nil
}

// SetRoutine replaces (or with nil, removes) the routine record for the
// given type.
func (d *DayData) SetRoutine(typ RoutineType, rec *CompletionRecord) {
	switch typ {
	case RoutineMorning:
		d.MorningRoutine = rec
	case RoutineNight:
		d.NightRoutine = rec
	}
}

// CompletionRecord is the mutable per-activity state for one day. Workout
// records carry WorkoutID and ExercisesCompleted; morning/night records carry
// RoutineID instead.
//
// RoutineVersionID stamps which edition of the definition was active when the
// record was first written. Once set it is never overwritten by any later
// mutation of the same record, so history stays accurate across content edits.
type CompletionRecord struct {
	WorkoutID          string     `bson:"workoutId,omitempty" json:"workoutId,omitempty"`
	RoutineID          string     `bson:"routineId,omitempty" json:"routineId,omitempty"`
	Completed          bool       `bson:"completed" json:"completed"`
	CompletedAt        *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Skipped            bool       `bson:"skipped,omitempty" json:"skipped,omitempty"`
	SkippedAt          *time.Time `bson:"skippedAt,omitempty" json:"skippedAt,omitempty"`
	SkippedReason      string     `bson:"skippedReason,omitempty" json:"skippedReason,omitempty"`
	RoutineVersionID   string     `bson:"routineVersionId,omitempty" json:"routineVersionId,omitempty"`
	ExercisesCompleted []string   `bson:"exercisesCompleted,omitempty" json:"exercisesCompleted,omitempty"`
}

// AddExercises merges ids into ExercisesCompleted with set semantics: the
// result is sorted and deduplicated, and only ever grows.
func (r *CompletionRecord) AddExercises(ids []string) {
	if len(ids) == 0 {
		return
	}
	seen := make(map[string]bool, len(r.ExercisesCompleted)+len(ids))
	for _, id := range r.ExercisesCompleted {
		seen[id] = true
	}
	for _, id := range ids {
		if id != "" {
			seen[id] = true
		}
	}
	merged := make([]string, 0, len(seen))
	for id := range seen {
		merged = append(merged, id)
	}
	sort.Strings(merged)
	r.ExercisesCompleted = merged
}

// HasAllExercises reports whether ExercisesCompleted is a superset of ids.
func (r *CompletionRecord) HasAllExercises(ids []string) bool {
	done := make(map[string]bool, len(r.ExercisesCompleted))
	for _, id := range r.ExercisesCompleted {
		done[id] = true
	}
	for _, id := range ids {
		if !done[id] {
			return false
		}
	}
	return true
}

// StampVersion records versionID if no version stamp exists yet. A stamp
// already present always wins.
func (r *CompletionRecord) StampVersion(versionID string) {
	if r.RoutineVersionID == "" {
		r.RoutineVersionID = versionID
	}
}

// FindWeek returns the week with the given number, or nil.
func (r *WeeklyRoutine) FindWeek(weekNumber int) *Week {
	for i := range r.Weeks {
		if r.Weeks[i].WeekNumber == weekNumber {
			return &r.Weeks[i]
		}
	}
	return nil
}

// RoutineDefinition returns the morning or night definition for the given
// type. Callers must validate typ first.
func (r *WeeklyRoutine) RoutineDefinition(typ RoutineType) RoutineDefinition {
	if typ == RoutineNight {
		return r.DailyRoutines.Night
	}
	return r.DailyRoutines.Morning
}
