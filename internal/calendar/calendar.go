// Package calendar holds the pure week-number and day-name functions the
// routine engine uses. Weeks are Monday-aligned.
package calendar

import (
	"time"

	"homeboard/fitness/internal/domain"
)

// mondayOffset returns how many days past Monday January 1st of the given
// year falls (Monday = 0 .. Sunday = 6).
func mondayOffset(year int, loc *time.Location) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return (int(jan1.Weekday()) + 6) % 7
}

// WeekNumber computes the Monday-based week number of t within its year:
// ceil((dayOfYear + jan1Offset + 1) / 7) with a zero-based day of year.
// Deterministic and pure; the number restarts at 1 every January, which is
// why week identity needs care across year boundaries.
func WeekNumber(t time.Time) int {
	dayOfYear := t.YearDay() - 1
	offset := mondayOffset(t.Year(), t.Location())
	return (dayOfYear + offset + 1 + 6) / 7
}

// WeekStart reconstructs the Monday of the given week number relative to
// now's year. Only used at week-creation time; the result can fall in the
// previous December when week 1 starts before January 1st.
func WeekStart(weekNumber int, now time.Time) time.Time {
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	offset := mondayOffset(now.Year(), now.Location())
	return jan1.AddDate(0, 0, 7*(weekNumber-1)-offset)
}

// DayName maps a date to its lowercase day-of-week key.
func DayName(t time.Time) domain.DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return domain.Monday
	case time.Tuesday:
		return domain.Tuesday
	case time.Wednesday:
		return domain.Wednesday
	case time.Thursday:
		return domain.Thursday
	case time.Friday:
		return domain.Friday
	case time.Saturday:
		return domain.Saturday
	default:
		return domain.Sunday
	}
}
