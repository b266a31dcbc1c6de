package domain

// DayOfWeek is the lowercase English day key used throughout the persisted
// routine shape ("monday".."sunday"). Keeping the string type means the JSON
// map keys stay wire-compatible with what the dashboard frontend already
// reads and writes.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// DaysOfWeek lists every day Monday-first, matching the weekly schedule order.
var DaysOfWeek = [7]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven known day keys.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// RoutineType selects one of the two daily routines. Dispatch is always via
// switch on this type, never via string concatenation.
type RoutineType string

const (
	RoutineMorning RoutineType = "morning"
	RoutineNight   RoutineType = "night"
)

// Valid reports whether t is a known routine type.
func (t RoutineType) Valid() bool {
	return t == RoutineMorning || t == RoutineNight
}
