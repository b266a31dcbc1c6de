package domain

// WorkoutDefinition is the static workout content scheduled for one weekday,
// owned by the workout catalog (the content editor is out of scope). The
// completion engine's only structural dependency on it is the flattened set
// of exercise IDs across every group.
type WorkoutDefinition struct {
	ID        string    `bson:"_id" json:"id"`
	Day       DayOfWeek `bson:"day" json:"day"`
	Name      string    `bson:"name" json:"name"`
	VersionID string    `bson:"versionId" json:"versionId"`

	Warmup         *ExerciseGroup `bson:"warmup,omitempty" json:"warmup,omitempty"`
	Exercises      []Exercise     `bson:"exercises" json:"exercises"` // required main block
	Finisher       []Exercise     `bson:"finisher,omitempty" json:"finisher,omitempty"`
	MetabolicFlush *ExerciseGroup `bson:"metabolicFlush,omitempty" json:"metabolicFlush,omitempty"`
	Mobility       *ExerciseGroup `bson:"mobility,omitempty" json:"mobility,omitempty"`
}

// ExerciseGroup is a named block of exercises within a workout.
type ExerciseGroup struct {
	Name      string     `bson:"name,omitempty" json:"name,omitempty"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// Exercise is one entry in a workout block. Sets/reps/media belong to the
// content editor, not the engine.
type Exercise struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// AllExerciseIDs flattens every exercise ID across warmup, main block,
// finisher, metabolic flush and mobility, in declaration order.
func (w *WorkoutDefinition) AllExerciseIDs() []string {
	var ids []string
	appendGroup := func(group *ExerciseGroup) {
		if group == nil {
			return
		}
		for _, ex := range group.Exercises {
			ids = append(ids, ex.ID)
		}
	}
	appendGroup(w.Warmup)
	for _, ex := range w.Exercises {
		ids = append(ids, ex.ID)
	}
	for _, ex := range w.Finisher {
		ids = append(ids, ex.ID)
	}
	appendGroup(w.MetabolicFlush)
	appendGroup(w.Mobility)
	return ids
}
