package models

// Set is one performed set within a workout-exercise link. It is carried
// by the schema (cascade-deleted with its link) but no server flow reads
// or writes sets yet.
type Set struct {
	ID                int64
	WorkoutExerciseID int64
	SetNumber         int
	Weight            *float64
	Reps              int
}
