// Package models defines server-side data models persisted in the database.
package models

import "time"

// Workout is a single training session belonging to exactly one user.
// UserID is an opaque identifier issued by the external identity provider
// and is immutable after creation. Name and CompletedAt are pointers so
// "absent" stays distinct from zero values: a nil CompletedAt means the
// session is still in progress (or was never closed out).
type Workout struct {
	ID          int64
	UserID      string
	Name        *string
	StartedAt   time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Exercises carries the workout's exercise entries sorted by
	// SortOrder ascending when loaded through the repository.
	Exercises []WorkoutExercise
}

// WorkoutExercise links a workout to a catalog exercise with an explicit
// position. SortOrder is the sort key within the workout; values are not
// required to be contiguous or unique.
type WorkoutExercise struct {
	ID           int64
	WorkoutID    int64
	ExerciseID   int64
	ExerciseName string
	SortOrder    int
}
