package workouts

import (
	"context"
	"time"

	"github.com/akimovd/traintrack/internal/server/models"
)

// CreateParams carries the fields a caller may set when creating a workout.
// Name is optional; a nil or blank name is stored as absent.
type CreateParams struct {
	Name      *string
	StartedAt time.Time
}

// UpdateParams carries the replaceable fields of a workout. CompletedAt nil
// marks the session as still open.
type UpdateParams struct {
	Name        *string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// ExerciseSelection is one entry of a workout's exercise list. SortOrder is
// the display sort key; values need not be contiguous or unique.
type ExerciseSelection struct {
	ExerciseID int64
	SortOrder  int
}

// Repository is the owner-scoped workout store. Every operation takes the
// owning user's identifier explicitly; there is no way to address a workout
// by id alone. Lookups and scoped updates that match no row return
// common.ErrorNotFound regardless of whether the row is missing or owned by
// someone else.
type Repository interface {
	ListByOwnerAndDate(ctx context.Context, ownerID string, day time.Time) ([]*models.Workout, error)
	GetByOwnerAndID(ctx context.Context, ownerID string, id int64) (*models.Workout, error)
	GetIDByOwnerAndID(ctx context.Context, ownerID string, id int64) (int64, error)
	Create(ctx context.Context, ownerID string, params CreateParams) (int64, error)
	Update(ctx context.Context, ownerID string, id int64, params UpdateParams) (int64, error)
	DeleteExercises(ctx context.Context, workoutID int64) error
	AddExercise(ctx context.Context, workoutID int64, sel ExerciseSelection) (int64, error)
}
