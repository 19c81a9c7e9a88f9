package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/akimovd/traintrack/internal/common"
	"github.com/akimovd/traintrack/internal/dbx"
	"github.com/akimovd/traintrack/internal/server/models"
	"github.com/akimovd/traintrack/internal/server/repositories/repomanager"
	"github.com/akimovd/traintrack/internal/server/repositories/workouts"
)

// maxWorkoutNameLen matches the schema's name column bound.
const maxWorkoutNameLen = 100

type WorkoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWorkoutService(db *sql.DB, repomanager repomanager.RepositoryManager) *WorkoutService {
	return &WorkoutService{db: db, repomanager: repomanager}
}

func validateName(name *string) error {
	if name == nil {
		return nil
	}
	if utf8.RuneCountInString(*name) > maxWorkoutNameLen {
		return fmt.Errorf("%w: name longer than %d characters", common.ErrorValidation, maxWorkoutNameLen)
	}
	return nil
}

// ListByDate returns userID's workouts for the calendar day containing day.
// An empty day is a normal outcome, not an error.
func (s *WorkoutService) ListByDate(ctx context.Context, userID string, day time.Time) ([]*models.Workout, error) {
	repo := s.repomanager.Workouts(s.db)
	return repo.ListByOwnerAndDate(ctx, userID, day)
}

// GetByID returns one of userID's workouts with its exercise entries, or
// common.ErrorNotFound.
func (s *WorkoutService) GetByID(ctx context.Context, userID string, id int64) (*models.Workout, error) {
	repo := s.repomanager.Workouts(s.db)
	return repo.GetByOwnerAndID(ctx, userID, id)
}

// Create validates the input and inserts a new workout for userID,
// returning the assigned id.
func (s *WorkoutService) Create(ctx context.Context, userID string, params workouts.CreateParams) (int64, error) {
	if err := validateName(params.Name); err != nil {
		return 0, err
	}
	if params.StartedAt.IsZero() {
		return 0, fmt.Errorf("%w: started_at is required", common.ErrorValidation)
	}

	repo := s.repomanager.Workouts(s.db)
	return repo.Create(ctx, userID, params)
}

// Update validates the input and applies a single owner-scoped conditional
// update. common.ErrorNotFound propagates unchanged, for a missing workout
// and a foreign one alike.
func (s *WorkoutService) Update(ctx context.Context, userID string, id int64, params workouts.UpdateParams) (int64, error) {
	if err := validateName(params.Name); err != nil {
		return 0, err
	}
	if params.StartedAt.IsZero() {
		return 0, fmt.Errorf("%w: started_at is required", common.ErrorValidation)
	}

	repo := s.repomanager.Workouts(s.db)
	return repo.Update(ctx, userID, id, params)
}

// ReplaceExercises swaps the workout's exercise selection in one
// transaction: owner-scoped existence check, delete old links, insert the
// new ones. Sets attached to removed links go via the schema's cascade.
func (s *WorkoutService) ReplaceExercises(ctx context.Context, userID string, id int64, sels []workouts.ExerciseSelection) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Workouts(tx)

		if _, err := repo.GetIDByOwnerAndID(ctx, userID, id); err != nil {
			return err
		}
		if err := repo.DeleteExercises(ctx, id); err != nil {
			return err
		}
		for _, sel := range sels {
			if _, err := repo.AddExercise(ctx, id, sel); err != nil {
				return err
			}
		}
		return nil
	})
}
