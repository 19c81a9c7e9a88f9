// Package services contains the action layer sitting between transport
// handlers and repositories: input validation and repository orchestration.
// Owner identifiers are always explicit arguments supplied by the caller
// from a trusted source; services hold no ambient identity.
package services

import (
	"context"
	"database/sql"

	"github.com/akimovd/traintrack/internal/server/models"
	"github.com/akimovd/traintrack/internal/server/repositories/repomanager"
)

type ExerciseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExerciseService(db *sql.DB, repomanager repomanager.RepositoryManager) *ExerciseService {
	return &ExerciseService{db: db, repomanager: repomanager}
}

// List returns the shared exercise catalog ordered by category, then name.
func (s *ExerciseService) List(ctx context.Context) ([]*models.Exercise, error) {
	repo := s.repomanager.Exercises(s.db)
	return repo.List(ctx)
}
