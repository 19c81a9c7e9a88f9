package repomanager

import (
	"context"
	"database/sql"

	"github.com/akimovd/traintrack/internal/dbx"
	"github.com/akimovd/traintrack/internal/server/repositories/exercises"
	"github.com/akimovd/traintrack/internal/server/repositories/workouts"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Exercises(db dbx.DBTX) exercises.Repository
	Workouts(db dbx.DBTX) workouts.Repository
}
