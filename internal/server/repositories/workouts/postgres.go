// Package workouts provides the PostgreSQL-backed repository for per-user
// workout persistence. Every query carries the owner predicate; date reads
// use a half-open calendar-day window.
package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akimovd/traintrack/internal/common"
	"github.com/akimovd/traintrack/internal/dbx"
	"github.com/akimovd/traintrack/internal/server/models"
)

// PostgresRepository implements workout storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectNested is the single joined read that assembles the
// workout → link → catalog-exercise shape. Links and catalog names may be
// absent (LEFT JOIN), so their columns scan as nullable.
const selectNested = `SELECT w.id, w.user_id, w.name, w.started_at, w.completed_at, w.created_at, w.updated_at,
			we.id, we.exercise_id, e.name, we.sort_order
		FROM workouts w
		LEFT JOIN workout_exercises we ON we.workout_id = w.id
		LEFT JOIN exercises e ON e.id = we.exercise_id
		`

// dayWindow returns the half-open interval [start, end) covering the
// calendar day that contains t, in t's location. AddDate renormalizes, so
// days shortened or stretched by DST transitions still produce the next
// midnight.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// normalizeName maps nil and blank names to absent. The stored value is
// either NULL or a non-empty trimmed string, never "".
func normalizeName(name *string) sql.NullString {
	if name == nil {
		return sql.NullString{}
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: trimmed, Valid: true}
}

// ListByOwnerAndDate returns ownerID's workouts whose start timestamp falls
// on the calendar day containing day, each carrying its exercise entries.
// The owner and date predicates live in the same query; rows are never
// fetched unscoped and filtered afterwards. No matches is a normal outcome
// and yields an empty slice.
func (r *PostgresRepository) ListByOwnerAndDate(ctx context.Context, ownerID string, day time.Time) ([]*models.Workout, error) {
	query := selectNested + `WHERE w.user_id = $1 AND w.started_at >= $2 AND w.started_at < $3
		ORDER BY w.started_at, w.id, we.sort_order
		`
	from, to := dayWindow(day)

	rows, err := r.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to select workouts: %w", err)
	}
	defer rows.Close()

	return collectWorkouts(rows)
}

// GetByOwnerAndID returns the single workout matching both id and ownerID
// with the same nested shape as ListByOwnerAndDate. A missing row and a row
// owned by someone else take the same path and both return
// common.ErrorNotFound.
func (r *PostgresRepository) GetByOwnerAndID(ctx context.Context, ownerID string, id int64) (*models.Workout, error) {
	query := selectNested + `WHERE w.id = $1 AND w.user_id = $2
		ORDER BY we.sort_order
		`
	rows, err := r.db.QueryContext(ctx, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select workout: %w", err)
	}
	defer rows.Close()

	result, err := collectWorkouts(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, common.ErrorNotFound
	}
	return result[0], nil
}

// GetIDByOwnerAndID resolves a workout id under the owner predicate without
// loading the nested shape. Used as the scoping check inside transactional
// flows.
func (r *PostgresRepository) GetIDByOwnerAndID(ctx context.Context, ownerID string, id int64) (int64, error) {
	query := `SELECT id FROM workouts
		WHERE id = $1 AND user_id = $2
		`
	var got int64
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(&got)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return got, nil
}

// Create inserts a new workout owned by ownerID and returns the assigned
// id. Blank names are stored as NULL. Nothing else is created here;
// exercise links are a separate step.
func (r *PostgresRepository) Create(ctx context.Context, ownerID string, params CreateParams) (int64, error) {
	query := `INSERT INTO workouts (user_id, name, started_at)
		VALUES ($1, $2, $3)
		RETURNING id
		`
	var id int64
	err := r.db.QueryRowContext(ctx, query, ownerID, normalizeName(params.Name), params.StartedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// Update replaces name, start and completion timestamps in one conditional
// statement scoped to (id, owner) — not a read-then-write. Zero rows
// matched means common.ErrorNotFound, whether the workout is missing or
// belongs to another user.
func (r *PostgresRepository) Update(ctx context.Context, ownerID string, id int64, params UpdateParams) (int64, error) {
	query := `UPDATE workouts
		SET name = $1, started_at = $2, completed_at = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING id
		`
	var completedAt sql.NullTime
	if params.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *params.CompletedAt, Valid: true}
	}

	var got int64
	err := r.db.QueryRowContext(ctx, query,
		normalizeName(params.Name), params.StartedAt, completedAt, id, ownerID).Scan(&got)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return got, nil
}

// DeleteExercises removes all exercise links of a workout. The sets hanging
// off each link go with it via the schema's cascade rule. Ownership must
// already be established by the caller (see GetIDByOwnerAndID); this runs
// inside the same transaction.
func (r *PostgresRepository) DeleteExercises(ctx context.Context, workoutID int64) error {
	query := `DELETE FROM workout_exercises
		WHERE workout_id = $1
		`
	if _, err := r.db.ExecContext(ctx, query, workoutID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// AddExercise appends one exercise link to a workout and returns the link
// id. Referential checks (the exercise must exist) are enforced by the
// schema, not re-checked here.
func (r *PostgresRepository) AddExercise(ctx context.Context, workoutID int64, sel ExerciseSelection) (int64, error) {
	query := `INSERT INTO workout_exercises (workout_id, exercise_id, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id
		`
	var id int64
	err := r.db.QueryRowContext(ctx, query, workoutID, sel.ExerciseID, sel.SortOrder).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// collectWorkouts folds the joined rows into workouts with ordered exercise
// entries. Row order is produced by the query's ORDER BY, so grouping by
// workout id as rows stream in preserves both orderings.
func collectWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var result []*models.Workout
	var current *models.Workout

	for rows.Next() {
		var (
			w           models.Workout
			name        sql.NullString
			completedAt sql.NullTime
			linkID      sql.NullInt64
			exerciseID  sql.NullInt64
			exName      sql.NullString
			sortOrder   sql.NullInt64
		)
		if err := rows.Scan(
			&w.ID, &w.UserID, &name, &w.StartedAt, &completedAt, &w.CreatedAt, &w.UpdatedAt,
			&linkID, &exerciseID, &exName, &sortOrder,
		); err != nil {
			return nil, err
		}

		if current == nil || current.ID != w.ID {
			if name.Valid {
				w.Name = &name.String
			}
			if completedAt.Valid {
				t := completedAt.Time
				w.CompletedAt = &t
			}
			current = &w
			result = append(result, current)
		}

		if linkID.Valid {
			current.Exercises = append(current.Exercises, models.WorkoutExercise{
				ID:           linkID.Int64,
				WorkoutID:    current.ID,
				ExerciseID:   exerciseID.Int64,
				ExerciseName: exName.String,
				SortOrder:    int(sortOrder.Int64),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
