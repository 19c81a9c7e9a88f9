package workouts

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// These tests exercise the referential rules the schema migration declares:
// workout → link → set cascades on delete, and a catalog exercise cannot be
// removed while links still reference it. The tables are recreated here in
// sqlite with the same ON DELETE behavior.
func setupSchemaDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:workouts_fk_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON;`)
	require.NoError(t, err)

	stmts := []string{
		`DROP TABLE IF EXISTS sets;`,
		`DROP TABLE IF EXISTS workout_exercises;`,
		`DROP TABLE IF EXISTS workouts;`,
		`DROP TABLE IF EXISTS exercises;`,
		`CREATE TABLE exercises (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL
		);`,
		`CREATE TABLE workouts (
			id INTEGER PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT,
			started_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE workout_exercises (
			id INTEGER PRIMARY KEY,
			workout_id INTEGER NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
			exercise_id INTEGER NOT NULL REFERENCES exercises (id) ON DELETE RESTRICT,
			sort_order INTEGER NOT NULL
		);`,
		`CREATE TABLE sets (
			id INTEGER PRIMARY KEY,
			workout_exercise_id INTEGER NOT NULL REFERENCES workout_exercises (id) ON DELETE CASCADE,
			set_number INTEGER NOT NULL,
			weight NUMERIC,
			reps INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		_, err = db.Exec(s)
		require.NoError(t, err)
	}
	return db
}

func seedWorkoutGraph(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO exercises (id, name, category) VALUES (1, 'Back Squat', 'Legs');`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO workouts (id, user_id, name, started_at) VALUES (1, 'u1', 'Leg Day', '2025-03-10T07:30:00Z');`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO workout_exercises (id, workout_id, exercise_id, sort_order) VALUES (1, 1, 1, 0);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO sets (id, workout_exercise_id, set_number, weight, reps) VALUES (1, 1, 1, 100.5, 5), (2, 1, 2, 102.5, 3);`)
	require.NoError(t, err)
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWorkoutDelete_CascadesToLinksAndSets(t *testing.T) {
	db := setupSchemaDB(t)
	seedWorkoutGraph(t, db)

	_, err := db.Exec(`DELETE FROM workouts WHERE id = 1;`)
	require.NoError(t, err)

	require.Equal(t, 0, count(t, db, "workout_exercises"), "links must go with the workout")
	require.Equal(t, 0, count(t, db, "sets"), "sets must go with the links")
	require.Equal(t, 1, count(t, db, "exercises"), "catalog rows are never cascaded")
}

func TestLinkDelete_CascadesToSetsOnly(t *testing.T) {
	db := setupSchemaDB(t)
	seedWorkoutGraph(t, db)

	_, err := db.Exec(`DELETE FROM workout_exercises WHERE id = 1;`)
	require.NoError(t, err)

	require.Equal(t, 0, count(t, db, "sets"))
	require.Equal(t, 1, count(t, db, "workouts"))
}

func TestReferencedExerciseDelete_IsRestricted(t *testing.T) {
	db := setupSchemaDB(t)
	seedWorkoutGraph(t, db)

	_, err := db.Exec(`DELETE FROM exercises WHERE id = 1;`)
	require.Error(t, err, "deleting a referenced catalog exercise must fail")
	require.Equal(t, 1, count(t, db, "exercises"))

	// once the referencing link is gone the delete succeeds
	_, err = db.Exec(`DELETE FROM workout_exercises WHERE id = 1;`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM exercises WHERE id = 1;`)
	require.NoError(t, err)
}
