// Package exercises provides the PostgreSQL-backed reader for the shared
// exercise catalog.
package exercises

import (
	"context"
	"fmt"

	"github.com/akimovd/traintrack/internal/dbx"
	"github.com/akimovd/traintrack/internal/server/models"
)

// PostgresRepository implements catalog reads over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the full catalog ordered by category, then name. Downstream
// consumers group entries by category and rely on this order being stable.
// The catalog is shared reference data; there is no per-user filtering.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Exercise, error) {
	query := `SELECT id, name, category FROM exercises
		ORDER BY category, name
		`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	defer rows.Close()

	var result []*models.Exercise
	for rows.Next() {
		var item models.Exercise
		if err := rows.Scan(&item.ID, &item.Name, &item.Category); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
