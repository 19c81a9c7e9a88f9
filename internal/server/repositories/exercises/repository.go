package exercises

import (
	"context"

	"github.com/akimovd/traintrack/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Exercise, error)
}
