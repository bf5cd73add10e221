package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskdeck/internal/server/models"
)

// Repository is the ownership-scoped task store. Every method takes the
// owning user's id; there is deliberately no way to reach a task row
// without one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, userID, taskID string) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
