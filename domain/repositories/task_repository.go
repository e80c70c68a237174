package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// TaskFilter narrows List queries. Zero values (or "all") mean no filter.
type TaskFilter struct {
	Status    string
	Priority  string
	Search    string // case-insensitive substring over title OR description
	SortBy    string // createdAt | dueDate | priority | title
	SortOrder string // asc | desc
}

// TaskRepository is owner-scoped: every lookup and mutation other than
// Create carries the owning user's ID, and a task belonging to someone
// else behaves exactly like a missing one (ErrNotFound).
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}
