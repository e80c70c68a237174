package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ListReminderOptIn(ctx context.Context) ([]*models.User, error)
}
