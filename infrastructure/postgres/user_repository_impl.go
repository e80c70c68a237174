package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
)

type UserRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewUserRepository(db *gorm.DB, timeout time.Duration) repositories.UserRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &UserRepositoryImpl{db: db, timeout: timeout}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return translate(r.db.WithContext(ctx).
		Where("id = ?", user.ID).
		Select("name", "password", "nightly_reminders", "updated_at").
		Updates(user).Error)
}

func (r *UserRepositoryImpl) ListReminderOptIn(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var users []*models.User
	err := r.db.WithContext(ctx).Where("nightly_reminders = ?", true).Find(&users).Error
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}
