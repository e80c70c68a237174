package services

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	SetNightlyReminders(ctx context.Context, userID uuid.UUID, enabled bool) (*models.User, error)
	GenerateJWT(user *models.User) (string, error)
}
