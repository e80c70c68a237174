package services

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, taskID uuid.UUID, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	DeleteTasks(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*dto.TaskStatsResponse, error)
}
