package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	redispkg "taskmanager/infrastructure/redis"
	"taskmanager/pkg/logger"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	statsCacheTTL     = 60 * time.Second
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	cache    *redispkg.Client // nil disables stats caching
}

func NewTaskService(taskRepo repositories.TaskRepository, cache *redispkg.Client) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		cache:    cache,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	title, description, err := normalizeTitleAndDescription(req.Title, req.Description)
	if err != nil {
		logger.WarnContext(ctx, "Task validation failed", "user_id", userID, "error", err)
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
		Subtasks:    subtasksFromInput(req.Subtasks),
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, userID, taskID)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	return s.taskRepo.List(ctx, userID, filter)
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", services.ErrValidation)
		}
		if utf8.RuneCountInString(title) > maxTitleLen {
			return nil, fmt.Errorf("%w: title must be at most %d characters", services.ErrValidation, maxTitleLen)
		}
		task.Title = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLen {
			return nil, fmt.Errorf("%w: description must be at most %d characters", services.ErrValidation, maxDescriptionLen)
		}
		task.Description = description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Labels != nil {
		task.Labels = *req.Labels
	}
	if req.Subtasks != nil {
		task.Subtasks = subtasksFromInput(*req.Subtasks)
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, userID, taskID uuid.UUID, status string) (*models.Task, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be pending, in-progress or completed", services.ErrValidation)
	}
	return s.UpdateTask(ctx, userID, taskID, &dto.UpdateTaskRequest{Status: &status})
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, userID, taskID); err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)
	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

// DeleteTasks bulk-deletes by id list, restricted to the caller's own
// tasks: ids owned by someone else are simply not counted.
func (s *TaskServiceImpl) DeleteTasks(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	count, err := s.taskRepo.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to bulk delete tasks", "user_id", userID, "error", err)
		return 0, err
	}

	s.invalidateStats(ctx, userID)
	logger.InfoContext(ctx, "Tasks deleted", "user_id", userID, "requested", len(ids), "deleted", count)
	return count, nil
}

func (s *TaskServiceImpl) GetStats(ctx context.Context, userID uuid.UUID) (*dto.TaskStatsResponse, error) {
	key := statsCacheKey(userID)

	if s.cache != nil {
		var cached dto.TaskStatsResponse
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	tasks, err := s.taskRepo.List(ctx, userID, repositories.TaskFilter{})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load tasks for stats", "user_id", userID, "error", err)
		return nil, err
	}

	stats := BuildStats(tasks, time.Now())

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, stats, statsCacheTTL); err != nil {
			logger.WarnContext(ctx, "Failed to cache stats", "user_id", userID, "error", err)
		}
	}

	return stats, nil
}

func (s *TaskServiceImpl) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey(userID)); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate stats cache", "user_id", userID, "error", err)
	}
}

func statsCacheKey(userID uuid.UUID) string {
	return "stats:" + userID.String()
}

func normalizeTitleAndDescription(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", services.ErrValidation)
	}
	// Limits are in characters, not bytes, so multibyte titles are not
	// penalized.
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "", "", fmt.Errorf("%w: title must be at most %d characters", services.ErrValidation, maxTitleLen)
	}

	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "", "", fmt.Errorf("%w: description must be at most %d characters", services.ErrValidation, maxDescriptionLen)
	}

	return title, description, nil
}

// subtasksFromInput keeps the incoming order and assigns ids to new
// entries so every subtask id is unique within its parent.
func subtasksFromInput(inputs []dto.SubtaskInput) []models.Subtask {
	if inputs == nil {
		return nil
	}
	subtasks := make([]models.Subtask, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		subtasks[i] = models.Subtask{
			ID:        id,
			Title:     strings.TrimSpace(in.Title),
			Completed: in.Completed,
		}
	}
	return subtasks
}
