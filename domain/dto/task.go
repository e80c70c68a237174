package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubtaskInput struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	Title     string `json:"title" validate:"required,max=200"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Description string         `json:"description" validate:"omitempty,max=1000"`
	Priority    string         `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string         `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	DueDate     *time.Time     `json:"dueDate" validate:"omitempty"`
	Labels      []string       `json:"labels" validate:"omitempty,dive,max=50"`
	Subtasks    []SubtaskInput `json:"subtasks" validate:"omitempty,dive"`
}

// UpdateTaskRequest is a partial update: nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string         `json:"title" validate:"omitempty,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=1000"`
	Priority    *string         `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      *string         `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	DueDate     *time.Time      `json:"dueDate" validate:"omitempty"`
	Labels      *[]string       `json:"labels" validate:"omitempty,dive,max=50"`
	Subtasks    *[]SubtaskInput `json:"subtasks" validate:"omitempty,dive"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed"`
}

type DeleteTasksRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type TaskFilterRequest struct {
	Status    string `query:"status" validate:"omitempty,oneof=all pending in-progress completed"`
	Priority  string `query:"priority" validate:"omitempty,oneof=all low medium high"`
	Search    string `query:"search" validate:"omitempty,max=200"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=createdAt dueDate priority title"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type SubtaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	DueDate     *time.Time        `json:"dueDate"`
	Labels      []string          `json:"labels"`
	Subtasks    []SubtaskResponse `json:"subtasks"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type DeleteTasksResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type TaskStatsResponse struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	ByPriority     map[string]int64 `json:"byPriority"`
	DueSoon        int64            `json:"dueSoon"`
	Overdue        int64            `json:"overdue"`
	CompletionRate int              `json:"completionRate"`
}
