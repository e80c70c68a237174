package models

import (
	"time"

	"github.com/google/uuid"
)

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Subtask is a value object stored inside its parent task.
// IDs are unique within the parent only.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"size:1000"`
	Priority    string    `gorm:"size:20;default:'medium';index"`
	Status      string    `gorm:"size:20;default:'pending';index"`
	DueDate     *time.Time
	Labels      []string  `gorm:"serializer:json"`
	Subtasks    []Subtask `gorm:"serializer:json"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task has a due date strictly before now
// and is not completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusCompleted
}

// HasIncompleteSubtasks reports whether at least one subtask is not done.
// Tasks with no subtasks never qualify.
func (t *Task) HasIncompleteSubtasks() bool {
	for _, st := range t.Subtasks {
		if !st.Completed {
			return true
		}
	}
	return false
}

// ValidPriority checks a priority value against the known enum.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStatus checks a status value against the known enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
