package serviceimpl

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func makeTask(mutate func(*models.Task)) *models.Task {
	task := &models.Task{
		ID:       uuid.New(),
		Title:    "task",
		Priority: models.PriorityMedium,
		Status:   models.StatusPending,
		UserID:   uuid.New(),
	}
	if mutate != nil {
		mutate(task)
	}
	return task
}

func TestClassifyTasks_OverdueRequiresDueDate(t *testing.T) {
	tasks := []*models.Task{
		makeTask(func(task *models.Task) {
			task.Status = models.StatusInProgress
			// no due date: never overdue
		}),
	}

	c := ClassifyTasks(tasks, testNow)

	if len(c.Overdue) != 0 {
		t.Errorf("task without due date classified as overdue")
	}
}

func TestClassifyTasks_OverdueAndPendingOverlap(t *testing.T) {
	// "Pay rent", due yesterday, still pending: lands in both sets.
	rent := makeTask(func(task *models.Task) {
		task.Title = "Pay rent"
		task.Status = models.StatusPending
		task.DueDate = timePtr(testNow.Add(-24 * time.Hour))
	})

	c := ClassifyTasks([]*models.Task{rent}, testNow)

	if len(c.Overdue) != 1 || c.Overdue[0].Title != "Pay rent" {
		t.Errorf("expected Pay rent in overdue set, got %d entries", len(c.Overdue))
	}
	if len(c.Pending) != 1 || c.Pending[0].Title != "Pay rent" {
		t.Errorf("expected Pay rent in pending set, got %d entries", len(c.Pending))
	}
}

func TestClassifyTasks_CompletedNeverOverdue(t *testing.T) {
	tasks := []*models.Task{
		makeTask(func(task *models.Task) {
			task.Status = models.StatusCompleted
			task.DueDate = timePtr(testNow.Add(-48 * time.Hour))
		}),
	}

	c := ClassifyTasks(tasks, testNow)

	if len(c.Overdue) != 0 {
		t.Errorf("completed task classified as overdue")
	}
}

func TestClassifyTasks_InProgressIncomplete(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		subtasks []models.Subtask
		want     bool
	}{
		{
			name:   "in-progress with one incomplete subtask",
			status: models.StatusInProgress,
			subtasks: []models.Subtask{
				{ID: "a", Title: "draft", Completed: true},
				{ID: "b", Title: "review", Completed: false},
			},
			want: true,
		},
		{
			name:   "in-progress with all subtasks completed",
			status: models.StatusInProgress,
			subtasks: []models.Subtask{
				{ID: "a", Title: "draft", Completed: true},
			},
			want: false,
		},
		{
			name:     "in-progress with zero subtasks",
			status:   models.StatusInProgress,
			subtasks: nil,
			want:     false,
		},
		{
			name:   "pending with incomplete subtasks",
			status: models.StatusPending,
			subtasks: []models.Subtask{
				{ID: "a", Title: "draft", Completed: false},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := makeTask(func(task *models.Task) {
				task.Status = tt.status
				task.Subtasks = tt.subtasks
			})

			c := ClassifyTasks([]*models.Task{task}, testNow)

			got := len(c.InProgressIncomplete) == 1
			if got != tt.want {
				t.Errorf("InProgressIncomplete membership = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildStats_EmptySet(t *testing.T) {
	stats := BuildStats(nil, testNow)

	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if stats.CompletionRate != 0 {
		t.Errorf("CompletionRate = %d, want 0 for empty set", stats.CompletionRate)
	}
}

func TestBuildStats_CompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"all completed", 3, 3, 100},
		{"none completed", 0, 4, 0},
		{"one of three rounds to 33", 1, 3, 33},
		{"two of three rounds to 67", 2, 3, 67},
		{"half", 1, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tasks []*models.Task
			for i := 0; i < tt.total; i++ {
				status := models.StatusPending
				if i < tt.completed {
					status = models.StatusCompleted
				}
				s := status
				tasks = append(tasks, makeTask(func(task *models.Task) {
					task.Status = s
				}))
			}

			stats := BuildStats(tasks, testNow)
			if stats.CompletionRate != tt.want {
				t.Errorf("CompletionRate = %d, want %d", stats.CompletionRate, tt.want)
			}
		})
	}
}

func TestBuildStats_Counts(t *testing.T) {
	tasks := []*models.Task{
		makeTask(func(task *models.Task) {
			task.Status = models.StatusPending
			task.Priority = models.PriorityHigh
			task.DueDate = timePtr(testNow.Add(-time.Hour)) // overdue
		}),
		makeTask(func(task *models.Task) {
			task.Status = models.StatusInProgress
			task.Priority = models.PriorityLow
			task.DueDate = timePtr(testNow.Add(3 * 24 * time.Hour)) // due soon
		}),
		makeTask(func(task *models.Task) {
			task.Status = models.StatusCompleted
			task.Priority = models.PriorityMedium
			task.DueDate = timePtr(testNow.Add(2 * 24 * time.Hour)) // completed: not due soon
		}),
		makeTask(func(task *models.Task) {
			task.Status = models.StatusPending
			task.Priority = models.PriorityMedium
			task.DueDate = timePtr(testNow.Add(10 * 24 * time.Hour)) // beyond the window
		}),
	}

	stats := BuildStats(tasks, testNow)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.ByStatus[models.StatusPending] != 2 {
		t.Errorf("pending count = %d, want 2", stats.ByStatus[models.StatusPending])
	}
	if stats.ByStatus[models.StatusInProgress] != 1 {
		t.Errorf("in-progress count = %d, want 1", stats.ByStatus[models.StatusInProgress])
	}
	if stats.ByPriority[models.PriorityHigh] != 1 {
		t.Errorf("high priority count = %d, want 1", stats.ByPriority[models.PriorityHigh])
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if stats.DueSoon != 1 {
		t.Errorf("DueSoon = %d, want 1", stats.DueSoon)
	}
	if stats.CompletionRate != 25 {
		t.Errorf("CompletionRate = %d, want 25", stats.CompletionRate)
	}
}

func TestBuildStats_DueSoonBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		dueDate time.Time
		want    int64
	}{
		{"due exactly now", testNow, 1},
		{"due exactly at the 7 day horizon", testNow.Add(7 * 24 * time.Hour), 1},
		{"due just past the horizon", testNow.Add(7*24*time.Hour + time.Second), 0},
		{"due just before now", testNow.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := tt.dueDate
			tasks := []*models.Task{
				makeTask(func(task *models.Task) {
					task.DueDate = &due
				}),
			}

			stats := BuildStats(tasks, testNow)
			if stats.DueSoon != tt.want {
				t.Errorf("DueSoon = %d, want %d", stats.DueSoon, tt.want)
			}
		})
	}
}
