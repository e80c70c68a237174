package serviceimpl

import (
	"math"
	"time"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

// dueSoonWindow is how far ahead "due soon" looks.
const dueSoonWindow = 7 * 24 * time.Hour

// TaskClassification holds the derived sets used by reminders and stats.
// The sets are not mutually exclusive: a pending task with a past due
// date appears in both Overdue and Pending.
type TaskClassification struct {
	Overdue              []*models.Task
	Pending              []*models.Task
	InProgressIncomplete []*models.Task
}

// IsEmpty reports whether no task landed in any set.
func (c *TaskClassification) IsEmpty() bool {
	return len(c.Overdue) == 0 && len(c.Pending) == 0 && len(c.InProgressIncomplete) == 0
}

// ClassifyTasks computes the three reminder sets from a user's tasks
// against an explicit reference time. Pure function, no store access.
func ClassifyTasks(tasks []*models.Task, now time.Time) *TaskClassification {
	c := &TaskClassification{}
	for _, task := range tasks {
		if task.IsOverdue(now) {
			c.Overdue = append(c.Overdue, task)
		}
		if task.Status == models.StatusPending {
			c.Pending = append(c.Pending, task)
		}
		if task.Status == models.StatusInProgress && task.HasIncompleteSubtasks() {
			c.InProgressIncomplete = append(c.InProgressIncomplete, task)
		}
	}
	return c
}

// BuildStats computes aggregate statistics over a user's tasks.
func BuildStats(tasks []*models.Task, now time.Time) *dto.TaskStatsResponse {
	stats := &dto.TaskStatsResponse{
		Total: int64(len(tasks)),
		ByStatus: map[string]int64{
			models.StatusPending:    0,
			models.StatusInProgress: 0,
			models.StatusCompleted:  0,
		},
		ByPriority: map[string]int64{
			models.PriorityLow:    0,
			models.PriorityMedium: 0,
			models.PriorityHigh:   0,
		},
	}

	horizon := now.Add(dueSoonWindow)

	for _, task := range tasks {
		stats.ByStatus[task.Status]++
		stats.ByPriority[task.Priority]++

		if task.IsOverdue(now) {
			stats.Overdue++
		}

		// Due within the next 7 days, inclusive on both ends.
		if task.DueDate != nil && task.Status != models.StatusCompleted &&
			!task.DueDate.Before(now) && !task.DueDate.After(horizon) {
			stats.DueSoon++
		}
	}

	if stats.Total > 0 {
		completed := stats.ByStatus[models.StatusCompleted]
		stats.CompletionRate = int(math.Round(float64(completed) / float64(stats.Total) * 100))
	}

	return stats
}
