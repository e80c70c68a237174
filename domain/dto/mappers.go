package dto

import "taskmanager/domain/models"

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	labels := task.Labels
	if labels == nil {
		labels = []string{}
	}

	subtasks := make([]SubtaskResponse, len(task.Subtasks))
	for i, st := range task.Subtasks {
		subtasks[i] = SubtaskResponse{
			ID:        st.ID,
			Title:     st.Title,
			Completed: st.Completed,
		}
	}

	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     task.DueDate,
		Labels:      labels,
		Subtasks:    subtasks,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func UserToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		NightlyReminders: user.NightlyReminders,
		CreatedAt:        user.CreatedAt,
	}
}
