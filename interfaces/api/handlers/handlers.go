package handlers

import (
	"taskmanager/domain/services"
)

// Services contains everything handlers need.
type Services struct {
	UserService     services.UserService
	TaskService     services.TaskService
	ReminderService services.ReminderService
	JWTSecret       string
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	TaskHandler     *TaskHandler
	ReminderHandler *ReminderHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.UserService),
		UserHandler:     NewUserHandler(services.UserService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		ReminderHandler: NewReminderHandler(services.ReminderService),
	}
}
