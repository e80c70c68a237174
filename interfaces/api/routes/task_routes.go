package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(jwtSecret))
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Delete("/", h.TaskHandler.DeleteTasks)
	// stats must register before /:id
	tasks.Get("/stats", h.TaskHandler.GetStats)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateTaskStatus)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
