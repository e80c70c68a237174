package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	users := api.Group("/users")
	users.Use(middleware.Protected(jwtSecret))
	users.Get("/me", h.UserHandler.GetProfile)
	users.Put("/me/reminders", h.UserHandler.UpdateReminders)
}
