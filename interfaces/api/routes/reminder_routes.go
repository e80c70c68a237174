package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupReminderRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	reminders := api.Group("/reminders")
	reminders.Use(middleware.Protected(jwtSecret))
	reminders.Post("/send", h.ReminderHandler.SendReminder)
}
