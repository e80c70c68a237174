package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h)
	SetupUserRoutes(api, h, jwtSecret)
	SetupTaskRoutes(api, h, jwtSecret)
	SetupReminderRoutes(api, h, jwtSecret)
}
