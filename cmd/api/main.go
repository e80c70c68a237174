package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
	"taskmanager/interfaces/api/routes"
	"taskmanager/pkg/di"
	"taskmanager/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.GetConfig().App.Name,
	})

	// Order matters: request id ต้องมาก่อน logger
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	h := handlers.NewHandlers(container.GetHandlerServices())
	routes.SetupRoutes(app, h, container.GetConfig().JWT.Secret)

	port := container.GetConfig().App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.GetConfig().App.Env,
		"app", container.GetConfig().App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
