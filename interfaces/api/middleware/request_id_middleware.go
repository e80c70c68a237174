package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskmanager/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware accepts a client-provided request id or mints one,
// echoes it in the response header and seeds the logging context.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)

		ctx := logger.ContextWithRequestID(c.Context(), requestID)
		c.SetUserContext(ctx)
		c.Locals("request_id", requestID)

		return c.Next()
	}
}
