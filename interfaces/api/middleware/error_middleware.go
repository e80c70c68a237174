package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// ErrorHandler is the last-resort handler for errors that escape the
// route handlers. Internal detail never reaches the caller.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "status", code)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
