package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// Protected validates the bearer token and sets the resolved identity
// in c.Locals("user"). Handlers take the acting owner from there only.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			case utils.ErrInvalidToken:
				return utils.UnauthorizedResponse(c, "Invalid token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}
