package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Registration failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	token, err := h.userService.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token after registration", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Login failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}
