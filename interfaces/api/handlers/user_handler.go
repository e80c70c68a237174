package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Failed to load profile", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) UpdateReminders(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateRemindersRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	updated, err := h.userService.SetNightlyReminders(ctx, user.ID, *req.Enabled)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Failed to toggle reminders", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(updated))
}
