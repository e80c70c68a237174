package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type ReminderHandler struct {
	reminderService services.ReminderService
}

func NewReminderHandler(reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// SendReminder is the on-demand "send now" action. It always delivers,
// even when there is nothing outstanding.
func (h *ReminderHandler) SendReminder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.reminderService.SendReminder(ctx, user.ID, time.Now()); err != nil {
		switch {
		case errors.Is(err, services.ErrDelivery):
			logger.WarnContext(ctx, "On-demand reminder delivery failed", "user_id", user.ID, "error", err)
			return utils.DeliveryFailedResponse(c)
		case errors.Is(err, repositories.ErrNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, repositories.ErrTimeout):
			return utils.ServiceUnavailableResponse(c, "")
		default:
			logger.ErrorContext(ctx, "On-demand reminder failed", "user_id", user.ID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Reminder sent"})
}
