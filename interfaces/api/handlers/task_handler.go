package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(c.UserContext(), user.ID, taskID)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.TaskFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	filter := repositories.TaskFilter{
		Status:    req.Status,
		Priority:  req.Priority,
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	tasks, err := h.taskService.ListTasks(ctx, user.ID, filter)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *dto.TaskToTaskResponse(task)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *TaskHandler) GetStats(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.taskService.GetStats(c.UserContext(), user.ID)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, stats)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTaskStatus(ctx, user.ID, taskID, req.Status)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(c.UserContext(), user.ID, taskID); err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) DeleteTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.DeleteTasksRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	// All ids must parse before anything is deleted.
	ids := make([]uuid.UUID, len(req.IDs))
	for i, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid task ID: "+raw)
		}
		ids[i] = id
	}

	count, err := h.taskService.DeleteTasks(ctx, user.ID, ids)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteTasksResponse{DeletedCount: count})
}

// parseTaskID rejects malformed ids before any store access.
func parseTaskID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// taskErrorResponse maps service errors onto the response envelope.
// Missing and other-owner tasks produce the same NOT_FOUND to avoid
// leaking which tasks exist.
func taskErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, repositories.ErrTimeout):
		return utils.ServiceUnavailableResponse(c, "")
	default:
		logger.ErrorContext(c.UserContext(), "Task operation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
