package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/services"
)

const APIVersion = "1.0.0"

type Handler struct {
	taskService *services.TaskService
	log         *zap.Logger
}

func NewHandler(taskService *services.TaskService, log *zap.Logger) *Handler {
	return &Handler{
		taskService: taskService,
		log:         log,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.RootResponse{
		Message: "Welcome to Task Manager API",
		Docs:    "/docs",
		Version: APIVersion,
	})
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.taskService.Ping(c.Request().Context()); err != nil {
		h.log.Error("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *Handler) CreateTask(c echo.Context) error {
	req, err := validators.DecodeCreateTaskRequest(c.Request().Body)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	q, err := validators.ParseListTasksQuery(c.QueryParams())
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskListResponse(tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	task, found, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.TaskNotFound(id)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	req, err := validators.DecodeUpdateTaskRequest(c.Request().Body)
	if err != nil {
		return err
	}

	task, found, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.TaskNotFound(id)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	deleted, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.TaskNotFound(id)
	}

	return c.NoContent(http.StatusNoContent)
}
