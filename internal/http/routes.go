package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "task-manager-api.com/task-manager-api/internal/http/middlewares"
)

// Register wires middlewares and routes onto e. A nil limiter disables
// rate limiting.
func Register(e *echo.Echo, h *Handler, limiter middleware.Limiter, log *zap.Logger) {
	e.HTTPErrorHandler = NewErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.BodyLimit("1M"))
	if limiter != nil {
		e.Use(middleware.RateLimiter(limiter, log))
	}

	e.GET("/", h.Root)
	e.GET("/healthz", h.Health)

	for _, path := range []string{"/tasks", "/tasks/"} {
		e.POST(path, h.CreateTask)
		e.GET(path, h.ListTasks)
	}
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
