package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

type errorResponse struct {
	Detail any `json:"detail"`
}

// NewErrorHandler renders every error as {"detail": ...}. Errors that are
// neither echo nor application errors are store failures and become a 500.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status int
			detail any
			he     *echo.HTTPError
		)
		if errors.As(err, &he) {
			status = he.Code
			detail = he.Message
		} else {
			status = apperrors.StatusCode(err)
			detail = apperrors.Detail(err)
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse{Detail: detail})
		}
		if err != nil {
			log.Error("failed to write error response", zap.Error(err))
		}
	}
}
