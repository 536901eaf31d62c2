package handler

import (
	"net/http"
	"reactive-todo-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message any    `json:"message"`
}

// HandleError writes err as a JSON error response.
func HandleError(c echo.Context, err error) error {
	status, body := toResponse(err)
	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}
	return c.JSON(status, body)
}

// ErrorHandler is the echo HTTPErrorHandler of the app.
func ErrorHandler(logger *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		req := c.Request()
		// errors handled by the request logger bubble up a second time
		if c.Response().Committed {
			logger.Debugw("response already committed",
				"method", req.Method,
				"uri", req.RequestURI,
				"error", err,
			)
			return
		}

		status, _ := toResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Errorw("request failed",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", status,
				"error", err,
			)
		}

		if herr := HandleError(c, err); herr != nil {
			logger.Error(herr)
		}
	}
}

func toResponse(err error) (int, errorResponse) {
	if e, ok := model.AsError(err); ok {
		return e.Status, errorResponse{Code: e.Code, Message: e.Message}
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code, errorResponse{Code: codeOf(he.Code), Message: he.Message}
	}
	return http.StatusInternalServerError, errorResponse{
		Code:    model.InternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func codeOf(status int) string {
	switch {
	case status == http.StatusNotFound:
		return model.NotFoundError
	case status < http.StatusInternalServerError:
		return model.InvalidParamError
	default:
		return model.InternalServerError
	}
}
