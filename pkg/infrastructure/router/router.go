package router

import (
	"net/http"
	"reactive-todo-backend/pkg/adapter/controller"
	"reactive-todo-backend/pkg/adapter/rest"
	"reactive-todo-backend/pkg/infrastructure/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Path of route
const (
	apiPath  = "/api"
	todoPath = "/todo"
)

const (
	TodoPath     = apiPath + todoPath
	TodoItemPath = TodoPath + "/:id"
	HealthPath   = "/health_check"
)

// Options of router
type Options struct {
	Logger *zap.SugaredLogger
}

// New creates route endpoint
func New(ctrl controller.Controller, options Options) *echo.Echo {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))

	e.GET(HealthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	todo := rest.NewTodoHandler(ctrl.Todo)
	{
		e.GET(TodoPath, todo.List)
		e.POST(TodoPath, todo.Create)
		e.PUT(TodoPath, todo.Update)
		e.GET(TodoItemPath, todo.Get)
		e.DELETE(TodoItemPath, todo.Delete)
	}

	return e
}

func requestLogger(logger *zap.SugaredLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.Warnw("request", append(fields, "error", v.Error)...)
				return nil
			}
			logger.Infow("request", fields...)
			return nil
		},
	})
}
