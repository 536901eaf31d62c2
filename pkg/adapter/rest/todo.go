package rest

import (
	"encoding/json"
	"net/http"
	"reactive-todo-backend/pkg/adapter/controller"
	"reactive-todo-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// TodoHandler serves the todo endpoints.
type TodoHandler struct {
	todo controller.Todo
}

func NewTodoHandler(todo controller.Todo) *TodoHandler {
	return &TodoHandler{todo: todo}
}

// List writes every todo as one JSON array, flushing after each element so
// clients receive rows as the database returns them. A failure before the
// first element becomes an error response; a later one truncates the body.
func (h *TodoHandler) List(c echo.Context) error {
	res := c.Response()
	enc := json.NewEncoder(res)

	started := false
	start := func() error {
		started = true
		res.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		res.WriteHeader(http.StatusOK)
		_, err := res.Write([]byte("["))
		return err
	}

	for todo, err := range h.todo.List(c.Request().Context()) {
		if err != nil {
			return err
		}
		if !started {
			if err := start(); err != nil {
				return err
			}
		} else if _, err := res.Write([]byte(",")); err != nil {
			return err
		}
		if err := enc.Encode(todo); err != nil {
			return err
		}
		res.Flush()
	}

	if !started {
		if err := start(); err != nil {
			return err
		}
	}
	_, err := res.Write([]byte("]"))
	return err
}

func (h *TodoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	todo, err := h.todo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Create(c echo.Context) error {
	var input model.SaveTodoInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	todo, err := h.todo.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Update(c echo.Context) error {
	var input model.SaveTodoInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	todo, err := h.todo.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete answers 200 with an empty body, also for unknown ids.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.todo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, model.NewInvalidParamError(err, "id")
	}
	return id, nil
}
