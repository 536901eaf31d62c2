package registry

import (
	"reactive-todo-backend/pkg/adapter/controller"
	usecase "reactive-todo-backend/pkg/usecase/usecase/todo"

	"entgo.io/ent/dialect"
)

type registry struct {
	client dialect.Driver
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
	NewTodoUseCase() usecase.Todo
}

// New registers entire controller with dependencies
func New(client dialect.Driver) Registry {
	return &registry{client: client}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
