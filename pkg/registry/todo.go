package registry

import (
	"reactive-todo-backend/pkg/adapter/controller"
	todorepository "reactive-todo-backend/pkg/adapter/repository/todorepository"
	usecase "reactive-todo-backend/pkg/usecase/usecase/todo"
)

func (r *registry) NewTodoUseCase() usecase.Todo {
	repo := todorepository.NewTodoRepository(r.client)
	return usecase.NewTodoUseCase(repo)
}

func (r *registry) NewTodoController() controller.Todo {
	return controller.NewTodoController(r.NewTodoUseCase())
}
