package controller

import (
	"context"
	"iter"
	"reactive-todo-backend/pkg/entity/model"
	usecase "reactive-todo-backend/pkg/usecase/usecase/todo"
)

type Todo interface {
	List(ctx context.Context) iter.Seq2[*model.Todo, error]
	Get(ctx context.Context, id int64) (*model.Todo, error)
	Create(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type todoController struct {
	todoUseCase usecase.Todo
}

// NewTodoController creates new todo controller
func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) List(ctx context.Context) iter.Seq2[*model.Todo, error] {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Get(ctx context.Context, id int64) (*model.Todo, error) {
	return tc.todoUseCase.Get(ctx, id)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.SaveTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Update(
	ctx context.Context,
	input model.SaveTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Update(ctx, input)
}

func (tc *todoController) Delete(ctx context.Context, id int64) error {
	return tc.todoUseCase.Delete(ctx, id)
}
