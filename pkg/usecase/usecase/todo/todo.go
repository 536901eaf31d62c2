package usecase

import (
	"context"
	"iter"
	"reactive-todo-backend/pkg/entity/model"
	"reactive-todo-backend/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	List(ctx context.Context) iter.Seq2[*model.Todo, error]
	Get(ctx context.Context, id int64) (*model.Todo, error)
	Create(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) error
	Seed(ctx context.Context) error
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) List(ctx context.Context) iter.Seq2[*model.Todo, error] {
	return t.todoRepository.FindAll(ctx)
}

func (t *todoUseCase) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := t.todoRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, model.NewTodoNotFoundError(id)
	}
	return todo, nil
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.SaveTodoInput,
) (*model.Todo, error) {
	return t.todoRepository.Save(ctx, input)
}

// Update is an upsert: an input without an id is inserted like Create.
func (t *todoUseCase) Update(
	ctx context.Context,
	input model.SaveTodoInput,
) (*model.Todo, error) {
	return t.todoRepository.Save(ctx, input)
}

// Delete succeeds whether or not the id exists.
func (t *todoUseCase) Delete(ctx context.Context, id int64) error {
	return t.todoRepository.DeleteByID(ctx, id)
}
