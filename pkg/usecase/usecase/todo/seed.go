package usecase

import (
	"context"
	"fmt"
	"reactive-todo-backend/pkg/entity/model"

	"github.com/hashicorp/go-multierror"
)

// SeedTodos are inserted on every start after the table is cleared.
var SeedTodos = []model.Todo{
	model.NewTodo("Hi this is my first todo!", false),
	model.NewTodo("This one I have acomplished!", true),
	model.NewTodo("And this is secret", false),
}

// Seed clears the todo table and inserts SeedTodos. Every failed insert is
// reported in the returned error.
func (t *todoUseCase) Seed(ctx context.Context) error {
	if err := t.todoRepository.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete todos: %w", err)
	}

	var result *multierror.Error
	for _, todo := range SeedTodos {
		if _, err := t.todoRepository.Save(ctx, todo.Input()); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to seed %s: %w", todo, err))
		}
	}
	return result.ErrorOrNil()
}
