//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"iter"
	"reactive-todo-backend/pkg/entity/model"
)

// Todo is an interface of repository
type Todo interface {
	FindAll(ctx context.Context) iter.Seq2[*model.Todo, error]
	FindByID(ctx context.Context, id int64) (*model.Todo, error)
	Save(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
