package todorepository

import (
	"context"
	"reactive-todo-backend/pkg/entity/model"
	ur "reactive-todo-backend/pkg/usecase/repository"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Table and columns of the todo table.
const (
	Table          = "todo"
	FieldID        = "id"
	FieldText      = "text"
	FieldCompleted = "completed"
)

// Columns holds all columns in selection order.
var Columns = []string{FieldID, FieldText, FieldCompleted}

type todoRepository struct {
	client dialect.Driver
}

func NewTodoRepository(client dialect.Driver) ur.Todo {
	return &todoRepository{client}
}

func (r *todoRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.client.Dialect())
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (*model.Todo, error) {
	var (
		id        int64
		text      string
		completed bool
	)
	if err := s.Scan(&id, &text, &completed); err != nil {
		return nil, err
	}
	return &model.Todo{ID: &id, Text: text, Completed: completed}, nil
}

// queryOne runs a statement returning at most one todo row. Rows are closed
// before returning so the connection can be reused inside a transaction.
func queryOne(ctx context.Context, q dialect.ExecQuerier, query string, args []any) (*model.Todo, error) {
	var rows entsql.Rows
	if err := q.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanTodo(&rows)
}

// withReturning appends the returned columns. Both supported dialects
// accept RETURNING after the VALUES and ON CONFLICT clauses.
func withReturning(query string) string {
	return query + " RETURNING " + strings.Join(Columns, ", ")
}

// textArg maps a missing text to NULL.
func textArg(text *string) any {
	if text == nil {
		return nil
	}
	return *text
}
