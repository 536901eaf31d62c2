package todorepository

import (
	"context"
	"reactive-todo-backend/pkg/entity/model"
)

// Save inserts a todo without an id, or upserts one that carries an id.
func (r *todoRepository) Save(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error) {
	if input.ID != nil {
		return r.upsert(ctx, input)
	}

	query, args := r.builder().Insert(Table).
		Columns(FieldText, FieldCompleted).
		Values(textArg(input.Text), input.Completed).
		Query()
	query = withReturning(query)

	todo, err := queryOne(ctx, r.client, query, args)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return todo, nil
}
