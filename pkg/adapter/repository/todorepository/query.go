package todorepository

import (
	"context"
	"iter"
	"reactive-todo-backend/pkg/entity/model"

	entsql "entgo.io/ent/dialect/sql"
)

// FindAll streams every todo. The query runs when iteration starts and each
// row is yielded as soon as it is scanned.
func (r *todoRepository) FindAll(ctx context.Context) iter.Seq2[*model.Todo, error] {
	return func(yield func(*model.Todo, error) bool) {
		b := r.builder()
		t := b.Table(Table)
		query, args := b.Select(t.C(FieldID), t.C(FieldText), t.C(FieldCompleted)).
			From(t).
			OrderBy(t.C(FieldID)).
			Query()

		var rows entsql.Rows
		if err := r.client.Query(ctx, query, args, &rows); err != nil {
			yield(nil, model.NewDBError(err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			todo, err := scanTodo(&rows)
			if err != nil {
				yield(nil, model.NewDBError(err))
				return
			}
			if !yield(todo, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, model.NewDBError(err))
		}
	}
}

// FindByID returns nil without error when no row matches.
func (r *todoRepository) FindByID(ctx context.Context, id int64) (*model.Todo, error) {
	b := r.builder()
	t := b.Table(Table)
	query, args := b.Select(t.C(FieldID), t.C(FieldText), t.C(FieldCompleted)).
		From(t).
		Where(entsql.EQ(t.C(FieldID), id)).
		Query()

	todo, err := queryOne(ctx, r.client, query, args)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return todo, nil
}
