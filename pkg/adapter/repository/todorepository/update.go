package todorepository

import (
	"context"
	"reactive-todo-backend/pkg/adapter/repository/repositoryutil"
	"reactive-todo-backend/pkg/entity/model"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Sequence backs the serial id column on PostgreSQL.
const Sequence = Table + "_" + FieldID + "_seq"

// advanceSequence moves the sequence past an id supplied by a client and
// never moves it backwards.
const advanceSequence = `SELECT setval('` + Sequence + `', $1) FROM ` + Sequence +
	` WHERE $1 > CASE WHEN is_called THEN last_value ELSE last_value - 1 END`

func (r *todoRepository) upsert(ctx context.Context, input model.SaveTodoInput) (*model.Todo, error) {
	query, args := r.builder().Insert(Table).
		Columns(FieldID, FieldText, FieldCompleted).
		Values(*input.ID, textArg(input.Text), input.Completed).
		OnConflict(
			entsql.ConflictColumns(FieldID),
			entsql.ResolveWithNewValues(),
		).
		Query()
	query = withReturning(query)

	var todo *model.Todo
	err := repositoryutil.WithTx(ctx, r.client, func(tx dialect.Tx) error {
		var err error
		todo, err = queryOne(ctx, tx, query, args)
		if err != nil {
			return err
		}
		if r.client.Dialect() == dialect.Postgres {
			return tx.Exec(ctx, advanceSequence, []any{*input.ID}, nil)
		}
		return nil
	})
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return todo, nil
}
