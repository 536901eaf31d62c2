package todorepository

import (
	"context"
	"reactive-todo-backend/pkg/entity/model"

	entsql "entgo.io/ent/dialect/sql"
)

// DeleteByID is a no-op when the id does not exist.
func (r *todoRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args := r.builder().Delete(Table).
		Where(entsql.EQ(FieldID, id)).
		Query()

	if err := r.client.Exec(ctx, query, args, nil); err != nil {
		return model.NewDBError(err)
	}
	return nil
}

func (r *todoRepository) DeleteAll(ctx context.Context) error {
	query, args := r.builder().Delete(Table).Query()

	if err := r.client.Exec(ctx, query, args, nil); err != nil {
		return model.NewDBError(err)
	}
	return nil
}
