package repositoryutil

import (
	"context"

	"entgo.io/ent/dialect"
	"github.com/hashicorp/go-multierror"
)

// WithTx runs fn inside a transaction, committing when fn succeeds and
// rolling back otherwise.
func WithTx(ctx context.Context, drv dialect.Driver, fn func(tx dialect.Tx) error) error {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return multierror.Append(err, rerr)
		}
		return err
	}
	return tx.Commit()
}
