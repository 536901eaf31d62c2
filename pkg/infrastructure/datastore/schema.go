package datastore

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
)

var todoTable = map[string]string{
	dialect.Postgres: `CREATE TABLE IF NOT EXISTS todo (
		id SERIAL PRIMARY KEY,
		text VARCHAR(255) NOT NULL,
		completed BOOLEAN DEFAULT FALSE
	)`,
	// SQLite does not enforce VARCHAR lengths.
	dialect.SQLite: `CREATE TABLE IF NOT EXISTS todo (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text VARCHAR(255) NOT NULL CHECK (length(text) <= 255),
		completed BOOLEAN DEFAULT FALSE
	)`,
}

// CreateSchema creates the todo table if it does not exist yet.
func CreateSchema(ctx context.Context, drv dialect.Driver) error {
	ddl, ok := todoTable[drv.Dialect()]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", drv.Dialect())
	}
	if err := drv.Exec(ctx, ddl, []any{}, nil); err != nil {
		return fmt.Errorf("failed creating todo table: %w", err)
	}
	return nil
}
