package testutil

import (
	"context"
	"fmt"
	"os"
	"reactive-todo-backend/config"
	"reactive-todo-backend/pkg/infrastructure/datastore"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/oklog/ulid/v2"
)

// PostgresDSNEnv names the variable holding the DSN of a PostgreSQL
// database that tests may use and clear.
const PostgresDSNEnv = "TEST_POSTGRES_DSN"

// NewDBClient opens the database configured for the current environment
// and creates the schema. The test is skipped when the database is not
// reachable.
func NewDBClient(t *testing.T) dialect.Driver {
	client, err := datastore.NewClient()
	if err != nil {
		t.Fatalf("failed opening database: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	if err := ping(client); err != nil {
		t.Skipf("database not reachable: %v", err)
	}
	migrate(t, client)
	return client
}

// NewPostgresDBClient points the test config at the PostgreSQL database in
// TEST_POSTGRES_DSN and returns an empty todo table on it.
func NewPostgresDBClient(t *testing.T) dialect.Driver {
	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", PostgresDSNEnv)
	}

	ReadConfig()
	config.C.Database.Driver = datastore.DriverPgx
	config.C.Database.DSN = dsn

	client := NewDBClient(t)
	DropTodo(t, client)
	return client
}

// NewSQLiteDBClient opens a private in-memory SQLite database with the
// schema in place. It is closed when the test ends.
func NewSQLiteDBClient(t *testing.T) dialect.Driver {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", ulid.Make().String())
	client, err := datastore.Open(datastore.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed opening sqlite: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	migrate(t, client)
	return client
}

func ping(client dialect.Driver) error {
	var rows entsql.Rows
	if err := client.Query(context.Background(), "SELECT 1", []any{}, &rows); err != nil {
		return err
	}
	return rows.Close()
}

func migrate(t *testing.T, client dialect.Driver) {
	if err := datastore.CreateSchema(context.Background(), client); err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropTodo drops all the data from todos.
func DropTodo(t *testing.T, client dialect.Driver) {
	ctx := context.Background()
	err := client.Exec(ctx, "DELETE FROM todo", []any{}, nil)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}
