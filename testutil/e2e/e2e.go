package e2e

import (
	"context"
	"net/http/httptest"
	"reactive-todo-backend/pkg/infrastructure/router"
	"reactive-todo-backend/pkg/registry"
	"reactive-todo-backend/testutil"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/gavv/httpexpect/v2"
)

// SetupOption is an option of Setup
type SetupOption struct {
	TearDown func(t *testing.T, client dialect.Driver)
	// SkipSeed leaves the todo table empty.
	SkipSeed bool
}

// Setup starts the app against a fresh seeded database and returns an
// expectation client bound to it.
func Setup(t *testing.T, option SetupOption) (expect *httpexpect.Expect, client dialect.Driver, teardown func()) {
	t.Helper()
	testutil.ReadConfigE2E()

	client = testutil.NewSQLiteDBClient(t)
	r := registry.New(client)

	if !option.SkipSeed {
		if err := r.NewTodoUseCase().Seed(context.Background()); err != nil {
			t.Fatalf("failed seeding todos: %v", err)
		}
	}

	e := router.New(r.NewController(), router.Options{})
	srv := httptest.NewServer(e)

	return httpexpect.Default(t, srv.URL), client, func() {
		if option.TearDown != nil {
			option.TearDown(t, client)
		}
		srv.Close()
	}
}
