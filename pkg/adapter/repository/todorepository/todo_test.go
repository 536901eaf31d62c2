package todorepository_test

import (
	"context"
	"reactive-todo-backend/pkg/adapter/repository/todorepository"
	"reactive-todo-backend/pkg/entity/model"
	ur "reactive-todo-backend/pkg/usecase/repository"
	"reactive-todo-backend/testutil"
	"strings"
	"sync"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func setup(t *testing.T) (client dialect.Driver, repo ur.Todo) {
	client = testutil.NewSQLiteDBClient(t)
	return client, todorepository.NewTodoRepository(client)
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func collect(t *testing.T, repo ur.Todo) []*model.Todo {
	t.Helper()
	var todos []*model.Todo
	for todo, err := range repo.FindAll(context.Background()) {
		require.NoError(t, err)
		todos = append(todos, todo)
	}
	return todos
}

func TestTodoRepository_Save(t *testing.T) {
	testSave(t, testutil.NewSQLiteDBClient(t))
}

func TestTodoRepository_Save_Postgres(t *testing.T) {
	testSave(t, testutil.NewPostgresDBClient(t))
}

func testSave(t *testing.T, client dialect.Driver) {
	repo := todorepository.NewTodoRepository(client)

	type args struct {
		ctx context.Context
	}

	tests := []struct {
		name     string
		arrange  func(t *testing.T) *model.Todo
		act      func(ctx context.Context, t *testing.T, existing *model.Todo) (*model.Todo, error)
		assert   func(t *testing.T, existing *model.Todo, got *model.Todo, err error)
		args     args
		teardown func(t *testing.T)
	}{
		{
			name:    "It should insert a todo and assign an id",
			arrange: func(t *testing.T) *model.Todo { return nil },
			act: func(ctx context.Context, t *testing.T, _ *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{Text: strPtr("x")})
			},
			assert: func(t *testing.T, _ *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				require.NotNil(t, got.ID)
				assert.Equal(t, "x", got.Text)
				assert.False(t, got.Completed)

				todos := collect(t, repo)
				require.Len(t, todos, 1)
				assert.True(t, todos[0].Equal(*got))
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
		{
			name: "It should update an existing todo in place",
			arrange: func(t *testing.T) *model.Todo {
				todo, err := repo.Save(context.Background(), model.SaveTodoInput{Text: strPtr("x")})
				require.NoError(t, err)
				return todo
			},
			act: func(ctx context.Context, t *testing.T, existing *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{ID: existing.ID, Text: strPtr("y"), Completed: true})
			},
			assert: func(t *testing.T, existing *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				assert.Equal(t, *existing.ID, *got.ID)

				todos := collect(t, repo)
				require.Len(t, todos, 1)
				assert.True(t, todos[0].Equal(model.Todo{ID: existing.ID, Text: "y", Completed: true}))
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
		{
			name:    "It should insert a todo whose id does not exist yet",
			arrange: func(t *testing.T) *model.Todo { return nil },
			act: func(ctx context.Context, t *testing.T, _ *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{ID: int64Ptr(100), Text: strPtr("z")})
			},
			assert: func(t *testing.T, _ *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(100), *got.ID)

				next, err := repo.Save(context.Background(), model.SaveTodoInput{Text: strPtr("after")})
				require.NoError(t, err)
				assert.Greater(t, *next.ID, int64(100))
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
		{
			name: "It should never hand out an id again after an upsert",
			arrange: func(t *testing.T) *model.Todo {
				var saved []*model.Todo
				for _, text := range []string{"a", "b", "c"} {
					todo, err := repo.Save(context.Background(), model.SaveTodoInput{Text: strPtr(text)})
					require.NoError(t, err)
					saved = append(saved, todo)
				}
				highest := saved[len(saved)-1]
				require.NoError(t, repo.DeleteByID(context.Background(), *highest.ID))
				_, err := repo.Save(context.Background(), model.SaveTodoInput{ID: saved[0].ID, Text: strPtr("a2")})
				require.NoError(t, err)
				return highest
			},
			act: func(ctx context.Context, t *testing.T, _ *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{Text: strPtr("d")})
			},
			assert: func(t *testing.T, deleted *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				assert.Greater(t, *got.ID, *deleted.ID)
				assert.Len(t, collect(t, repo), 3)
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
		{
			name:    "It should accept text of 255 characters",
			arrange: func(t *testing.T) *model.Todo { return nil },
			act: func(ctx context.Context, t *testing.T, _ *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{Text: strPtr(strings.Repeat("a", 255))})
			},
			assert: func(t *testing.T, _ *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				assert.Len(t, got.Text, 255)
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
		{
			name:    "It should reject text of 256 characters",
			arrange: func(t *testing.T) *model.Todo { return nil },
			act: func(ctx context.Context, t *testing.T, _ *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{Text: strPtr(strings.Repeat("a", 256))})
			},
			assert: func(t *testing.T, _ *model.Todo, got *model.Todo, err error) {
				require.Error(t, err)
				assert.Nil(t, got)
				e, ok := model.AsError(err)
				require.True(t, ok)
				assert.Equal(t, model.DBError, e.Code)
				assert.Empty(t, collect(t, repo))
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
		{
			name:    "It should reject a null text",
			arrange: func(t *testing.T) *model.Todo { return nil },
			act: func(ctx context.Context, t *testing.T, _ *model.Todo) (*model.Todo, error) {
				return repo.Save(ctx, model.SaveTodoInput{Completed: true})
			},
			assert: func(t *testing.T, _ *model.Todo, got *model.Todo, err error) {
				require.Error(t, err)
				assert.Nil(t, got)
			},
			args:     args{ctx: context.Background()},
			teardown: func(t *testing.T) { testutil.DropTodo(t, client) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			existing := tt.arrange(t)
			// Act
			got, err := tt.act(tt.args.ctx, t, existing)
			// Assert
			tt.assert(t, existing, got, err)
			// TearDown
			tt.teardown(t)
		})
	}
}

func TestTodoRepository_FindByID(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr("x"), Completed: true})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, *saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(*saved))

	missing, err := repo.FindByID(ctx, *saved.ID+1)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTodoRepository_FindAll(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	assert.Empty(t, collect(t, repo))

	for _, text := range []string{"a", "b", "c"} {
		_, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr(text)})
		require.NoError(t, err)
	}

	todos := collect(t, repo)
	require.Len(t, todos, 3)

	// stopping early must release the rows
	for todo, err := range repo.FindAll(ctx) {
		require.NoError(t, err)
		assert.Equal(t, "a", todo.Text)
		break
	}
	_, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr("d")})
	require.NoError(t, err)
	assert.Len(t, collect(t, repo), 4)
}

func TestTodoRepository_FindAll_Canceled(t *testing.T) {
	_, repo := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for _, err := range repo.FindAll(ctx) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.Error(t, errs[0])
}

func TestTodoRepository_DeleteByID(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	keep, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr("keep")})
	require.NoError(t, err)
	drop, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr("drop")})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, *drop.ID))
	require.NoError(t, repo.DeleteByID(ctx, *drop.ID), "deleting twice should not fail")
	require.NoError(t, repo.DeleteByID(ctx, 12345))

	todos := collect(t, repo)
	require.Len(t, todos, 1)
	assert.True(t, todos[0].Equal(*keep))
}

func TestTodoRepository_DeleteAll(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr("x")})
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteAll(ctx))
	assert.Empty(t, collect(t, repo))
}

func TestTodoRepository_ConcurrentSave(t *testing.T) {
	testConcurrentSave(t, testutil.NewSQLiteDBClient(t))
}

func TestTodoRepository_ConcurrentSave_Postgres(t *testing.T) {
	testConcurrentSave(t, testutil.NewPostgresDBClient(t))
}

// testConcurrentSave mixes inserts with upserts of an existing todo.
func testConcurrentSave(t *testing.T, client dialect.Driver) {
	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	first, err := repo.Save(ctx, model.SaveTodoInput{Text: strPtr("first")})
	require.NoError(t, err)

	const n = 10
	var (
		mu  sync.Mutex
		ids = make(map[int64]struct{})
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := repo.Save(gctx, model.SaveTodoInput{ID: first.ID, Text: strPtr("upserted")})
			return err
		})
		g.Go(func() error {
			todo, err := repo.Save(gctx, model.SaveTodoInput{Text: strPtr("concurrent")})
			if err != nil {
				return err
			}
			mu.Lock()
			ids[*todo.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, ids, n, "every save should get a distinct id")
	assert.NotContains(t, ids, *first.ID)
	assert.Len(t, collect(t, repo), n+1)
}
