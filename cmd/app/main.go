package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"reactive-todo-backend/config"
	"reactive-todo-backend/pkg/adapter/controller"
	"reactive-todo-backend/pkg/infrastructure/datastore"
	"reactive-todo-backend/pkg/infrastructure/logger"
	"reactive-todo-backend/pkg/infrastructure/router"
	"reactive-todo-backend/pkg/registry"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	"go.uber.org/zap"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	l := logger.New()
	defer l.Sync()

	client := newDBClient()
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := registry.New(client)
	initStorage(ctx, l, client, r)

	e := router.New(newController(r), router.Options{Logger: l})

	go func() {
		if err := e.Start(":" + config.C.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout())
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Errorw("failed to shut down server", "error", err)
	}
}

func newDBClient() dialect.Driver {
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to open db connection: %v", err)
	}
	return client
}

func newController(r registry.Registry) controller.Controller {
	return r.NewController()
}

// initStorage creates the todo table and reseeds it. Failures are logged
// and the server starts anyway.
func initStorage(ctx context.Context, l *zap.SugaredLogger, client dialect.Driver, r registry.Registry) {
	if err := datastore.CreateSchema(ctx, client); err != nil {
		l.Errorw("failed to create schema", "error", err)
	}
	if !config.C.Seed.Enabled {
		return
	}
	if err := r.NewTodoUseCase().Seed(ctx); err != nil {
		l.Errorw("failed to seed todos", "error", err)
		return
	}
	l.Info("todo table seeded")
}

func shutdownTimeout() time.Duration {
	if d := config.C.Server.ShutdownTimeout; d > 0 {
		return d
	}
	return 10 * time.Second
}
