package main

import (
	"context"
	"flag"
	"log"
	"os"
	"reactive-todo-backend/config"
	"reactive-todo-backend/pkg/infrastructure/datastore"
	"reactive-todo-backend/pkg/registry"
)

func main() {
	// Parse command line flags
	env := flag.String("env", "", "Environment (development, test, e2e, staging, production)")
	migrate := flag.Bool("migrate", true, "Create the todo table before seeding")
	flag.Parse()

	// Set environment if provided via flag, otherwise rely on APP_ENV or default
	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}

	config.ReadConfig(config.ReadConfigOption{})
	log.Printf("Starting seed tool for environment: %s", config.C.AppEnv)

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to create database client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if *migrate {
		if err := datastore.CreateSchema(ctx, client); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	log.Println("Seeding todos...")
	if err := registry.New(client).NewTodoUseCase().Seed(ctx); err != nil {
		log.Fatalf("Failed to seed todos: %v", err)
	}

	log.Println("Seeding completed successfully!")
}
