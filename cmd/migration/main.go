package main

import (
	"context"
	"log"
	"reactive-todo-backend/config"
	"reactive-todo-backend/pkg/infrastructure/datastore"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("failed opening database client: %v", err)
	}
	defer client.Close()

	if err := datastore.CreateSchema(context.Background(), client); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}
	log.Println("Schema created successfully!")
}
