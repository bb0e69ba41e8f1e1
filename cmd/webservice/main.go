package main

import (
	"context"
	"fmt"
	"log"

	"github.com/digimenu/catalog-service/config"
	"github.com/digimenu/catalog-service/internal/app"
	"github.com/digimenu/catalog-service/internal/infrastructure/database/mongodb"
)

func main() {
	config := config.CreateNewConfig()
	db, err := mongodb.GetDBInstance(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	defer db.Client().Disconnect(context.Background())

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
