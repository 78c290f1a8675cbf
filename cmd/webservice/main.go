package main

import (
	"log"

	"github.com/benho/store-management/config"
	"github.com/benho/store-management/internal/app"

	postgresDriver "github.com/benho/store-management/internal/infrastructure/database/postgres"
	kafkaInfra "github.com/benho/store-management/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	if err := postgresDriver.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate the database schema: %v", err)
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	if config.KafkaConfig.BrokerAddress != "" {
		conn, err := kafkaInfra.CreateKafkaProducer(config)
		if err != nil {
			log.Fatalf("Failed to connect to the message broker: %v", err)
		}
		server.KafkaConn = conn
	}

	server.Start()
}
