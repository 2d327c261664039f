package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/config"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database setup...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.ArchiveEnabled() {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	dbpool, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer dbpool.Close()

	dbManager := database.NewPostgresDBManager(context.Background(), dbpool)

	fmt.Println("Creating test_records table...")
	if err := dbManager.CreateTestRecordsTable(); err != nil {
		log.Fatalf("Error creating test_records table: %v", err)
	}
	fmt.Println("test_records table created successfully.")

	fmt.Println("Database setup finished successfully.")
}
