// Command main applies the database schema migrations for Ripple.
// Production deployments run this explicitly; in development the server
// auto-migrates on startup.
package main

import (
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(database.Models()...); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
