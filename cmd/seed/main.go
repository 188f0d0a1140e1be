// Command main runs the database seeder for Brainvault.
package main

import (
	"flag"
	"log"

	"brainvault/internal/config"
	"brainvault/internal/database"
	"brainvault/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 5, "Number of users to create")
	itemsPerUser := flag.Int("items", 10, "Content items per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d items each, clean=%v", *numUsers, *itemsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, cfg); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:     *numUsers,
		ItemsPerUser: *itemsPerUser,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done")
}
