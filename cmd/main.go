package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/toplistapp/toplist-server/cmd/api"
	"github.com/toplistapp/toplist-server/core"
	"github.com/toplistapp/toplist-server/db"
	"github.com/toplistapp/toplist-server/store"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			runMigrations()
			return
		default:
			log.Fatalf("Unknown command: %s", os.Args[1])
		}
	}

	startServer()
}

func runMigrations() {
	DB, err := db.NewPSQLStorage()
	if err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	defer func() {
		sqlDB, _ := DB.DB()
		sqlDB.Close()
		log.Println("Database connection closed")
	}()
	log.Println("Connected to the database for migrations")

	if err := performMigrations(DB); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	log.Println("Migrations completed successfully")
}

func performMigrations(DB *gorm.DB) error {
	log.Println("Starting database migrations...")
	for _, table := range store.Tables() {
		log.Printf("Migrating %T...", table)
		if err := DB.AutoMigrate(table); err != nil {
			return fmt.Errorf("error migrating %T: %w", table, err)
		}
	}
	log.Println("All migrations completed successfully")
	return nil
}

// newStore picks the storage backend: the in-memory reference store by
// default, postgres when STORE_BACKEND=postgres.
func newStore() (store.Store, func(), error) {
	switch backend := os.Getenv("STORE_BACKEND"); backend {
	case "", "memory":
		st := store.NewMemoryStore()
		if os.Getenv("SEED_DEMO") == "true" {
			store.SeedDemo(st)
			log.Println("Seeded demo data into the in-memory store")
		}
		return st, func() {}, nil
	case "postgres":
		DB, err := db.NewPSQLStorage()
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			sqlDB, _ := DB.DB()
			sqlDB.Close()
			log.Println("Database connection closed")
		}
		return store.NewGormStore(DB), closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND: %q", backend)
	}
}

func startServer() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	st, closeStore, err := newStore()
	if err != nil {
		log.Fatalf("Store initialization error: %v", err)
	}
	defer closeStore()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	server := api.NewApiServer(":"+port, core.New(st))

	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()
	log.Printf("Server running on port %s", port)

	<-quit
	log.Println("Shutting down server...")
}
