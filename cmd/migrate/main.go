package main

import (
	"context"
	"flag"
	"log"
	"os"

	"invoice-web-app/internal/config"
	"invoice-web-app/internal/db"
	"invoice-web-app/internal/migrate"
)

func main() {
	var (
		down    int
		version bool
	)
	flag.IntVar(&down, "down", 0, "Roll back this many migrations instead of applying")
	flag.BoolVar(&version, "version", false, "Print the applied schema version and exit")
	flag.Parse()

	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg := config.Load(logger)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	switch {
	case version:
		v, dirty, ok, err := migrate.Version(ctx, pool)
		if err != nil {
			logger.Fatalf("read version: %v", err)
		}
		if !ok {
			logger.Println("no migrations applied")
			return
		}
		logger.Printf("schema version %d (dirty=%t)", v, dirty)
	case down > 0:
		if err := migrate.Rollback(ctx, pool, down); err != nil {
			logger.Fatalf("roll back migrations: %v", err)
		}
		logger.Printf("rolled back %d migration(s)", down)
	default:
		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}
		logger.Println("migrations applied")
	}
}
