package main

import (
	"context"
	"log"
	"os"

	"invoice-web-app/internal/config"
	"invoice-web-app/internal/db"
	invoicerepo "invoice-web-app/internal/repository/invoice"
	"invoice-web-app/internal/seed"
	invoicesvc "invoice-web-app/internal/service/invoice"
)

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg := config.Load(logger)

	ctx := context.Background()
	handle := db.NewHandle(cfg.DBConnString, logger)
	defer handle.Close()

	svc := invoicesvc.New(invoicerepo.NewPostgres(handle, logger), logger)
	n, err := seed.Apply(ctx, svc)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}
	if n == 0 {
		logger.Println("store not empty, nothing seeded")
		return
	}
	logger.Printf("seeded %d invoices", n)
}
