package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"invoice-web-app/internal/config"
	"invoice-web-app/internal/db"
	"invoice-web-app/internal/importer"
	invoicerepo "invoice-web-app/internal/repository/invoice"
	invoicesvc "invoice-web-app/internal/service/invoice"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to the invoice CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg := config.Load(logger)
	ctx := context.Background()

	handle := db.NewHandle(cfg.DBConnString, logger)
	defer handle.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := invoicesvc.New(invoicerepo.NewPostgres(handle, logger), logger)
	imp := importer.NewCSVImporter(f, svc)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d invoices: %v", count, err)
	}

	fmt.Printf("Imported %d invoices in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
