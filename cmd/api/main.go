package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"invoice-web-app/internal/config"
	"invoice-web-app/internal/db"
	"invoice-web-app/internal/httpserver"
	"invoice-web-app/internal/migrate"
	invoicerepo "invoice-web-app/internal/repository/invoice"
	preferencerepo "invoice-web-app/internal/repository/preference"
	invoicesvc "invoice-web-app/internal/service/invoice"
	preferencesvc "invoice-web-app/internal/service/preference"
)

// @title        Invoice API
// @version      1.0.0
// @description  Create, edit, and track client invoices and per-user preferences.
// @BasePath     /api/v1

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg := config.Load(logger)

	ctx := context.Background()
	handle := db.NewHandle(cfg.DBConnString, logger)
	defer handle.Close()

	if !cfg.DBLazyConnect || cfg.AutoMigrate {
		pool, err := handle.Pool(ctx)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		if cfg.AutoMigrate {
			if err := migrate.Apply(ctx, pool); err != nil {
				logger.Fatalf("apply migrations: %v", err)
			}
			logger.Printf("migrations applied")
		}
	}

	invoiceRepo := invoicerepo.NewPostgres(handle, logger)
	invoiceService := invoicesvc.New(invoiceRepo, logger)
	preferenceRepo := preferencerepo.NewPostgres(handle, logger)
	preferenceService := preferencesvc.New(preferenceRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Invoices:    invoiceService,
		Preferences: preferenceService,
		DB:          handle,
	}, httpserver.Options{
		BasePath:       cfg.APIBasePath,
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (env=%s, base=%s)", cfg.HTTPAddr, cfg.Environment, cfg.APIBasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
