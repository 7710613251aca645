package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "invoice-web-app/docs"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps groups the services the router needs.
type Deps struct {
	Invoices    InvoiceService
	Preferences PreferenceService
	DB          Pinger
}

// Options are the router settings taken from configuration.
type Options struct {
	BasePath       string
	Environment    string
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, opts Options) *gin.Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.LoggerWithWriter(logger.Writer()),
		gin.CustomRecoveryWithWriter(logger.Writer(), func(c *gin.Context, _ any) {
			respondError(c, http.StatusInternalServerError, "Internal server error", nil)
		}),
		cors.New(corsConfig(opts.AllowedOrigins)),
	)

	router.GET("/readyz", readyHandler(deps.DB))
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))

	api := router.Group(opts.BasePath)
	api.GET("/health", healthHandler(opts.Environment))

	if deps.Invoices != nil {
		h := &invoiceHandlers{svc: deps.Invoices, logger: logger}
		api.GET("/invoices", h.list)
		api.POST("/invoices", h.create)
		api.POST("/invoices/preview", h.preview)
		api.GET("/invoices/:id", h.get)
		api.PUT("/invoices/:id", h.update)
		api.DELETE("/invoices/:id", h.delete)
		api.PATCH("/invoices/:id/status", h.updateStatus)
		api.GET("/invoices/:id/pdf", h.pdf)
	}

	if deps.Preferences != nil {
		h := &preferenceHandlers{svc: deps.Preferences, logger: logger}
		api.GET("/users/preferences/theme", h.getTheme)
		api.PUT("/users/preferences/theme", h.setTheme)
		api.GET("/users/profile-image", h.getProfileImage)
		api.PUT("/users/profile-image", h.setProfileImage)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found: "+c.Request.URL.Path, nil)
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", userIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
