package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"saasusync/internal/api/handlers"
	"saasusync/internal/api/middleware"
	"saasusync/internal/config"
	"saasusync/internal/database"
	"saasusync/internal/logger"
	"saasusync/internal/services/saasu"
	"saasusync/internal/sync"
	"saasusync/internal/synclog"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Wire the Saasu flows
	client := saasu.NewClient(cfg.SaasuAPIURL, cfg.SaasuKey, cfg.SaasuFileID, logger)
	store := synclog.NewStore(db.DB, logger)
	stockSyncer := sync.NewStockSyncer(cfg, logger, client, store)
	invoicePoster := sync.NewInvoicePoster(cfg, logger, client, store)
	hooks := sync.NewHooks(stockSyncer, invoicePoster)

	// Initialize handlers
	hooksHandler := handlers.NewHooksHandler(hooks, logger)
	recordHandler := handlers.NewSyncRecordHandler(store, logger)

	// Routes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"saasu_ready": cfg.SaasuValid(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Host lifecycle hooks
		hooksGroup := v1.Group("/hooks")
		{
			hooksGroup.POST("/variant-before-save", hooksHandler.VariantBeforeSave)
			hooksGroup.POST("/order-complete", hooksHandler.OrderComplete)
			hooksGroup.POST("/snapshot-fields", hooksHandler.SnapshotFields)
		}

		// Sync activity log
		v1.GET("/sync-records", recordHandler.List)
	}

	return &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// GetRouter exposes the Gin router for tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
