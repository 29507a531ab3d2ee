package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appstore "github.com/nexera/storefront/internal/application/store"
	"github.com/nexera/storefront/internal/domain/store"
	"github.com/nexera/storefront/internal/infrastructure/ai"
	"github.com/nexera/storefront/internal/infrastructure/catalog"
	"github.com/nexera/storefront/internal/infrastructure/cloud"
	"github.com/nexera/storefront/internal/infrastructure/config"
	"github.com/nexera/storefront/internal/infrastructure/logger"
	"github.com/nexera/storefront/internal/infrastructure/persistence"
	"github.com/nexera/storefront/internal/interfaces/http/handler"
	"github.com/nexera/storefront/internal/interfaces/http/middleware"
	"github.com/nexera/storefront/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting storefront server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := persistence.NewDatabase(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	documents := persistence.NewDocumentStore(db.DB, log)
	products := catalog.NewDefaultProductRepository()
	sheets := cloud.NewSheetClient(cfg.Cloud.Timeout, log)

	var summarizer store.Summarizer
	if cfg.AI.APIKey != "" {
		gemini, err := ai.NewGeminiSummarizer(context.Background(), cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, log)
		if err != nil {
			log.Fatal("Failed to create summarizer", zap.Error(err))
		}
		summarizer = gemini
	} else {
		log.Warn("No AI API key configured, thank-you notes are disabled")
		summarizer = ai.NoopSummarizer{}
	}

	orderService := appstore.NewOrderService(documents, sheets, summarizer, log)
	if err := orderService.Load(context.Background()); err != nil {
		log.Fatal("Failed to load order history", zap.Error(err))
	}

	runtimeCfg, err := documents.LoadConfig(context.Background())
	if err != nil {
		log.Fatal("Failed to load runtime config", zap.Error(err))
	}
	endpoint := runtimeCfg.ScriptURL
	if endpoint == "" {
		endpoint = cfg.Cloud.ScriptURL
	}
	orderService.SetEndpoint(endpoint)

	// Catch up with the spreadsheet on startup, same as saving the
	// endpoint does
	if endpoint != "" {
		go func() {
			if _, err := orderService.Reconcile(context.Background()); err != nil {
				log.Warn("Startup reconcile failed", zap.Error(err))
			}
		}()
	}

	cartService := appstore.NewCartService(products)
	catalogService := appstore.NewCatalogService(products)
	settingsService := appstore.NewSettingsService(documents, orderService, log)

	middleware.RegisterCustomValidators()

	engine := gin.New()
	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		middleware.CORSWithConfig(corsConfig(cfg)),
		logger.GinMiddleware(log),
	)

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewCatalogHandler(catalogService))
	r.Register(handler.NewCartHandler(cartService))
	r.Register(handler.NewOrderHandler(orderService, cartService))
	r.Register(handler.NewSettingsHandler(settingsService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight cloud appends and summary patches finish
	orderService.Wait()

	log.Info("Server exited gracefully")
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	return corsCfg
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
