package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/comunidad/backend/internal/application/catalog"
	communityapp "github.com/comunidad/backend/internal/application/community"
	showcaseapp "github.com/comunidad/backend/internal/application/showcase"
	storeapp "github.com/comunidad/backend/internal/application/store"
	syncapp "github.com/comunidad/backend/internal/application/sync"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/infrastructure/cache"
	"github.com/comunidad/backend/internal/infrastructure/config"
	"github.com/comunidad/backend/internal/infrastructure/logger"
	"github.com/comunidad/backend/internal/infrastructure/persistence"
	"github.com/comunidad/backend/internal/interfaces/http/handler"
	"github.com/comunidad/backend/internal/interfaces/http/middleware"
	"github.com/comunidad/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Mercado Backend API
//	@version		1.0
//	@description	Community marketplace backend - stores publish products into community showcases

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Mercado Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	communityRepo := persistence.NewGormCommunityRepository(db.DB)
	membershipRepo := persistence.NewGormMembershipRepository(db.DB)
	projectionRepo := persistence.NewGormCommunityProductRepository(db.DB)

	// Projection sync: the synchronizer refreshes single rows, the
	// reconciler drives bulk runs behind a run lock
	synchronizer := syncapp.NewSynchronizer(productRepo, storeRepo, projectionRepo)

	var runLock syncapp.RunLock
	if cfg.Sync.LockEnabled {
		redisLock, err := cache.NewRedisSyncLock(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Sync.LockKey, cfg.Sync.LockTTL)
		if err != nil {
			log.Fatal("Failed to connect to Redis for sync lock", zap.Error(err))
		}
		runLock = redisLock
		log.Info("Redis sync lock enabled",
			zap.String("key", cfg.Sync.LockKey),
			zap.Duration("ttl", cfg.Sync.LockTTL),
		)
	} else {
		// Single-instance deployments still serialize runs in-process
		runLock = cache.NewInMemorySyncLock(cfg.Sync.LockTTL)
	}

	reconciler := syncapp.NewReconciler(synchronizer, productRepo, runLock, log)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, categoryRepo, storeRepo, synchronizer, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	storeService := storeapp.NewStoreService(storeRepo, reconciler, log)
	communityService := communityapp.NewCommunityService(communityRepo)
	membershipService := communityapp.NewMembershipService(membershipRepo, communityRepo, storeRepo)
	communityProductService := showcaseapp.NewCommunityProductService(communityRepo, membershipRepo, projectionRepo)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	storeHandler := handler.NewStoreHandler(storeService)
	communityHandler := handler.NewCommunityHandler(communityService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	communityProductHandler := handler.NewCommunityProductHandler(communityProductService)
	syncHandler := handler.NewSyncHandler(synchronizer, reconciler)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Timeout - Deadline on the request context
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Timeout(cfg.HTTP.WriteTimeout))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (products, categories)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.POST("/products/:id/activate", productHandler.Activate)
	catalogRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)
	catalogRoutes.POST("/categories", categoryHandler.Create)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.GET("/categories/:id", categoryHandler.GetByID)
	catalogRoutes.PUT("/categories/:id", categoryHandler.Update)
	catalogRoutes.DELETE("/categories/:id", categoryHandler.Delete)

	// Store domain
	storeRoutes := router.NewDomainGroup("stores", "/stores")
	storeRoutes.POST("", storeHandler.Create)
	storeRoutes.GET("", storeHandler.List)
	storeRoutes.GET("/:id", storeHandler.GetByID)
	storeRoutes.GET("/slug/:slug", storeHandler.GetBySlug)
	storeRoutes.PUT("/:id", storeHandler.UpdateProfile)
	storeRoutes.POST("/:id/activate", storeHandler.Activate)
	storeRoutes.POST("/:id/deactivate", storeHandler.Deactivate)
	storeRoutes.GET("/:id/products", productHandler.ListByStore)
	storeRoutes.GET("/:id/memberships", membershipHandler.ListByStore)

	// Community domain (communities, memberships, public showcase)
	communityRoutes := router.NewDomainGroup("communities", "/communities")
	communityRoutes.POST("", communityHandler.Create)
	communityRoutes.GET("", communityHandler.List)
	communityRoutes.GET("/:id", communityHandler.GetByID)
	communityRoutes.GET("/code/:code", communityHandler.GetByCode)
	communityRoutes.GET("/code/:code/products", communityProductHandler.ListByCommunity)
	communityRoutes.PUT("/:id", communityHandler.Update)
	communityRoutes.POST("/:id/activate", communityHandler.Activate)
	communityRoutes.POST("/:id/deactivate", communityHandler.Deactivate)
	communityRoutes.POST("/:id/members", membershipHandler.Enroll)
	communityRoutes.GET("/:id/members", membershipHandler.ListByCommunity)

	// Membership management by ID
	membershipRoutes := router.NewDomainGroup("memberships", "/memberships")
	membershipRoutes.GET("/:id", membershipHandler.GetByID)
	membershipRoutes.POST("/:id/activate", membershipHandler.Activate)
	membershipRoutes.POST("/:id/suspend", membershipHandler.Suspend)
	membershipRoutes.DELETE("/:id", membershipHandler.Remove)

	// Projection rows (administrative access)
	communityProductRoutes := router.NewDomainGroup("community-products", "/community-products")
	communityProductRoutes.GET("/:id", communityProductHandler.GetByID)
	communityProductRoutes.DELETE("/:id", communityProductHandler.Delete)

	// Sync administration
	syncRoutes := router.NewDomainGroup("sync", "/sync")
	syncRoutes.POST("/run", syncHandler.Run)
	syncRoutes.POST("/products/:id", syncHandler.SyncProduct)
	syncRoutes.POST("/stores/:id", syncHandler.SyncStoreProducts)

	// System routes
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(catalogRoutes).
		Register(storeRoutes).
		Register(communityRoutes).
		Register(membershipRoutes).
		Register(communityProductRoutes).
		Register(syncRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Background reconciliation loop (if enabled)
	reconcileCtx, stopReconcile := context.WithCancel(context.Background())
	defer stopReconcile()
	if cfg.Sync.ReconcileEnabled {
		go runReconcileLoop(reconcileCtx, reconciler, cfg.Sync.ReconcileInterval, log)
		log.Info("Background reconciliation enabled",
			zap.Duration("interval", cfg.Sync.ReconcileInterval),
		)
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	stopReconcile()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runReconcileLoop periodically refreshes stale projections until ctx is
// cancelled. A run that loses the lock race is skipped quietly.
func runReconcileLoop(ctx context.Context, reconciler *syncapp.Reconciler, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := reconciler.SyncAllPending(ctx)
			if err != nil {
				if errors.Is(err, shared.ErrSyncInProgress) {
					log.Debug("Reconciliation run already in progress, skipping")
					continue
				}
				log.Error("Reconciliation run failed", zap.Error(err))
				continue
			}
			if count > 0 {
				log.Info("Reconciliation run finished", zap.Int("synced", count))
			}
		}
	}
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
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
