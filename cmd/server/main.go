package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/alnsrinivas/Milkmitra/internal/application/catalog"
	checkoutapp "github.com/alnsrinivas/Milkmitra/internal/application/checkout"
	farmapp "github.com/alnsrinivas/Milkmitra/internal/application/farm"
	journalapp "github.com/alnsrinivas/Milkmitra/internal/application/journal"
	orderapp "github.com/alnsrinivas/Milkmitra/internal/application/order"
	subscriptionapp "github.com/alnsrinivas/Milkmitra/internal/application/subscription"
	supportapp "github.com/alnsrinivas/Milkmitra/internal/application/support"
	domainfarm "github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/config"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/event"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/geo"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/logger"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/notification"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/persistence"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/handler"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting MilkMitra",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
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
	farmRepo := persistence.NewGormFarmRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	subscriptionRepo := persistence.NewGormSubscriptionRepository(db.DB)
	issueRepo := persistence.NewGormIssueRepository(db.DB)
	journalRepo := persistence.NewGormJournalRepository(db.DB)

	// Initialize the nearest-farm geo index
	var geoIndex domainfarm.GeoIndex
	switch cfg.Geo.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		geoIndex = geo.NewRedisGeoIndex(redisClient, cfg.Geo.Key)
		log.Info("Using Redis geo index", zap.String("key", cfg.Geo.Key))
	default:
		geoIndex = geo.NewMemoryGeoIndex()
		log.Info("Using in-memory geo index")
	}

	// Seed the geo index from registered farms so nearest-farm queries
	// work from the first request after a restart
	if err := seedGeoIndex(context.Background(), farmRepo, geoIndex); err != nil {
		log.Fatal("Failed to seed geo index", zap.Error(err))
	}

	// Initialize mailer
	var mailer notification.Mailer
	if cfg.Mail.Enabled {
		mailer = notification.NewSMTPMailer(notification.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
		log.Info("SMTP mailer enabled", zap.String("host", cfg.Mail.Host))
	} else {
		mailer = notification.NewLoggingMailer(log)
		log.Info("Mail disabled, logging notifications instead")
	}

	// Recipient directory fed by the JWT middleware
	recipientDirectory := notification.NewStaticDirectory()

	// Initialize event bus and subscribe handlers
	eventBus := event.NewInMemoryEventBus(log)

	locationProjector := geo.NewFarmLocationProjector(geoIndex, log)
	eventBus.Subscribe(locationProjector)

	notificationHandler := orderapp.NewNotificationHandler(farmRepo, recipientDirectory, mailer, log)
	eventBus.Subscribe(notificationHandler)

	log.Info("Event handlers subscribed",
		zap.Strings("location_projector_events", locationProjector.EventTypes()),
		zap.Strings("notification_events", notificationHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	farmService := farmapp.NewFarmService(farmRepo, productRepo, reviewRepo, orderRepo, geoIndex, eventBus, log)
	productService := catalogapp.NewProductService(productRepo, farmRepo, eventBus)
	listingService := catalogapp.NewListingService(productRepo, reviewRepo, farmRepo, geoIndex, log)
	reviewService := catalogapp.NewReviewService(reviewRepo, productRepo, farmRepo)
	checkoutService := checkoutapp.NewCheckoutService(orderRepo, productRepo, eventBus, log)
	orderService := orderapp.NewOrderService(orderRepo, farmRepo, eventBus)
	subscriptionService := subscriptionapp.NewSubscriptionService(subscriptionRepo, productRepo, farmRepo)
	supportService := supportapp.NewSupportService(issueRepo)
	journalService := journalapp.NewJournalService(journalRepo)

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	listingHandler := handler.NewListingHandler(listingService, productService, reviewService)
	productHandler := handler.NewProductHandler(productService)
	farmHandler := handler.NewFarmHandler(farmService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	supportHandler := handler.NewSupportHandler(supportService)
	journalHandler := handler.NewJournalHandler(journalService)
	authHandler := handler.NewAuthHandler(jwtService, cfg.App.Env)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// API routes behind JWT authentication; discovery endpoints and the
	// dev token endpoint stay public
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/token",
			"/api/v1/system/ping",
			"/api/v1/system/info",
			"/api/v1/farms/nearest",
		},
		SkipPathPrefixes: []string{
			"/api/v1/products",
		},
		EmailRecorder: recipientDirectory,
		Logger:        log,
	}))

	r.Register(listingHandler)
	r.Register(productHandler)
	r.Register(farmHandler)
	r.Register(checkoutHandler)
	r.Register(orderHandler)
	r.Register(reviewHandler)
	r.Register(subscriptionHandler)
	r.Register(supportHandler)
	r.Register(journalHandler)
	r.Register(authHandler)
	r.Register(systemHandler)
	r.Setup()

	// Start HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// seedGeoIndex loads every farm's coordinates into the geo index
func seedGeoIndex(ctx context.Context, farmRepo domainfarm.Repository, index domainfarm.GeoIndex) error {
	farms, err := farmRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return err
	}

	for i := range farms {
		location, err := valueobject.NewGeoPoint(farms[i].Longitude, farms[i].Latitude)
		if err != nil {
			continue
		}
		if err := index.Upsert(ctx, farms[i].ID, location); err != nil {
			return err
		}
	}
	return nil
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
