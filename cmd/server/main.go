package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	agendaapp "github.com/diskmensagem/backend/internal/application/agenda"
	billingapp "github.com/diskmensagem/backend/internal/application/billing"
	catalogapp "github.com/diskmensagem/backend/internal/application/catalog"
	identityapp "github.com/diskmensagem/backend/internal/application/identity"
	orderingapp "github.com/diskmensagem/backend/internal/application/ordering"
	settingsapp "github.com/diskmensagem/backend/internal/application/settings"
	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/identity"
	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/diskmensagem/backend/internal/domain/settings"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/diskmensagem/backend/internal/infrastructure/auth"
	"github.com/diskmensagem/backend/internal/infrastructure/cache"
	"github.com/diskmensagem/backend/internal/infrastructure/config"
	"github.com/diskmensagem/backend/internal/infrastructure/logger"
	"github.com/diskmensagem/backend/internal/infrastructure/payment"
	"github.com/diskmensagem/backend/internal/infrastructure/persistence"
	"github.com/diskmensagem/backend/internal/infrastructure/printing"
	"github.com/diskmensagem/backend/internal/interfaces/http/dto"
	"github.com/diskmensagem/backend/internal/interfaces/http/handler"
	"github.com/diskmensagem/backend/internal/interfaces/http/middleware"
	"github.com/diskmensagem/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting Disk Mensagem backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

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
	log.Info("Database connected")

	if err := db.DB.AutoMigrate(
		&ordering.Order{},
		&billing.PaymentRecord{},
		&catalog.Category{},
		&catalog.Message{},
		&identity.Admin{},
		&settings.Settings{},
	); err != nil {
		log.Fatal("Failed to run schema migration", zap.Error(err))
	}

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	adminRepo := persistence.NewGormAdminRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// Webhook idempotency store: Redis when available, memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		idempotencyStore = redisStore
		log.Info("Redis idempotency store enabled")
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
		log.Info("Using in-memory idempotency store")
	}

	// PIX providers
	providers := payment.NewSelector(payment.NewStaticProvider(), payment.NewMercadoPagoProvider())

	// Agenda PDF renderer, optional
	var renderer printing.PDFRenderer
	if cfg.Printing.Enabled {
		chromeRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.RenderTimeout,
			NoSandbox:      true,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		defer chromeRenderer.Close()
		renderer = chromeRenderer
		log.Info("Agenda PDF rendering enabled")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	orderService := orderingapp.NewOrderService(orderRepo, messageRepo, settingsRepo)
	paymentService := billingapp.NewPaymentService(orderRepo, paymentRepo, settingsRepo, providers, log)
	catalogService := catalogapp.NewCatalogService(categoryRepo, messageRepo)
	importService := catalogapp.NewImportService(categoryRepo, messageRepo, log)
	agendaService := agendaapp.NewAgendaService(orderRepo, messageRepo, renderer, log)
	authService := identityapp.NewAuthService(adminRepo, jwtService, log)
	settingsService := settingsapp.NewSettingsService(settingsRepo, log)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.Seed(seedCtx, cfg.Admin.SeedEmail, cfg.Admin.SeedPassword); err != nil {
		seedCancel()
		log.Fatal("Failed to seed admin account", zap.Error(err))
	}
	seedCancel()

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := dto.RegisterValidators(); err != nil {
		log.Fatal("Failed to register request validators", zap.Error(err))
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	jwtAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTAuthConfig{
		JWTService:   jwtService,
		SkipPaths:    router.PublicSkipPaths(),
		SkipPrefixes: router.PublicSkipPrefixes(),
	})
	webhookAuth := middleware.WebhookAuth(func(ctx context.Context) (string, error) {
		current, err := settingsRepo.Get(ctx)
		if err != nil {
			return "", err
		}
		return current.WebhookToken, nil
	})

	// Routes
	r := router.New(engine, jwtAuth, webhookAuth)
	handler.NewSystemHandler(db.DB, version, log).RegisterRoot(engine)
	r.Public(
		handler.NewStorefrontHandler(orderService, paymentService, catalogService, settingsService, log),
		handler.NewAuthHandler(authService, log),
	)
	r.Admin(
		handler.NewOrderHandler(orderService, log),
		handler.NewAgendaHandler(agendaService, log),
		handler.NewCatalogHandler(catalogService, importService, log),
		handler.NewSettingsHandler(settingsService, log),
	)
	r.Webhooks(
		handler.NewWebhookHandler(paymentService, idempotencyStore, cfg.Webhook.IdempotencyTTL, log),
	)

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
