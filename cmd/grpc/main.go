package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	storefrontv1 "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/config"
	"github.com/fekuna/omnipos-storefront-service/internal/fixtures"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/internal/theme"
	"github.com/fekuna/omnipos-storefront-service/pkg/broker"
	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	_ "github.com/fekuna/omnipos-storefront-service/pkg/codec"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/metrics"
	"github.com/fekuna/omnipos-storefront-service/pkg/middleware"

	catalogPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog"
	catDTO "github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	catH "github.com/fekuna/omnipos-storefront-service/internal/catalog/handler"
	catRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"

	checkoutPkg "github.com/fekuna/omnipos-storefront-service/internal/checkout"
	coH "github.com/fekuna/omnipos-storefront-service/internal/checkout/handler"
	coPubPkg "github.com/fekuna/omnipos-storefront-service/internal/checkout/publisher"
	coUCPkg "github.com/fekuna/omnipos-storefront-service/internal/checkout/usecase"

	themeH "github.com/fekuna/omnipos-storefront-service/internal/theme/handler"
	themeRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/theme/repository"
	themeUCPkg "github.com/fekuna/omnipos-storefront-service/internal/theme/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		FilePath:          cfg.Logger.FilePath,
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	appMetrics := metrics.New()
	format := pricing.NewFormatter(cfg.Catalog.Locale)

	// 3. Catalog Source
	var catRepo catalogPkg.Repository
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		catRepo = catRepoPkg.NewPGRepository(db)
	default:
		catRepo = catRepoPkg.NewEmbeddedRepository()
	}

	contact, err := fixtures.Contact()
	if err != nil {
		appLogger.Fatal("Could not load contact info", zap.Error(err))
	}
	messaging, err := fixtures.Messaging()
	if err != nil {
		appLogger.Fatal("Could not load messaging config", zap.Error(err))
	}
	if cfg.Messaging.PhoneNumber != "" {
		messaging.PhoneNumber = cfg.Messaging.PhoneNumber
	}

	// 4. Theme Store
	var themeStore theme.Store
	switch cfg.Theme.Store {
	case "bolt":
		boltStore, err := themeRepoPkg.NewBoltStore(cfg.Theme.BoltPath)
		if err != nil {
			appLogger.Fatal("Could not open theme store", zap.Error(err))
		}
		defer boltStore.Close()
		themeStore = boltStore
	case "redis":
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		themeStore = themeRepoPkg.NewRedisStore(redisClient.Client)
	default:
		themeStore = themeRepoPkg.NewMemoryStore()
	}
	appLogger.Info("Theme store ready", zap.String("store", cfg.Theme.Store))

	// 5. Kafka Producer
	var handoffs checkoutPkg.Publisher = coPubPkg.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		handoffs = coPubPkg.NewHandoffPublisher(producer, appLogger)
		appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	} else {
		appLogger.Warn("No Kafka brokers configured, hand-off events are dropped")
	}

	// 6. Initialize UseCases
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catUC, err := catUCPkg.NewCatalogUseCase(ctx, catRepo,
		catDTO.StoreInfo{BusinessName: messaging.BusinessName, Contact: contact},
		cfg.Catalog.PageSize, appMetrics, appLogger)
	cancel()
	if err != nil {
		appLogger.Fatal("Could not load catalog", zap.Error(err))
	}
	coUC := coUCPkg.NewCheckoutUseCase(catUC, handoffs, messaging, cfg.Messaging.BaseURL, format, appMetrics, appLogger)
	themeUC := themeUCPkg.NewThemeUseCase(themeStore, appLogger)

	// 7. Initialize Handlers
	catHandler := catH.NewCatalogHandler(catUC, format, appLogger)
	coHandler := coH.NewCheckoutHandler(coUC, appLogger)
	themeHandler := themeH.NewThemeHandler(themeUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger, appMetrics)),
	)

	// Register Services
	storefrontv1.RegisterCatalogServiceServer(grpcServer, catHandler)
	storefrontv1.RegisterCheckoutServiceServer(grpcServer, coHandler)
	storefrontv1.RegisterThemeServiceServer(grpcServer, themeHandler)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 9. Start HTTP Edge
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpPort := cfg.Server.HTTPPort
	if !strings.HasPrefix(httpPort, ":") {
		httpPort = ":" + httpPort
	}
	httpServer := &http.Server{
		Addr:              httpPort,
		Handler:           coH.NewRouter(coUC, appMetrics.Registry, appLogger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", httpPort))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("HTTP shutdown incomplete", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
