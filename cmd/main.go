package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sweetshop/inventory-service/internal/events"
	"github.com/sweetshop/inventory-service/internal/handler"
	"github.com/sweetshop/inventory-service/internal/repository"
	"github.com/sweetshop/inventory-service/internal/service"
	"github.com/sweetshop/inventory-service/pkg/config"
	"github.com/sweetshop/inventory-service/pkg/middleware"
	pkgtls "github.com/sweetshop/inventory-service/pkg/tls"
)

func main() {
	// .env is optional; real environments configure via the process env
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	dynamoClient, err := repository.NewDynamoDBClient(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to create DynamoDB client", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(dynamoClient, cfg.ProductTableName)

	var publisher service.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, cfg.EventTopic, logger)
		defer producer.Close()
		publisher = producer
		logger.Info("Event publishing enabled",
			zap.String("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.EventTopic))
	}

	productService := service.NewProductService(productRepo, publisher, logger)
	productHandler := handler.NewProductHandler(productService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		productHandler.Register(api)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	tlsConfig, err := pkgtls.LoadTLSConfig(&cfg.TLS, logger)
	if err != nil {
		logger.Fatal("Failed to load TLS config", zap.Error(err))
	}
	defer pkgtls.Cleanup()

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port))

		var err error
		if tlsConfig != nil {
			srv.TLSConfig = tlsConfig
			go pkgtls.WatchCertificates(&cfg.TLS, logger)
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
