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
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"yellow-mart/internal/cache"
	"yellow-mart/internal/chat"
	"yellow-mart/internal/config"
	"yellow-mart/internal/database"
	"yellow-mart/internal/middleware"
	"yellow-mart/internal/models"
	"yellow-mart/internal/repository"
	"yellow-mart/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.MongoDB)

	chatClient := chat.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.HTTPTimeout, logger)
	listCache := cache.New(cfg.CacheTTL)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	routes.Register(router, db, chatClient, listCache, logger)

	// Nightly reminder for orders that never moved past Placed.
	orderRepo := repository.NewOrderRepository(db.Collection("orders"))
	scheduler := cron.New()
	scheduler.AddFunc("@midnight", func() {
		remindPendingOrders(orderRepo, logger)
	})
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Mongo disconnect failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func remindPendingOrders(orders *repository.OrderRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	all, err := orders.FindAll(ctx)
	if err != nil {
		logger.Error("Pending order reminder failed", zap.Error(err))
		return
	}

	for _, order := range all {
		if order.Status == models.StatusPlaced {
			logger.Warn("Order still awaiting processing",
				zap.String("order_id", order.ID),
				zap.String("customer_email", order.CustomerEmail),
				zap.String("placed", order.Date))
		}
	}
}
