package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"yellow-mart/internal/cache"
	"yellow-mart/internal/chat"
	"yellow-mart/internal/handlers"
	"yellow-mart/internal/repository"
)

// Register wires the REST surface under /api.
func Register(router *gin.Engine, db *mongo.Database, chatClient *chat.Client, c *cache.Cache, logger *zap.Logger) {
	productRepo := repository.NewProductRepository(db.Collection("products"))
	orderRepo := repository.NewOrderRepository(db.Collection("orders"))

	productHandler := handlers.NewProductHandler(productRepo, c, logger)
	orderHandler := handlers.NewOrderHandler(orderRepo, productRepo, c, logger)
	chatHandler := handlers.NewChatHandler(chatClient, productRepo, logger)

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.ListProducts)
		api.POST("/products/seed", productHandler.SeedProducts)

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/user/:email", orderHandler.ListCustomerOrders)
		api.GET("/orders/report", orderHandler.OrderReport)

		api.POST("/chat", chatHandler.Chat)

		api.GET("/health", func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := db.Client().Ping(ctx, nil); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "mongo": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "yellow-mart-api"})
		})
	}
}
