package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yellow-mart/internal/cache"
	"yellow-mart/internal/models"
	"yellow-mart/internal/repository"
)

type OrderHandler struct {
	orders   *repository.OrderRepository
	products *repository.ProductRepository
	cache    *cache.Cache
	logger   *zap.Logger
}

func NewOrderHandler(orders *repository.OrderRepository, products *repository.ProductRepository, c *cache.Cache, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		products: products,
		cache:    c,
		logger:   logger,
	}
}

// CreateOrder stores the order as the client materialized it, then decrements
// stock per line, floored at zero. The stock pass is best-effort and
// non-transactional; a failed decrement does not fail the order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orders.Insert(c.Request.Context(), &order); err != nil {
		h.logger.Error("Failed to create order",
			zap.String("order_id", order.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	for _, item := range order.Items {
		if err := h.products.DecrementStock(c.Request.Context(), item.ID, item.Quantity); err != nil {
			h.logger.Error("Failed to decrement stock",
				zap.String("order_id", order.ID),
				zap.String("product_id", item.ID),
				zap.Error(err))
		}
	}
	h.cache.DeleteByPrefix("products:")

	h.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_email", order.CustomerEmail),
		zap.Float64("total", order.Total))

	c.JSON(http.StatusCreated, order)
}

// ListOrders returns every order, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListCustomerOrders returns one customer's orders, newest first.
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	email := c.Param("email")

	orders, err := h.orders.FindByCustomer(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("Failed to list customer orders",
			zap.String("customer_email", email),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// OrderReport streams the full order history as CSV for offline review.
func (h *OrderHandler) OrderReport(c *gin.Context) {
	orders, err := h.orders.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build order report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=orders.csv")

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"Order ID", "Customer", "Email", "Date", "Status", "Items", "Total"})
	for _, order := range orders {
		w.Write([]string{
			order.ID,
			order.CustomerName,
			order.CustomerEmail,
			order.Date,
			string(order.Status),
			fmt.Sprintf("%d", len(order.Items)),
			fmt.Sprintf("%.2f", order.Total),
		})
	}
}
