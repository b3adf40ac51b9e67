package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yellow-mart/internal/cache"
	"yellow-mart/internal/models"
	"yellow-mart/internal/repository"
)

const productListKey = "products:list"

type ProductHandler struct {
	repo   *repository.ProductRepository
	cache  *cache.Cache
	logger *zap.Logger
}

func NewProductHandler(repo *repository.ProductRepository, c *cache.Cache, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// ListProducts returns the whole catalog, served from cache when warm.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if cached, found := h.cache.Get(productListKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	h.cache.Set(productListKey, products)
	c.JSON(http.StatusOK, products)
}

// SeedProducts replaces the catalog with the posted set and returns what was
// persisted. Used once, when a client finds the remote catalog empty.
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	var products []models.Product
	if err := c.ShouldBindJSON(&products); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seeded, err := h.repo.ReplaceAll(c.Request.Context(), products)
	if err != nil {
		h.logger.Error("Failed to seed products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed products"})
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, seeded)
}
