package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yellow-mart/internal/chat"
	"yellow-mart/internal/models"
	"yellow-mart/internal/repository"
)

type ChatHandler struct {
	chat     *chat.Client
	products *repository.ProductRepository
	logger   *zap.Logger
}

func NewChatHandler(chatClient *chat.Client, products *repository.ProductRepository, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:     chatClient,
		products: products,
		logger:   logger,
	}
}

// Chat proxies a conversation turn to the assistant with the current catalog
// as context. The reply is always 200; failures arrive as the assistant's
// fixed fallback strings.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.products.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Warn("Chat proceeding without catalog snapshot", zap.Error(err))
		products = nil
	}

	reply := h.chat.Reply(c.Request.Context(), req.History, req.Message, products)
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
