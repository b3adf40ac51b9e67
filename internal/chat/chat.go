package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"yellow-mart/internal/models"
)

// Fallback replies are part of the observable contract: the assistant never
// surfaces an error, only one of these strings.
const (
	ReplyMissingKey  = "I'm sorry, I cannot connect to the server right now (Missing API Key)."
	ReplyUnavailable = "I'm having trouble thinking right now. Please try again later."
	ReplyEmpty       = "I didn't catch that. Could you please rephrase?"
)

const systemInstruction = `You are "Yellow Bot", the advanced AI assistant for Yellow Mart, a high-performance e-commerce platform in Bangladesh.
Your goal is to help customers find products, explain features, and assist with store policies.
You have access to a list of products in the store context.
Be concise, friendly, and professional. Use emojis sparingly.
If a user asks about a product not in the context, suggest similar items or apologize.
Always emphasize the "Yellow Mart" guarantee of speed and quality.
Prices are in Bangladeshi Taka (BDT/৳).
`

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(apiKey, model string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Reply sends the conversation plus a catalog snapshot and returns the
// model's answer. All failure modes collapse into fixed fallback strings.
func (c *Client) Reply(ctx context.Context, history []models.ChatMessage, message string, products []models.Product) string {
	if c.apiKey == "" {
		return ReplyMissingKey
	}

	var inventory strings.Builder
	for _, p := range products {
		fmt.Fprintf(&inventory, "- %s (৳%.0f): %s (Stock: %d)\n", p.Name, p.Price, p.Description, p.Stock)
	}

	req := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: systemInstruction + "\nCurrent Product Inventory:\n" + inventory.String()}},
		},
		GenerationConfig: generationConfig{Temperature: 0.7},
	}
	for _, m := range history {
		req.Contents = append(req.Contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	req.Contents = append(req.Contents, content{Role: "user", Parts: []part{{Text: message}}})

	body, err := json.Marshal(req)
	if err != nil {
		c.logger.Error("Failed to encode chat request", zap.Error(err))
		return ReplyUnavailable
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to build chat request", zap.Error(err))
		return ReplyUnavailable
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("Chat API unreachable", zap.Error(err))
		return ReplyUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Chat API error", zap.Int("status", resp.StatusCode))
		return ReplyUnavailable
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Error("Failed to decode chat response", zap.Error(err))
		return ReplyUnavailable
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return ReplyEmpty
	}
	reply := out.Candidates[0].Content.Parts[0].Text
	if reply == "" {
		return ReplyEmpty
	}
	return reply
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
