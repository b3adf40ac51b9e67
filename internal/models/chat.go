package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's reply. The reply is always present;
// failures are folded into fixed fallback strings upstream.
type ChatResponse struct {
	Reply string `json:"reply"`
}
