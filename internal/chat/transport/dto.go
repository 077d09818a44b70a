package transport

import (
	"time"

	"vehicle_advisor_backend/internal/chat/agent"
)

// ChatMessage is one turn of the conversation.
type ChatMessage struct {
	Role      string     `json:"role" validate:"required,oneof=user agent assistant"`
	Content   string     `json:"content" validate:"required,max=4000"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ChatRequest carries the full chat history from the frontend. The
// history is the conversation memory; nothing is stored server side
// between requests except the current suggestion set.
type ChatRequest struct {
	SessionID string        `json:"session_id" validate:"omitempty,max=100"`
	Messages  []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// ChatResponse is the advisor's reply. RecommendedCarIDs lets the
// frontend fetch full vehicle details separately.
type ChatResponse struct {
	Role              string   `json:"role"`
	Content           string   `json:"content"`
	RecommendedCarIDs []string `json:"recommended_car_ids,omitempty"`
	ScoringMethod     string   `json:"scoring_method,omitempty"`
}

// ToolsResponse lists the advisor's tools.
type ToolsResponse struct {
	Tools []agent.ToolInfo `json:"tools"`
	Count int              `json:"count"`
}

// StatusResponse reports orchestrator configuration.
type StatusResponse struct {
	Status           string  `json:"status"`
	APIKeyConfigured bool    `json:"api_key_configured"`
	ToolsCount       int     `json:"tools_count"`
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
}
