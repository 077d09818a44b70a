package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_advisor_backend/internal/chat/service"
	"vehicle_advisor_backend/internal/chat/suggestions"
	"vehicle_advisor_backend/internal/chat/transport"
	"vehicle_advisor_backend/platform/config"
	"vehicle_advisor_backend/platform/httpkit"
	"vehicle_advisor_backend/platform/validator"
)

// Handler handles HTTP requests for the chat and orchestrator endpoints.
type Handler struct {
	svc   *service.Service
	store *suggestions.Store
	cfg   config.ChatConfig
	val   *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new chat handler.
func New(svc *service.Service, store *suggestions.Store, cfg config.ChatConfig, val *validator.Validator) *Handler {
	return &Handler{svc: svc, store: store, cfg: cfg, val: val}
}

// Chat runs the full recommendation pipeline for one conversation turn.
// POST /api/chat
func (h *Handler) Chat(c *gin.Context) {
	req, ok := h.bindChatRequest(c)
	if !ok {
		return
	}

	resp, err := h.svc.Process(c.Request.Context(), req.SessionID, req.Messages)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// OrchestratorChat answers with the tool-calling agent directly.
// POST /api/orchestrator/chat
func (h *Handler) OrchestratorChat(c *gin.Context) {
	req, ok := h.bindChatRequest(c)
	if !ok {
		return
	}

	resp, err := h.svc.OrchestratorChat(c.Request.Context(), req.Messages)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// OrchestratorChatStream answers like OrchestratorChat but delivers the
// reply as a server-sent event stream.
// POST /api/orchestrator/chat/stream
func (h *Handler) OrchestratorChatStream(c *gin.Context) {
	req, ok := h.bindChatRequest(c)
	if !ok {
		return
	}

	resp, err := h.svc.OrchestratorChat(c.Request.Context(), req.Messages)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	for _, chunk := range splitChunks(resp.Content, 80) {
		payload, err := json.Marshal(gin.H{"content": chunk})
		if err != nil {
			break
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		c.Writer.Flush()
	}
	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

// Tools lists the advisor's registered tools.
// GET /api/orchestrator/tools
func (h *Handler) Tools(c *gin.Context) {
	tools := h.svc.Tools()
	httpkit.OK(c, transport.ToolsResponse{Tools: tools, Count: len(tools)})
}

// Status reports orchestrator configuration.
// GET /api/orchestrator/status
func (h *Handler) Status(c *gin.Context) {
	status := "inactive"
	if h.svc.AgentEnabled() {
		status = "active"
	}
	httpkit.OK(c, transport.StatusResponse{
		Status:           status,
		APIKeyConfigured: h.cfg.IsAgentEnabled(),
		ToolsCount:       len(h.svc.Tools()),
		Model:            h.cfg.GetNemotronModel(),
		Temperature:      h.cfg.GetModelTemperature(),
		MaxTokens:        h.cfg.GetMaxTokens(),
	})
}

// Suggestions returns the last recommendation set for a session.
// GET /api/chat/suggestions/:sessionId
func (h *Handler) Suggestions(c *gin.Context) {
	sessionID := c.Param("sessionId")
	entry, ok := h.store.Get(sessionID)
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "no suggestions for session", nil)
		return
	}
	httpkit.OK(c, entry)
}

func (h *Handler) bindChatRequest(c *gin.Context) (transport.ChatRequest, bool) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return req, false
	}
	return req, true
}

// splitChunks breaks text into size-rune pieces. Concatenating the
// chunks reproduces the original text exactly.
func splitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	chunks := make([]string, 0, len(runes)/size+1)
	for len(runes) > size {
		chunks = append(chunks, string(runes[:size]))
		runes = runes[size:]
	}
	return append(chunks, string(runes))
}
