// Package agent runs the conversational vehicle advisor on the ADK
// framework with a Nemotron model and deterministic scoring tools.
package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/google/uuid"

	"vehicle_advisor_backend/platform/ai/nemotron"
	"vehicle_advisor_backend/platform/config"
	"vehicle_advisor_backend/platform/logger"
)

// Message is one turn of the conversation handed to the advisor.
type Message struct {
	Role    string
	Content string
}

// VehicleAdvisor provides AI-powered vehicle recommendations using the
// ADK framework.
type VehicleAdvisor struct {
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
	appName        string
	log            *logger.Logger
}

// NewVehicleAdvisor builds the advisor agent with the Nemotron model.
// Returns an error if the agent or runner cannot be initialized.
func NewVehicleAdvisor(cfg config.AIConfig, deps *ToolDependencies, log *logger.Logger) (*VehicleAdvisor, error) {
	model := nemotron.NewModel(nemotron.Config{
		APIKey:      cfg.GetNemotronAPIKey(),
		BaseURL:     cfg.GetNemotronBaseURL(),
		Model:       cfg.GetNemotronModel(),
		Temperature: cfg.GetModelTemperature(),
		MaxTokens:   cfg.GetMaxTokens(),
	})

	tools, err := buildTools(deps)
	if err != nil {
		return nil, fmt.Errorf("failed to build advisor tools: %w", err)
	}

	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        "VehicleAdvisor",
		Model:       model,
		Description: "Conversational vehicle shopping assistant that searches a Toyota catalog, ranks vehicles against user needs, and evaluates loan affordability.",
		Instruction: getSystemPrompt(),
		Tools:       tools,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ADK agent: %w", err)
	}

	sessionService := session.InMemoryService()

	advisor := &VehicleAdvisor{
		agent:          adkAgent,
		sessionService: sessionService,
		appName:        "vehicle_advisor",
		log:            log,
	}

	r, err := runner.New(runner.Config{
		AppName:        advisor.appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ADK runner: %w", err)
	}
	advisor.runner = r

	return advisor, nil
}

// Tools describes the advisor's tool set for status endpoints.
func (va *VehicleAdvisor) Tools() []ToolInfo {
	return Catalog()
}

// Respond runs one advisor turn over the full conversation. A fresh
// session is created per request and deleted afterwards; the chat
// history itself is the memory, carried inside the prompt.
func (va *VehicleAdvisor) Respond(ctx context.Context, messages []Message) (string, error) {
	if va.runner == nil {
		return "", fmt.Errorf("advisor runner is not initialized")
	}

	userID := "chat-" + uuid.New().String()
	sessionID := uuid.New().String()

	_, err := va.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   va.appName,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer func() {
		deleteReq := &session.DeleteRequest{
			AppName:   va.appName,
			UserID:    userID,
			SessionID: sessionID,
		}
		if deleteErr := va.sessionService.Delete(context.WithoutCancel(ctx), deleteReq); deleteErr != nil {
			va.log.Warn("failed to delete advisor session", "session_id", sessionID, "error", deleteErr.Error())
		}
	}()

	userMessage := buildConversationPrompt(messages)

	var output strings.Builder
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}
	for event, err := range va.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			return "", fmt.Errorf("advisor run failed: %w", err)
		}
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				output.WriteString(part.Text)
			}
		}
	}

	return strings.TrimSpace(output.String()), nil
}

// buildConversationPrompt flattens the chat history into a single user
// turn so each request runs against a clean session.
func buildConversationPrompt(messages []Message) *genai.Content {
	var b strings.Builder
	b.WriteString("Conversation so far:\n\n")
	for _, m := range messages {
		role := "Customer"
		if m.Role != "user" {
			role = "Assistant"
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nRespond to the customer's latest message.")

	return &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: b.String()},
		},
	}
}
