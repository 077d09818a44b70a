// Package service implements the chat pipeline: profile extraction,
// catalog scoring, event publication, and response generation either via
// the ADK agent or a deterministic fallback.
package service

import (
	"context"
	"fmt"
	"strings"

	"vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/chat/agent"
	"vehicle_advisor_backend/internal/chat/profile"
	"vehicle_advisor_backend/internal/chat/transport"
	"vehicle_advisor_backend/internal/events"
	"vehicle_advisor_backend/internal/recommend/scoring"
	"vehicle_advisor_backend/platform/logger"
)

// Scoring method identifiers surfaced to the frontend.
const (
	MethodAgent    = "nemotron_agent"
	MethodFallback = "deterministic_fallback"
)

// Service orchestrates one chat turn.
type Service struct {
	advisor *agent.VehicleAdvisor
	engine  *scoring.Engine
	catalog *service.Service
	bus     events.Bus
	log     *logger.Logger
}

// New creates the chat service. advisor may be nil when no valid API key
// is configured; the service then answers with the deterministic
// fallback.
func New(advisor *agent.VehicleAdvisor, engine *scoring.Engine, catalog *service.Service, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		advisor: advisor,
		engine:  engine,
		catalog: catalog,
		bus:     bus,
		log:     log,
	}
}

// AgentEnabled reports whether the ADK agent is available.
func (s *Service) AgentEnabled() bool {
	return s.advisor != nil
}

// Advisor returns the underlying agent, or nil when disabled.
func (s *Service) Advisor() *agent.VehicleAdvisor {
	return s.advisor
}

// Process runs a full chat turn: extract profiles from the history,
// score the catalog, publish the recommendation event, and produce a
// reply.
func (s *Service) Process(ctx context.Context, sessionID string, messages []transport.ChatMessage) (transport.ChatResponse, error) {
	userTexts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Role == "user" {
			userTexts = append(userTexts, m.Content)
		}
	}

	if len(userTexts) == 0 {
		return transport.ChatResponse{
			Role:    "agent",
			Content: "Hello! How can I help you find the perfect vehicle today?",
		}, nil
	}

	conv := profile.ExtractConversation(userTexts)
	userProfile := conv.User
	if userProfile.Weights == nil && len(userProfile.Priorities) > 0 {
		top := conv.TopPriority
		if top == "" {
			top = userProfile.Priorities[0]
		}
		userProfile.Weights = scoring.PrioritiesToWeights(userProfile.Priorities, top)
	}

	scored := s.engine.ScoreCarsForUser(userProfile)
	topIDs := topCarIDs(scored, 3)

	method := MethodFallback
	content := ""
	if s.AgentEnabled() {
		method = MethodAgent
		agentMessages := make([]agent.Message, 0, len(messages))
		for _, m := range messages {
			agentMessages = append(agentMessages, agent.Message{Role: m.Role, Content: m.Content})
		}

		reply, err := s.advisor.Respond(ctx, agentMessages)
		if err != nil {
			s.log.Error("advisor turn failed, using fallback", "error", err.Error())
			method = MethodFallback
			content = s.fallbackResponse(userProfile, conv, scored)
		} else {
			content = reply
		}
	} else {
		content = s.fallbackResponse(userProfile, conv, scored)
	}

	if s.bus != nil && sessionID != "" {
		s.bus.Publish(ctx, events.RecommendationsGenerated{
			BaseEvent:  events.NewBaseEvent(),
			SessionID:  sessionID,
			VehicleIDs: topIDs,
			Method:     method,
		})
	}

	return transport.ChatResponse{
		Role:              "agent",
		Content:           content,
		RecommendedCarIDs: topIDs,
		ScoringMethod:     method,
	}, nil
}

// OrchestratorChat answers with the tool-calling agent alone, without
// the deterministic scoring pipeline.
func (s *Service) OrchestratorChat(ctx context.Context, messages []transport.ChatMessage) (transport.ChatResponse, error) {
	if !s.AgentEnabled() {
		return transport.ChatResponse{
			Role:    "assistant",
			Content: "The AI assistant is not configured. Please set a valid NEMOTRON_API_KEY to enable agent responses.",
		}, nil
	}

	agentMessages := make([]agent.Message, 0, len(messages))
	for _, m := range messages {
		agentMessages = append(agentMessages, agent.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.advisor.Respond(ctx, agentMessages)
	if err != nil {
		return transport.ChatResponse{}, err
	}

	return transport.ChatResponse{
		Role:    "assistant",
		Content: reply,
	}, nil
}

// Tools lists the advisor's registered tools.
func (s *Service) Tools() []agent.ToolInfo {
	return agent.Catalog()
}

// fallbackResponse builds a recommendation text from the scoring results
// alone, used when no model is configured or the agent call fails.
func (s *Service) fallbackResponse(userProfile scoring.UserProfile, conv profile.Conversation, scored []scoring.ScoredCar) string {
	if len(scored) == 0 {
		return "I could not find any vehicles in the catalog. Please try again later."
	}

	var b strings.Builder
	b.WriteString("Based on what you've told me, here are my top recommendations:\n")

	for i, sc := range topCars(scored, 3) {
		vehicle, err := s.catalog.ByID(sc.ID)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n%d. %s (%d) - $%.0f, match score %.0f%%",
			i+1, vehicle.DisplayName(), vehicle.Year, vehicle.Price(), sc.Score*100)
		if len(sc.Reasons) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(dedupe(sc.Reasons), ", "))
		}
	}

	missing := missingProfileQuestions(userProfile, conv)
	if missing != "" {
		b.WriteString("\n\n")
		b.WriteString(missing)
	}

	return b.String()
}

func missingProfileQuestions(p scoring.UserProfile, conv profile.Conversation) string {
	var questions []string
	if p.BudgetMax == nil {
		questions = append(questions, "What's your budget range?")
	}
	if p.Passengers == nil {
		questions = append(questions, "How many passengers do you typically carry?")
	}
	if p.CommuteMiles == nil {
		questions = append(questions, "Do you have a daily commute?")
	}
	if conv.Financial.AnnualIncome == nil && conv.Financial.MonthlyIncome == nil {
		questions = append(questions, "If you'd like a financing check, tell me your income and down payment.")
	}
	if len(questions) == 0 {
		return ""
	}
	return "To refine these: " + strings.Join(questions, " ")
}

func topCars(scored []scoring.ScoredCar, n int) []scoring.ScoredCar {
	if len(scored) > n {
		return scored[:n]
	}
	return scored
}

func topCarIDs(scored []scoring.ScoredCar, n int) []string {
	top := topCars(scored, n)
	ids := make([]string, 0, len(top))
	for _, sc := range top {
		ids = append(ids, sc.ID)
	}
	return ids
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
