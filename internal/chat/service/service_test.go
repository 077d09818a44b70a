package service

import (
	"context"
	"strings"
	"testing"

	"vehicle_advisor_backend/internal/catalog/repository"
	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/chat/transport"
	"vehicle_advisor_backend/internal/events"
	"vehicle_advisor_backend/internal/recommend/scoring"
	"vehicle_advisor_backend/platform/logger"
)

const testCatalog = `[
  {
    "id": "camry-2024",
    "make": "Toyota",
    "model": "Camry",
    "year": 2024,
    "specs": {
      "body_style": "sedan",
      "pricing": {"base_msrp": 28000},
      "powertrain": {"fuel_type": "hybrid", "drivetrain": "FWD", "mpg_city": 44, "mpg_hwy": 47},
      "capacity": {"seats": 5}
    }
  },
  {
    "id": "tundra-2024",
    "make": "Toyota",
    "model": "Tundra",
    "year": 2024,
    "specs": {
      "body_style": "truck",
      "pricing": {"base_msrp": 58000},
      "powertrain": {"fuel_type": "gasoline", "drivetrain": "4WD", "mpg_city": 17, "mpg_hwy": 22},
      "capacity": {"seats": 5}
    }
  }
]`

// recordingBus captures published events synchronously.
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func testChatService(t *testing.T) (*Service, *recordingBus) {
	t.Helper()
	repo, err := repository.NewFromJSON([]byte(testCatalog))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	log := logger.New("test")
	catalog := catalogservice.New(repo, log)
	engine := scoring.NewEngine(repo, log)
	bus := &recordingBus{}
	return New(nil, engine, catalog, bus, log), bus
}

func TestProcess_NoUserMessagesGreets(t *testing.T) {
	svc, bus := testChatService(t)

	resp, err := svc.Process(context.Background(), "s1", []transport.ChatMessage{
		{Role: "agent", Content: "Hi!"},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if resp.Role != "agent" || resp.Content == "" {
		t.Fatalf("expected greeting, got %+v", resp)
	}
	if len(resp.RecommendedCarIDs) != 0 {
		t.Fatalf("expected no recommendations before user input, got %v", resp.RecommendedCarIDs)
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events before user input, got %d", len(bus.published))
	}
}

func TestProcess_FallbackRecommendsAndPublishes(t *testing.T) {
	svc, bus := testChatService(t)

	resp, err := svc.Process(context.Background(), "s1", []transport.ChatMessage{
		{Role: "user", Content: "My budget is $30k and fuel efficiency is my top priority"},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if resp.ScoringMethod != MethodFallback {
		t.Fatalf("expected fallback method without an agent, got %s", resp.ScoringMethod)
	}
	if len(resp.RecommendedCarIDs) != 2 {
		t.Fatalf("expected both catalog cars ranked, got %v", resp.RecommendedCarIDs)
	}
	if resp.RecommendedCarIDs[0] != "camry-2024" {
		t.Fatalf("expected the efficient in-budget camry first, got %v", resp.RecommendedCarIDs)
	}
	if !strings.Contains(resp.Content, "Camry") {
		t.Fatalf("expected fallback text to name the top car, got %q", resp.Content)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected one recommendation event, got %d", len(bus.published))
	}
	event, ok := bus.published[0].(events.RecommendationsGenerated)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if event.SessionID != "s1" || event.Method != MethodFallback {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.VehicleIDs[0] != "camry-2024" {
		t.Fatalf("expected camry first in event, got %v", event.VehicleIDs)
	}
}

func TestProcess_NoSessionSkipsEvent(t *testing.T) {
	svc, bus := testChatService(t)

	_, err := svc.Process(context.Background(), "", []transport.ChatMessage{
		{Role: "user", Content: "My budget is $30k"},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no event without a session id, got %d", len(bus.published))
	}
}

func TestOrchestratorChat_WithoutAgentExplains(t *testing.T) {
	svc, _ := testChatService(t)

	resp, err := svc.OrchestratorChat(context.Background(), []transport.ChatMessage{
		{Role: "user", Content: "What do you recommend?"},
	})
	if err != nil {
		t.Fatalf("orchestrator chat: %v", err)
	}
	if !strings.Contains(resp.Content, "not configured") {
		t.Fatalf("expected not-configured explanation, got %q", resp.Content)
	}
}

func TestTools_AvailableWithoutAgent(t *testing.T) {
	svc, _ := testChatService(t)

	tools := svc.Tools()
	if len(tools) != 5 {
		t.Fatalf("expected 5 tools, got %d", len(tools))
	}
	if svc.AgentEnabled() {
		t.Fatalf("expected agent disabled in test")
	}
}
