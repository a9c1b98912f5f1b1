package llm

import (
	"context"
	"errors"
	"testing"
)

// mockProvider returns a canned response for factory tests.
type mockProvider struct {
	name string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	return &CompletionResponse{Content: "ok", StopReason: "end_turn"}, nil
}

func TestNewFactoryNoCredentials(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewFactory(context.Background())
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("expected ErrNoCredentials, got %v", err)
	}
}

func TestNewFactoryWithClaudeKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	f, err := NewFactory(context.Background())
	if err != nil {
		t.Fatalf("NewFactory failed: %v", err)
	}

	if !f.HasProvider("claude") {
		t.Error("expected claude provider to be registered")
	}
	if f.ProviderCount() != 1 {
		t.Errorf("ProviderCount() = %d, want 1", f.ProviderCount())
	}
}

func TestGetProviderPrefersPrimary(t *testing.T) {
	f := NewFactoryWithProviders(map[string]Provider{
		"claude": &mockProvider{name: "claude"},
		"gemini": &mockProvider{name: "gemini"},
	})

	p, err := f.GetProvider(context.Background())
	if err != nil {
		t.Fatalf("GetProvider failed: %v", err)
	}
	if p.Name() != "claude" {
		t.Errorf("primary provider = %q, want claude", p.Name())
	}
}

func TestGetProviderFallsBackWhenBreakerOpen(t *testing.T) {
	f := NewFactoryWithProviders(map[string]Provider{
		"claude": &mockProvider{name: "claude"},
		"gemini": &mockProvider{name: "gemini"},
	})

	for i := 0; i < 3; i++ {
		f.ReportFailure("claude")
	}

	p, err := f.GetProvider(context.Background())
	if err != nil {
		t.Fatalf("GetProvider failed: %v", err)
	}
	if p.Name() != "gemini" {
		t.Errorf("fallback provider = %q, want gemini", p.Name())
	}
}

func TestGetProviderAllBreakersOpen(t *testing.T) {
	f := NewFactoryWithProviders(map[string]Provider{
		"claude": &mockProvider{name: "claude"},
	})

	for i := 0; i < 3; i++ {
		f.ReportFailure("claude")
	}

	if _, err := f.GetProvider(context.Background()); err == nil {
		t.Error("expected error when all breakers are open")
	}
}

func TestReportSuccessClosesBreaker(t *testing.T) {
	f := NewFactoryWithProviders(map[string]Provider{
		"claude": &mockProvider{name: "claude"},
	})

	for i := 0; i < 3; i++ {
		f.ReportFailure("claude")
	}
	f.ReportSuccess("claude")

	if _, err := f.GetProvider(context.Background()); err != nil {
		t.Errorf("expected provider after ReportSuccess, got error: %v", err)
	}
}
