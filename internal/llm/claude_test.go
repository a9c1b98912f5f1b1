package llm

import (
	"testing"
)

func TestNewClaudeProvider_NoAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := NewClaudeProvider(); err == nil {
		t.Error("expected error when ANTHROPIC_API_KEY is not set")
	}
}

func TestNewClaudeProvider_WithAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	provider, err := NewClaudeProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Error("expected non-nil provider")
	}
}

func TestClaudeProvider_Name(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	provider, err := NewClaudeProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := provider.Name(); got != "claude" {
		t.Errorf("Name() = %q, want %q", got, "claude")
	}
}

func TestToAnthropicMessages(t *testing.T) {
	msgs := []Message{
		{Role: RoleUser, Content: "analyze this PKGBUILD"},
		{Role: RoleAssistant, Content: "verdict follows"},
	}

	result := toAnthropicMessages(msgs)
	if len(result) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(result))
	}
}

func TestUsageAdd(t *testing.T) {
	total := Usage{InputTokens: 10, OutputTokens: 5}
	total.Add(Usage{InputTokens: 7, OutputTokens: 3})

	if total.InputTokens != 17 || total.OutputTokens != 8 {
		t.Errorf("Usage.Add = %+v, want {17 8}", total)
	}
}
