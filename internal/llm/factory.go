package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNoCredentials is returned when no completion service credential is
// configured. The classifier maps this to its "analysis not available"
// verdict instead of failing the gate.
var ErrNoCredentials = errors.New("no classifier credentials configured: set ANTHROPIC_API_KEY or GEMINI_API_KEY")

// Factory creates and manages LLM providers with circuit breakers.
// It auto-detects available providers from environment variables and
// falls back to another provider when the primary is unavailable.
type Factory struct {
	providers map[string]Provider
	breakers  map[string]*CircuitBreaker
	primary   string
}

// NewFactory creates a factory with available providers.
// Availability is detected from environment variables:
//   - Claude: ANTHROPIC_API_KEY
//   - Gemini: GOOGLE_API_KEY or GEMINI_API_KEY
//
// Returns ErrNoCredentials if no provider credential is set.
func NewFactory(ctx context.Context) (*Factory, error) {
	f := &Factory{
		providers: make(map[string]Provider),
		breakers:  make(map[string]*CircuitBreaker),
		primary:   "claude",
	}

	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		provider, err := NewClaudeProvider()
		if err == nil {
			f.providers["claude"] = provider
			f.breakers["claude"] = NewCircuitBreaker("claude")
		}
	}

	if os.Getenv("GOOGLE_API_KEY") != "" || os.Getenv("GEMINI_API_KEY") != "" {
		provider, err := NewGeminiProvider(ctx)
		if err == nil {
			f.providers["gemini"] = provider
			f.breakers["gemini"] = NewCircuitBreaker("gemini")
		}
	}

	if len(f.providers) == 0 {
		return nil, ErrNoCredentials
	}

	return f, nil
}

// NewFactoryWithProviders creates a factory with the given providers.
// This is useful for testing with mock providers.
func NewFactoryWithProviders(providers map[string]Provider) *Factory {
	f := &Factory{
		providers: make(map[string]Provider),
		breakers:  make(map[string]*CircuitBreaker),
		primary:   "claude",
	}

	for name, provider := range providers {
		f.providers[name] = provider
		f.breakers[name] = NewCircuitBreaker(name)
	}

	return f
}

// GetProvider returns an available provider, respecting circuit breaker
// state. The primary provider is preferred; any other provider with an
// allowing breaker serves as fallback.
func (f *Factory) GetProvider(ctx context.Context) (Provider, error) {
	if provider, ok := f.providers[f.primary]; ok {
		if breaker := f.breakers[f.primary]; breaker != nil && breaker.Allow() {
			return provider, nil
		}
	}

	for name, provider := range f.providers {
		if name == f.primary {
			continue // Already tried primary
		}
		if breaker := f.breakers[name]; breaker != nil && breaker.Allow() {
			return provider, nil
		}
	}

	return nil, fmt.Errorf("no providers available: all circuit breakers are open")
}

// ReportSuccess records a successful completion for the named provider,
// resetting its circuit breaker.
func (f *Factory) ReportSuccess(providerName string) {
	if breaker, ok := f.breakers[providerName]; ok {
		breaker.RecordSuccess()
	}
}

// ReportFailure records a failed completion for the named provider,
// which may trip its circuit breaker.
func (f *Factory) ReportFailure(providerName string) {
	if breaker, ok := f.breakers[providerName]; ok {
		breaker.RecordFailure()
	}
}

// HasProvider returns true if the factory has the specified provider.
func (f *Factory) HasProvider(name string) bool {
	_, ok := f.providers[name]
	return ok
}

// ProviderCount returns the number of registered providers.
func (f *Factory) ProviderCount() int {
	return len(f.providers)
}
