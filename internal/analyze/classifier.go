package analyze

import (
	"context"
	"encoding/json"

	"github.com/arx-sec/arx/internal/llm"
	"github.com/arx-sec/arx/internal/log"
)

// classifierTemperature keeps the verdict near-deterministic.
const classifierTemperature = 0.1

// classifierMaxTokens bounds the reply length.
const classifierMaxTokens = 4096

// Options configures the Classifier.
type Options struct {
	// Logger for diagnostics. If nil, uses log.Default().
	Logger log.Logger
}

// Classifier submits PKGBUILD contents to a completion provider and parses
// the structured verdict out of the reply.
type Classifier struct {
	factory *llm.Factory
	logger  log.Logger
}

// NewClassifier creates a Classifier. A nil factory means no credential is
// configured; Analyze then returns the "analysis not available" verdict
// without making network calls.
func NewClassifier(factory *llm.Factory) *Classifier {
	return NewClassifierWithOptions(factory, Options{})
}

// NewClassifierWithOptions creates a Classifier with explicit options.
func NewClassifierWithOptions(factory *llm.Factory, opts Options) *Classifier {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Classifier{factory: factory, logger: logger}
}

// Available reports whether a completion provider is configured.
func (c *Classifier) Available() bool {
	return c.factory != nil
}

// Analyze classifies one package's PKGBUILD. It never returns an error:
// missing credentials, provider failures, and unparsable replies all
// degrade to a cautious midpoint verdict.
func (c *Classifier) Analyze(ctx context.Context, name, pkgbuild string) Verdict {
	if c.factory == nil {
		return unavailableVerdict()
	}

	provider, err := c.factory.GetProvider(ctx)
	if err != nil {
		c.logger.Warn("no classifier provider available", "package", name, "error", err)
		return failedVerdict(err)
	}

	c.logger.Info("querying classifier", "package", name, "provider", provider.Name())

	resp, err := provider.Complete(ctx, &llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(name, pkgbuild)},
		},
		MaxTokens:   classifierMaxTokens,
		Temperature: classifierTemperature,
	})
	if err != nil {
		c.factory.ReportFailure(provider.Name())
		c.logger.Warn("classifier request failed", "package", name,
			"provider", provider.Name(), "error", err)
		return failedVerdict(err)
	}

	c.factory.ReportSuccess(provider.Name())
	c.logger.Debug("classifier reply received", "package", name,
		"input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)

	return parseVerdict(resp.Content)
}

// verdictPayload mirrors the JSON shape requested from the model.
// Confidence is a pointer so an absent key falls back to the midpoint.
type verdictPayload struct {
	MaliciousIntent    bool     `json:"malicious_intent"`
	Confidence         *float64 `json:"confidence"`
	SuspiciousPatterns []string `json:"suspicious_patterns"`
	Recommendations    []string `json:"recommendations"`
	Analysis           string   `json:"analysis"`
}

// parseVerdict extracts the verdict object from the model's free-text
// reply. A reply without a usable object degrades to the "could not parse"
// verdict carrying the raw text.
func parseVerdict(reply string) Verdict {
	raw, ok := firstJSONObject(reply)
	if !ok {
		return unparsedVerdict(reply)
	}

	var payload verdictPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return unparsedVerdict(reply)
	}

	confidence := NeutralConfidence
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}

	return Verdict{
		MaliciousIntent:    payload.MaliciousIntent,
		Confidence:         confidence,
		SuspiciousPatterns: payload.SuspiciousPatterns,
		Recommendations:    payload.Recommendations,
		Analysis:           payload.Analysis,
	}
}
