package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiModel is the Gemini model used for PKGBUILD analysis.
const GeminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using the Google AI API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider using GOOGLE_API_KEY (or GEMINI_API_KEY).
// Returns an error if the API key is not set.
func NewGeminiProvider(ctx context.Context) (*GeminiProvider, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY (or GEMINI_API_KEY) environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  GeminiModel,
	}, nil
}

// Name returns the provider identifier.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Complete sends messages to Gemini and returns a single response.
func (p *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := p.client.GenerativeModel(p.model)

	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}

	if req.MaxTokens > 0 {
		model.MaxOutputTokens = int32Ptr(int32(req.MaxTokens))
	}

	if req.Temperature > 0 {
		model.SetTemperature(float32(req.Temperature))
	}

	var parts []genai.Part
	for _, msg := range req.Messages {
		if msg.Content != "" {
			parts = append(parts, genai.Text(msg.Content))
		}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	return p.convertResponse(resp), nil
}

// Close releases the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// convertResponse converts a Gemini response to CompletionResponse.
func (p *GeminiProvider) convertResponse(resp *genai.GenerateContentResponse) *CompletionResponse {
	result := &CompletionResponse{StopReason: "end_turn"}

	if resp == nil || len(resp.Candidates) == 0 {
		return result
	}

	candidate := resp.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				result.Content += string(text)
			}
		}
	}

	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		result.StopReason = "max_tokens"
	}

	if resp.UsageMetadata != nil {
		result.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return result
}

// int32Ptr returns a pointer to the given int32 value.
func int32Ptr(v int32) *int32 {
	return &v
}
