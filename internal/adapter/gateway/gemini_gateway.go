package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// NewGeminiGateway connects to Gemini through langchaingo's googleai client.
// A zero timeout leaves calls bounded only by the caller's context.
func NewGeminiGateway(ctx context.Context, apiKey, model string, timeout time.Duration) (*LangchainGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Google AI client: %w", err)
	}
	return NewLangchainGateway(llm, llms.WithTemperature(0.2)).WithTimeout(timeout), nil
}
