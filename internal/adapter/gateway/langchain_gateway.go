package gateway

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// LangchainGateway adapts any langchaingo model to the Gateway contract.
type LangchainGateway struct {
	model   llms.Model
	options []llms.CallOption
	timeout time.Duration
}

// NewLangchainGateway wraps model. options are applied to every call.
func NewLangchainGateway(model llms.Model, options ...llms.CallOption) *LangchainGateway {
	return &LangchainGateway{model: model, options: options}
}

// WithTimeout bounds every call by d; zero disables the bound.
func (g *LangchainGateway) WithTimeout(d time.Duration) *LangchainGateway {
	g.timeout = d
	return g
}

// NewOllamaGateway connects to an Ollama server through langchaingo.
func NewOllamaGateway(serverURL, modelName string) (*LangchainGateway, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	llm, err := ollama.New(
		ollama.WithModel(modelName),
		ollama.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}
	return NewLangchainGateway(llm, llms.WithTemperature(0.1)), nil
}

// Generate sends a single human message and returns the first choice.
func (g *LangchainGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	resp, err := g.model.GenerateContent(ctx, messages, g.options...)
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}

var _ domain.Gateway = (*LangchainGateway)(nil)
