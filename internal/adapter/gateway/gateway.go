// Package gateway implements the text-generation gateway over langchaingo
// models (Google AI Gemini or Ollama).
package gateway

import (
	"context"
	"fmt"

	"study-assistant/internal/config"
	"study-assistant/internal/domain"
)

// New builds the gateway selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (domain.Gateway, error) {
	switch cfg.Provider {
	case "", "gemini":
		gw, err := NewGeminiGateway(ctx, cfg.APIKey, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case "ollama":
		gw, err := NewOllamaGateway(cfg.OllamaURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		return gw.WithTimeout(cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
