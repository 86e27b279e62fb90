package service

import (
	"context"
	"fmt"
	"strings"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/parser"

	"go.uber.org/zap"
)

// ChatAnswerer answers a single question about a document.
type ChatAnswerer interface {
	Answer(ctx context.Context, question, documentText string) string
}

type chatAnswerer struct {
	gateway domain.Gateway
}

func NewChatAnswerer(gateway domain.Gateway) ChatAnswerer {
	return &chatAnswerer{gateway: gateway}
}

var notFoundMarkers = []string{"not_found", "not found", "cannot be found", "i don't know"}

func isNotFoundAnswer(answer string) bool {
	lower := strings.ToLower(answer)
	for _, marker := range notFoundMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Answer asks strictly from the document first. When the model reports the
// answer is not in the document it asks once more from general knowledge.
// The result is markdown formatted.
func (c *chatAnswerer) Answer(ctx context.Context, question, documentText string) string {
	l := logger.Get()

	raw, err := c.gateway.Generate(ctx, buildChatPrompt(question, documentText))
	if err != nil {
		l.Error("Chat answer failed", zap.Error(err))
		return ChatGatewayFailure
	}
	answer := strings.TrimSpace(raw)

	if isNotFoundAnswer(answer) {
		l.Info("Answer not found in document, falling back to general knowledge")
		fallback, err := c.gateway.Generate(ctx, fmt.Sprintf(chatFallbackPrompt, question))
		if err != nil {
			l.Error("Chat fallback failed", zap.Error(err))
			return ChatGatewayFailure
		}
		res := parser.ParseText(fallback)
		if !res.OK() {
			return parser.FormatChatAnswer(ChatFallbackEmpty)
		}
		return parser.FormatChatAnswer(res.Value)
	}

	if answer == "" {
		answer = ChatNoAnswer
	}
	return parser.FormatChatAnswer(answer)
}
