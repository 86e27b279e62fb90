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

// Summarizer produces a narrative summary of document text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

type summarizer struct {
	gateway domain.Gateway
}

func NewSummarizer(gateway domain.Gateway) Summarizer {
	return &summarizer{gateway: gateway}
}

// Summarize never fails; gateway errors and empty output map to fixed replies.
func (s *summarizer) Summarize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return SummaryNoText
	}

	raw, err := s.gateway.Generate(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		logger.Get().Error("Summary generation failed", zap.Error(err))
		return SummaryFailed
	}

	res := parser.ParseText(raw)
	if !res.OK() {
		logger.Get().Warn("Model returned an empty summary")
		return SummaryEmpty
	}
	return res.Value
}
