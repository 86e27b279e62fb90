package service

import (
	"context"
	"fmt"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/parser"

	"go.uber.org/zap"
)

// FlashcardGenerator turns document text into question/answer cards.
type FlashcardGenerator interface {
	Generate(ctx context.Context, text string) []domain.GeneratedFlashcard
}

type flashcardGenerator struct {
	gateway domain.Gateway
}

func NewFlashcardGenerator(gateway domain.Gateway) FlashcardGenerator {
	return &flashcardGenerator{gateway: gateway}
}

// Generate returns the model's cards with difficulty normalised. Any gateway
// or parse failure yields an empty list.
func (g *flashcardGenerator) Generate(ctx context.Context, text string) []domain.GeneratedFlashcard {
	l := logger.Get()

	raw, err := g.gateway.Generate(ctx, fmt.Sprintf(flashcardPrompt, text))
	if err != nil {
		l.Error("Flashcard generation failed", zap.Error(err))
		return []domain.GeneratedFlashcard{}
	}

	res := parser.ParseJSONArray[domain.GeneratedFlashcard](raw)
	if !res.OK() {
		l.Warn("Could not parse flashcards from model output",
			zap.Stringer("outcome", res.Outcome),
			zap.Error(res.Err))
		return []domain.GeneratedFlashcard{}
	}

	cards := make([]domain.GeneratedFlashcard, len(res.Value))
	for i, c := range res.Value {
		c.Difficulty = string(domain.NormalizeDifficulty(c.Difficulty))
		cards[i] = c
	}
	if len(cards) != flashcardsPerRequest {
		l.Info("Model returned an unexpected number of flashcards",
			zap.Int("requested", flashcardsPerRequest),
			zap.Int("received", len(cards)))
	}
	return cards
}
