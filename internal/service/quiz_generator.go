package service

import (
	"context"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/parser"

	"go.uber.org/zap"
)

// QuizGenerator turns document text into multiple-choice questions.
type QuizGenerator interface {
	Generate(ctx context.Context, text string, n int) []domain.GeneratedQuestion
}

type quizGenerator struct {
	gateway domain.Gateway
}

func NewQuizGenerator(gateway domain.Gateway) QuizGenerator {
	return &quizGenerator{gateway: gateway}
}

// rawQuestion keeps correct_option nullable so a missing index is not read as 0.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correct_option"`
}

// Generate returns the well-formed questions in model order. Malformed
// entries are skipped; gateway or parse failures yield an empty list.
func (g *quizGenerator) Generate(ctx context.Context, text string, n int) []domain.GeneratedQuestion {
	l := logger.Get()

	raw, err := g.gateway.Generate(ctx, buildQuizPrompt(text, n))
	if err != nil {
		l.Error("Quiz generation failed", zap.Error(err), zap.Int("num_questions", n))
		return []domain.GeneratedQuestion{}
	}

	res := parser.ParseJSONArray[rawQuestion](raw)
	if !res.OK() {
		l.Warn("Could not parse quiz questions from model output",
			zap.Stringer("outcome", res.Outcome),
			zap.Error(res.Err))
		return []domain.GeneratedQuestion{}
	}

	questions := make([]domain.GeneratedQuestion, 0, len(res.Value))
	for i, rq := range res.Value {
		if rq.CorrectOption == nil {
			l.Warn("Skipping generated question without correct_option", zap.Int("index", i))
			continue
		}
		candidate := domain.QuizQuestion{Question: rq.Question, Options: rq.Options, CorrectOption: *rq.CorrectOption}
		if err := candidate.Validate(); err != nil {
			l.Warn("Skipping malformed generated question", zap.Int("index", i), zap.Error(err))
			continue
		}
		questions = append(questions, domain.GeneratedQuestion{
			Question:      rq.Question,
			Options:       rq.Options,
			CorrectOption: *rq.CorrectOption,
		})
	}

	if len(questions) != n {
		l.Info("Model returned a different number of usable questions",
			zap.Int("requested", n),
			zap.Int("usable", len(questions)))
	}
	return questions
}
