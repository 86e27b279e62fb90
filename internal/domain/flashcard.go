package domain

import (
	"strings"
	"time"
)

// Difficulty of a flashcard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// NormalizeDifficulty upper-cases a model supplied difficulty. Missing or
// unknown values become EASY.
func NormalizeDifficulty(raw string) Difficulty {
	switch d := Difficulty(strings.ToUpper(strings.TrimSpace(raw))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyEasy
	}
}

// FlashcardSet groups the cards produced by one generation call.
type FlashcardSet struct {
	ID         string
	DocumentID string
	CreatedAt  time.Time
}

// Flashcard is a single question/answer card.
type Flashcard struct {
	ID         string
	SetID      string
	Question   string
	Answer     string
	Difficulty Difficulty
	Position   int
}

// GeneratedFlashcard is the model's JSON shape for a card.
type GeneratedFlashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty,omitempty"`
}
