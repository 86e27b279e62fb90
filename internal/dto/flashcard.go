package dto

import (
	"time"

	"study-assistant/internal/domain"
)

type FlashcardSetResponse struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type FlashcardResponse struct {
	ID         string `json:"id"`
	SetID      string `json:"set_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

type GenerateFlashcardsResponse struct {
	SetID string `json:"setId"`
}

type FlashcardSetsResponse struct {
	Sets []FlashcardSetResponse `json:"sets"`
}

type FlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
}

func NewFlashcardSetsResponse(sets []*domain.FlashcardSet) FlashcardSetsResponse {
	out := make([]FlashcardSetResponse, len(sets))
	for i, s := range sets {
		out[i] = FlashcardSetResponse{ID: s.ID, DocumentID: s.DocumentID, CreatedAt: s.CreatedAt}
	}
	return FlashcardSetsResponse{Sets: out}
}

func NewFlashcardsResponse(cards []*domain.Flashcard) FlashcardsResponse {
	out := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = FlashcardResponse{
			ID:         c.ID,
			SetID:      c.SetID,
			Question:   c.Question,
			Answer:     c.Answer,
			Difficulty: string(c.Difficulty),
		}
	}
	return FlashcardsResponse{Flashcards: out}
}
