package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardHandler(t *testing.T) {
	app, svcs := newTestApp()
	docID := util.NewULID()
	setID := util.NewULID()

	svcs.cards.GenerateFlashcardSetFunc = func(_ context.Context, documentID string) (string, error) {
		assert.Equal(t, docID, documentID)
		return setID, nil
	}
	svcs.cards.ListFlashcardSetsFunc = func(_ context.Context, documentID string) ([]*domain.FlashcardSet, error) {
		return []*domain.FlashcardSet{{ID: setID, DocumentID: documentID}}, nil
	}
	svcs.cards.GetFlashcardsFunc = func(context.Context, string) ([]*domain.Flashcard, error) {
		return []*domain.Flashcard{{ID: "c1", SetID: setID, Question: "Q", Answer: "A", Difficulty: domain.DifficultyHard}}, nil
	}
	svcs.cards.DeleteFlashcardSetFunc = func(context.Context, string) (bool, error) { return true, nil }

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/documents/"+docID+"/flashcards/generate", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, setID, decode[dto.GenerateFlashcardsResponse](t, resp).SetID)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+docID+"/flashcards/sets", nil))
	require.NoError(t, err)
	assert.Len(t, decode[dto.FlashcardSetsResponse](t, resp).Sets, 1)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/flashcards/"+setID, nil))
	require.NoError(t, err)
	cards := decode[dto.FlashcardsResponse](t, resp).Flashcards
	require.Len(t, cards, 1)
	assert.Equal(t, "HARD", cards[0].Difficulty)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/documents/flashcards/"+setID, nil))
	require.NoError(t, err)
	assert.True(t, decode[dto.SuccessResponse](t, resp).Success)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/documents/flashcards/not-an-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
