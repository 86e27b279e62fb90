package service

import (
	"context"
	"testing"

	"study-assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateFlashcardSet(t *testing.T) {
	ctx := context.Background()
	doc := &domain.Document{ID: "doc-1", FilePath: "/uploads/doc.pdf"}

	t.Run("stores set and cards", func(t *testing.T) {
		cardRepo := new(MockFlashcardRepository)
		docRepo := new(MockDocumentRepository)
		tx := &passthroughTxManager{}
		gw := newScriptedGateway(gatewayReply{text: `[
			{"question":"Q1","answer":"A1","difficulty":"HARD"},
			{"question":"Q2","answer":"A2","difficulty":"medium"}
		]`})

		docRepo.On("GetDocumentByID", ctx, "doc-1").Return(doc, nil)
		cardRepo.On("CreateFlashcardSet", ctx, mock.MatchedBy(func(s *domain.FlashcardSet) bool {
			return s.DocumentID == "doc-1" && s.ID != ""
		})).Return(nil).Once()
		var cards []*domain.Flashcard
		cardRepo.On("CreateFlashcard", ctx, mock.AnythingOfType("*domain.Flashcard")).
			Run(func(args mock.Arguments) { cards = append(cards, args.Get(1).(*domain.Flashcard)) }).
			Return(nil).Twice()

		svc := NewFlashcardService(cardRepo, docRepo, &stubTextService{text: "text"}, NewFlashcardGenerator(gw), tx)
		setID, err := svc.GenerateFlashcardSet(ctx, "doc-1")

		require.NoError(t, err)
		assert.NotEmpty(t, setID)
		require.Len(t, cards, 2)
		assert.Equal(t, setID, cards[0].SetID)
		assert.Equal(t, domain.DifficultyHard, cards[0].Difficulty)
		assert.Equal(t, domain.DifficultyMedium, cards[1].Difficulty)
		assert.Equal(t, 1, cards[1].Position)
		assert.Equal(t, 1, tx.calls)
		cardRepo.AssertExpectations(t)
	})

	t.Run("not json still returns a set id", func(t *testing.T) {
		cardRepo := new(MockFlashcardRepository)
		docRepo := new(MockDocumentRepository)
		docRepo.On("GetDocumentByID", ctx, "doc-1").Return(doc, nil)
		cardRepo.On("CreateFlashcardSet", ctx, mock.Anything).Return(nil).Once()

		svc := NewFlashcardService(cardRepo, docRepo, &stubTextService{text: "text"},
			NewFlashcardGenerator(newScriptedGateway(gatewayReply{text: "not json"})), &passthroughTxManager{})
		setID, err := svc.GenerateFlashcardSet(ctx, "doc-1")

		require.NoError(t, err)
		assert.NotEmpty(t, setID)
		cardRepo.AssertNotCalled(t, "CreateFlashcard", mock.Anything, mock.Anything)
	})

	t.Run("missing document", func(t *testing.T) {
		docRepo := new(MockDocumentRepository)
		docRepo.On("GetDocumentByID", ctx, "gone").Return(nil, nil)

		svc := NewFlashcardService(new(MockFlashcardRepository), docRepo, &stubTextService{},
			NewFlashcardGenerator(newScriptedGateway()), &passthroughTxManager{})
		_, err := svc.GenerateFlashcardSet(ctx, "gone")

		assert.Equal(t, domain.ErrDocumentNotFound, domain.CodeOf(err))
	})
}

func TestDeleteFlashcardSet_RemovesCardsFirst(t *testing.T) {
	ctx := context.Background()
	cardRepo := new(MockFlashcardRepository)
	tx := &passthroughTxManager{}

	var order []string
	cardRepo.On("DeleteFlashcardsBySet", ctx, "set-1").
		Run(func(mock.Arguments) { order = append(order, "cards") }).
		Return(int64(5), nil).Once()
	cardRepo.On("DeleteFlashcardSet", ctx, "set-1").
		Run(func(mock.Arguments) { order = append(order, "set") }).
		Return(true, nil).Once()

	svc := NewFlashcardService(cardRepo, new(MockDocumentRepository), &stubTextService{},
		NewFlashcardGenerator(newScriptedGateway()), tx)
	deleted, err := svc.DeleteFlashcardSet(ctx, "set-1")

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"cards", "set"}, order)
	assert.Equal(t, 1, tx.calls)
	cardRepo.AssertExpectations(t)
}

func TestDeleteFlashcardSet_Missing(t *testing.T) {
	ctx := context.Background()
	cardRepo := new(MockFlashcardRepository)
	cardRepo.On("DeleteFlashcardsBySet", ctx, "none").Return(int64(0), nil)
	cardRepo.On("DeleteFlashcardSet", ctx, "none").Return(false, nil)

	svc := NewFlashcardService(cardRepo, new(MockDocumentRepository), &stubTextService{},
		NewFlashcardGenerator(newScriptedGateway()), &passthroughTxManager{})
	deleted, err := svc.DeleteFlashcardSet(ctx, "none")

	require.NoError(t, err)
	assert.False(t, deleted)
}
