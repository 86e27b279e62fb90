package service

import (
	"context"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/util"

	"go.uber.org/zap"
)

// FlashcardService generates and manages flashcard sets.
type FlashcardService interface {
	GenerateFlashcardSet(ctx context.Context, documentID string) (string, error)
	ListFlashcardSets(ctx context.Context, documentID string) ([]*domain.FlashcardSet, error)
	GetFlashcards(ctx context.Context, setID string) ([]*domain.Flashcard, error)
	DeleteFlashcardSet(ctx context.Context, setID string) (bool, error)
}

type flashcardService struct {
	cardRepo  domain.FlashcardRepository
	docRepo   domain.DocumentRepository
	texts     DocumentTextService
	generator FlashcardGenerator
	txManager domain.TransactionManager
}

func NewFlashcardService(
	cardRepo domain.FlashcardRepository,
	docRepo domain.DocumentRepository,
	texts DocumentTextService,
	generator FlashcardGenerator,
	txManager domain.TransactionManager,
) FlashcardService {
	return &flashcardService{
		cardRepo:  cardRepo,
		docRepo:   docRepo,
		texts:     texts,
		generator: generator,
		txManager: txManager,
	}
}

// GenerateFlashcardSet stores a new set with whatever cards the model
// produced, possibly none, and returns the set id.
func (s *flashcardService) GenerateFlashcardSet(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return "", domain.NewInternalError("Failed to load document", err)
	}
	if doc == nil {
		return "", domain.NewDocumentNotFoundError(documentID)
	}

	generated := s.generator.Generate(ctx, s.texts.Text(ctx, doc))

	set := &domain.FlashcardSet{ID: util.NewULID(), DocumentID: documentID}
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.cardRepo.CreateFlashcardSet(txCtx, set); err != nil {
			return err
		}
		for i, g := range generated {
			card := &domain.Flashcard{
				ID:         util.NewULID(),
				SetID:      set.ID,
				Question:   g.Question,
				Answer:     g.Answer,
				Difficulty: domain.NormalizeDifficulty(g.Difficulty),
				Position:   i,
			}
			if err := s.cardRepo.CreateFlashcard(txCtx, card); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", domain.NewInternalError("Failed to save flashcard set", err)
	}

	logger.Get().Info("Flashcard set generated",
		zap.String("set_id", set.ID),
		zap.String("document_id", documentID),
		zap.Int("cards", len(generated)))
	return set.ID, nil
}

func (s *flashcardService) ListFlashcardSets(ctx context.Context, documentID string) ([]*domain.FlashcardSet, error) {
	sets, err := s.cardRepo.ListFlashcardSetsByDocument(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list flashcard sets", err)
	}
	return sets, nil
}

func (s *flashcardService) GetFlashcards(ctx context.Context, setID string) ([]*domain.Flashcard, error) {
	cards, err := s.cardRepo.ListFlashcardsBySet(ctx, setID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load flashcards", err)
	}
	return cards, nil
}

// DeleteFlashcardSet removes the cards and then the set row.
func (s *flashcardService) DeleteFlashcardSet(ctx context.Context, setID string) (bool, error) {
	var deleted bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		removed, err := s.cardRepo.DeleteFlashcardsBySet(txCtx, setID)
		if err != nil {
			return err
		}
		deleted, err = s.cardRepo.DeleteFlashcardSet(txCtx, setID)
		if err == nil {
			logger.Get().Debug("Deleted flashcards", zap.String("set_id", setID), zap.Int64("cards", removed))
		}
		return err
	})
	if err != nil {
		return false, domain.NewInternalError("Failed to delete flashcard set", err)
	}
	return deleted, nil
}
