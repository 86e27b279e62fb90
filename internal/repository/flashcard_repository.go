package repository

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type FlashcardDatabaseAdapter struct {
	db *sqlx.DB
}

// NewFlashcardDatabaseAdapter creates a new instance of FlashcardDatabaseAdapter
func NewFlashcardDatabaseAdapter(db *sqlx.DB) domain.FlashcardRepository {
	return &FlashcardDatabaseAdapter{db: db}
}

func (r *FlashcardDatabaseAdapter) CreateFlashcardSet(ctx context.Context, set *domain.FlashcardSet) error {
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}
	model := models.FlashcardSet{ID: set.ID, DocumentID: set.DocumentID, CreatedAt: set.CreatedAt}
	query := `INSERT INTO flashcard_sets (id, document_id, created_at) VALUES (:id, :document_id, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create flashcard set: %w", err)
	}
	return nil
}

func (r *FlashcardDatabaseAdapter) CreateFlashcard(ctx context.Context, card *domain.Flashcard) error {
	model := models.Flashcard{
		ID:         card.ID,
		SetID:      card.SetID,
		Question:   card.Question,
		Answer:     card.Answer,
		Difficulty: string(card.Difficulty),
		Position:   card.Position,
	}
	query := `INSERT INTO flashcards (id, set_id, question, answer, difficulty, position)
	          VALUES (:id, :set_id, :question, :answer, :difficulty, :position)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create flashcard: %w", err)
	}
	return nil
}

func (r *FlashcardDatabaseAdapter) ListFlashcardSetsByDocument(ctx context.Context, documentID string) ([]*domain.FlashcardSet, error) {
	var rows []models.FlashcardSet
	query := `SELECT id, document_id, created_at FROM flashcard_sets WHERE document_id = $1 ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, documentID); err != nil {
		return nil, fmt.Errorf("failed to list flashcard sets: %w", err)
	}
	sets := make([]*domain.FlashcardSet, len(rows))
	for i, row := range rows {
		sets[i] = &domain.FlashcardSet{ID: row.ID, DocumentID: row.DocumentID, CreatedAt: row.CreatedAt}
	}
	return sets, nil
}

func (r *FlashcardDatabaseAdapter) ListFlashcardsBySet(ctx context.Context, setID string) ([]*domain.Flashcard, error) {
	var rows []models.Flashcard
	query := `SELECT id, set_id, question, answer, difficulty, position FROM flashcards WHERE set_id = $1 ORDER BY position`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, setID); err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}
	cards := make([]*domain.Flashcard, len(rows))
	for i, row := range rows {
		cards[i] = &domain.Flashcard{
			ID:         row.ID,
			SetID:      row.SetID,
			Question:   row.Question,
			Answer:     row.Answer,
			Difficulty: domain.Difficulty(row.Difficulty),
			Position:   row.Position,
		}
	}
	return cards, nil
}

func (r *FlashcardDatabaseAdapter) DeleteFlashcardsBySet(ctx context.Context, setID string) (int64, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM flashcards WHERE set_id = $1`, setID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete flashcards of set %s: %w", setID, err)
	}
	return res.RowsAffected()
}

func (r *FlashcardDatabaseAdapter) DeleteFlashcardSet(ctx context.Context, setID string) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM flashcard_sets WHERE id = $1`, setID)
	if err != nil {
		return false, fmt.Errorf("failed to delete flashcard set %s: %w", setID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *FlashcardDatabaseAdapter) CountFlashcardsByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM flashcards f
	          JOIN flashcard_sets s ON s.id = f.set_id
	          JOIN documents d ON d.id = s.document_id
	          WHERE d.owner_id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count flashcards: %w", err)
	}
	return count, nil
}
