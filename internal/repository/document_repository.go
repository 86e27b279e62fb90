package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const documentColumns = `id, owner_id, title, filename, filesize, file_path, uploaded_at`

type DocumentDatabaseAdapter struct {
	db *sqlx.DB
}

// NewDocumentDatabaseAdapter creates a new instance of DocumentDatabaseAdapter
func NewDocumentDatabaseAdapter(db *sqlx.DB) domain.DocumentRepository {
	return &DocumentDatabaseAdapter{db: db}
}

func toDomainDocument(m *models.Document) *domain.Document {
	if m == nil {
		return nil
	}
	return &domain.Document{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Title:      m.Title,
		Filename:   m.Filename,
		Filesize:   m.Filesize,
		FilePath:   m.FilePath,
		UploadedAt: m.UploadedAt,
	}
}

func fromDomainDocument(d *domain.Document) *models.Document {
	if d == nil {
		return nil
	}
	return &models.Document{
		ID:         d.ID,
		OwnerID:    d.OwnerID,
		Title:      d.Title,
		Filename:   d.Filename,
		Filesize:   d.Filesize,
		FilePath:   d.FilePath,
		UploadedAt: d.UploadedAt,
	}
}

func (r *DocumentDatabaseAdapter) CreateDocument(ctx context.Context, doc *domain.Document) error {
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}
	query := `INSERT INTO documents (` + documentColumns + `)
	          VALUES (:id, :owner_id, :title, :filename, :filesize, :file_path, :uploaded_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainDocument(doc)); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *DocumentDatabaseAdapter) GetDocumentByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc models.Document
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return toDomainDocument(&doc), nil
}

func (r *DocumentDatabaseAdapter) ListDocumentsByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE owner_id = $1 ORDER BY uploaded_at DESC`
	return r.listDocuments(ctx, query, ownerID)
}

func (r *DocumentDatabaseAdapter) ListDocuments(ctx context.Context) ([]*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY uploaded_at DESC`
	return r.listDocuments(ctx, query)
}

func (r *DocumentDatabaseAdapter) listDocuments(ctx context.Context, query string, args ...interface{}) ([]*domain.Document, error) {
	var rows []models.Document
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	docs := make([]*domain.Document, len(rows))
	for i := range rows {
		docs[i] = toDomainDocument(&rows[i])
	}
	return docs, nil
}

func (r *DocumentDatabaseAdapter) DeleteDocument(ctx context.Context, id string) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *DocumentDatabaseAdapter) CountDocumentsByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM documents WHERE owner_id = $1`, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}
