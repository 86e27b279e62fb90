package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"study-assistant/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var documentRowColumns = []string{"id", "owner_id", "title", "filename", "filesize", "file_path", "uploaded_at"}

func TestDocumentRepository_CreateDocument(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)

	doc := &domain.Document{
		ID:       "doc1",
		OwnerID:  "user1",
		Title:    "Biology",
		Filename: "bio.pdf",
		Filesize: 2048,
		FilePath: "uploads/x-bio.pdf",
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO documents (id, owner_id, title, filename, filesize, file_path, uploaded_at)`)).
		WithArgs("doc1", "user1", "Biology", "bio.pdf", int64(2048), "uploads/x-bio.pdf", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, doc.UploadedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetDocumentByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows(documentRowColumns).
		AddRow("doc1", "user1", "Biology", "bio.pdf", 2048, "uploads/x-bio.pdf", now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM documents WHERE id = $1`)).
		WithArgs("doc1").
		WillReturnRows(rows)

	doc, err := repo.GetDocumentByID(context.Background(), "doc1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Biology", doc.Title)
	assert.Equal(t, int64(2048), doc.Filesize)
	assert.Equal(t, "uploads/x-bio.pdf", doc.FilePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetDocumentByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM documents WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	doc, err := repo.GetDocumentByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListDocumentsByOwner(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows(documentRowColumns).
		AddRow("doc2", "user1", "Newer", "b.pdf", 1, "p2", now).
		AddRow("doc1", "user1", "Older", "a.pdf", 1, "p1", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM documents WHERE owner_id = $1 ORDER BY uploaded_at DESC`)).
		WithArgs("user1").
		WillReturnRows(rows)

	docs, err := repo.ListDocumentsByOwner(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc2", docs[0].ID)
	assert.Equal(t, "doc1", docs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListDocuments_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM documents ORDER BY uploaded_at DESC`)).
		WillReturnError(errors.New("connection lost"))

	docs, err := repo.ListDocuments(context.Background())
	assert.Error(t, err)
	assert.Nil(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_DeleteDocument(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE id = $1`)).
		WithArgs("doc1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE id = $1`)).
		WithArgs("doc1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteDocument(context.Background(), "doc1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteDocument(context.Background(), "doc1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_CountDocumentsByOwner(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDocumentDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM documents WHERE owner_id = $1`)).
		WithArgs("user1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountDocumentsByOwner(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
