package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var pdfMagic = []byte("%PDF-")

// DocumentService manages uploaded documents and the document-scoped
// generation operations that do not persist anything.
type DocumentService interface {
	Upload(ctx context.Context, in domain.UploadInput) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error)
	ListAll(ctx context.Context) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExtractText(ctx context.Context, id string) (string, error)
	Summarize(ctx context.Context, id string) (string, error)
	Chat(ctx context.Context, id, question, documentText string) (string, error)
	Stats(ctx context.Context, ownerID string) (*domain.UserStats, error)
}

type documentService struct {
	docRepo        domain.DocumentRepository
	cardRepo       domain.FlashcardRepository
	quizRepo       domain.QuizRepository
	files          domain.FileStore
	texts          DocumentTextService
	summarizer     Summarizer
	chat           ChatAnswerer
	maxUploadBytes int64
}

// DocumentServiceDeps groups the collaborators of the document service.
type DocumentServiceDeps struct {
	Documents      domain.DocumentRepository
	Flashcards     domain.FlashcardRepository
	Quizzes        domain.QuizRepository
	Files          domain.FileStore
	Texts          DocumentTextService
	Summarizer     Summarizer
	Chat           ChatAnswerer
	MaxUploadBytes int64
}

func NewDocumentService(deps DocumentServiceDeps) DocumentService {
	return &documentService{
		docRepo:        deps.Documents,
		cardRepo:       deps.Flashcards,
		quizRepo:       deps.Quizzes,
		files:          deps.Files,
		texts:          deps.Texts,
		summarizer:     deps.Summarizer,
		chat:           deps.Chat,
		maxUploadBytes: deps.MaxUploadBytes,
	}
}

func (s *documentService) validateUpload(in domain.UploadInput) error {
	if strings.TrimSpace(in.OwnerID) == "" {
		return domain.NewValidationError("user ID is required")
	}
	if len(in.Content) == 0 {
		return domain.NewValidationError("file is required")
	}
	if s.maxUploadBytes > 0 && int64(len(in.Content)) > s.maxUploadBytes {
		return domain.NewValidationError(fmt.Sprintf("file exceeds the %d byte limit", s.maxUploadBytes))
	}
	if !bytes.HasPrefix(in.Content, pdfMagic) {
		return domain.NewValidationError("only PDF files are allowed")
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, in domain.UploadInput) (*domain.Document, error) {
	if err := s.validateUpload(in); err != nil {
		return nil, err
	}

	path, err := s.files.Save(ctx, in.Filename, in.Content)
	if err != nil {
		return nil, domain.NewInternalError("Failed to store file", err)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = in.Filename
	}

	doc := &domain.Document{
		ID:         util.NewULID(),
		OwnerID:    in.OwnerID,
		Title:      title,
		Filename:   in.Filename,
		Filesize:   int64(len(in.Content)),
		FilePath:   path,
		UploadedAt: time.Now(),
	}
	if err := s.docRepo.CreateDocument(ctx, doc); err != nil {
		if delErr := s.files.Delete(ctx, path); delErr != nil {
			logger.Get().Warn("Failed to remove orphaned upload", zap.String("path", path), zap.Error(delErr))
		}
		return nil, domain.NewInternalError("Failed to save document", err)
	}

	logger.Get().Info("Document uploaded",
		zap.String("document_id", doc.ID),
		zap.String("owner_id", doc.OwnerID),
		zap.Int64("filesize", doc.Filesize))
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.docRepo.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load document", err)
	}
	if doc == nil {
		return nil, domain.NewDocumentNotFoundError(id)
	}
	return doc, nil
}

func (s *documentService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	docs, err := s.docRepo.ListDocumentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list documents", err)
	}
	return docs, nil
}

func (s *documentService) ListAll(ctx context.Context) ([]*domain.Document, error) {
	docs, err := s.docRepo.ListDocuments(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list documents", err)
	}
	return docs, nil
}

// Delete removes the row first. Generated sets and quizzes are kept.
func (s *documentService) Delete(ctx context.Context, id string) (bool, error) {
	l := logger.Get()

	doc, err := s.docRepo.GetDocumentByID(ctx, id)
	if err != nil {
		return false, domain.NewInternalError("Failed to load document", err)
	}
	if doc == nil {
		return false, nil
	}

	deleted, err := s.docRepo.DeleteDocument(ctx, id)
	if err != nil {
		return false, domain.NewInternalError("Failed to delete document", err)
	}

	if err := s.files.Delete(ctx, doc.FilePath); err != nil {
		l.Warn("Failed to delete document file", zap.String("document_id", id), zap.String("path", doc.FilePath), zap.Error(err))
	}
	s.texts.Evict(ctx, id)

	l.Info("Document deleted", zap.String("document_id", id))
	return deleted, nil
}

func (s *documentService) ExtractText(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.texts.Text(ctx, doc), nil
}

func (s *documentService) Summarize(ctx context.Context, id string) (string, error) {
	text, err := s.ExtractText(ctx, id)
	if err != nil {
		return "", err
	}
	return s.summarizer.Summarize(ctx, text), nil
}

// Chat answers from documentText when given, otherwise from the document's
// own text.
func (s *documentService) Chat(ctx context.Context, id, question, documentText string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", domain.NewValidationError("question is required")
	}
	if strings.TrimSpace(documentText) == "" {
		text, err := s.ExtractText(ctx, id)
		if err != nil {
			return "", err
		}
		documentText = text
	}
	return s.chat.Answer(ctx, question, documentText), nil
}

func (s *documentService) Stats(ctx context.Context, ownerID string) (*domain.UserStats, error) {
	var stats domain.UserStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.docRepo.CountDocumentsByOwner(gctx, ownerID)
		stats.Documents = n
		return err
	})
	g.Go(func() error {
		n, err := s.cardRepo.CountFlashcardsByOwner(gctx, ownerID)
		stats.Flashcards = n
		return err
	})
	g.Go(func() error {
		n, err := s.quizRepo.CountQuizzesByOwner(gctx, ownerID)
		stats.Quizzes = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to compute stats", err)
	}
	return &stats, nil
}
