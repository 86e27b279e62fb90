package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

// BatchReport summarises one batch run.
type BatchReport struct {
	Documents int
	Extracted int
	Empty     int
	Duration  time.Duration
}

// BatchService runs offline jobs over every stored document.
type BatchService interface {
	// WarmTextCache extracts and caches the text of every document so the
	// first generation request for each is not slowed by PDF parsing.
	WarmTextCache(ctx context.Context, concurrency int) (*BatchReport, error)
}

type batchService struct {
	docRepo domain.DocumentRepository
	texts   DocumentTextService
}

func NewBatchService(docRepo domain.DocumentRepository, texts DocumentTextService) BatchService {
	return &batchService{docRepo: docRepo, texts: texts}
}

func (s *batchService) WarmTextCache(ctx context.Context, concurrency int) (*BatchReport, error) {
	l := logger.Get()
	start := time.Now()
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	docs, err := s.docRepo.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	l.Info("Starting text cache warm-up", zap.Int("documents", len(docs)), zap.Int("concurrency", concurrency))

	var extracted, empty atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if s.texts.Text(gctx, doc) == "" {
				l.Warn("No text extracted", zap.String("document_id", doc.ID), zap.String("path", doc.FilePath))
				empty.Add(1)
				return nil
			}
			extracted.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("text cache warm-up interrupted: %w", err)
	}

	report := &BatchReport{
		Documents: len(docs),
		Extracted: int(extracted.Load()),
		Empty:     int(empty.Load()),
		Duration:  time.Since(start),
	}
	l.Info("Text cache warm-up finished",
		zap.Int("documents", report.Documents),
		zap.Int("extracted", report.Extracted),
		zap.Int("empty", report.Empty),
		zap.Duration("duration", report.Duration))
	return report, nil
}
