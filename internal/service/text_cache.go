package service

import (
	"context"
	"errors"
	"time"

	"study-assistant/internal/cache"
	"study-assistant/internal/domain"
	"study-assistant/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DocumentTextService returns a document's extracted text, caching it by
// document id. Documents are immutable, so entries never need refreshing.
type DocumentTextService interface {
	Text(ctx context.Context, doc *domain.Document) string
	Evict(ctx context.Context, documentID string)
}

type documentTextService struct {
	extractor domain.TextExtractor
	cache     domain.Cache
	ttl       time.Duration
	sfGroup   singleflight.Group
}

// NewDocumentTextService creates the service. A nil cache disables caching.
func NewDocumentTextService(extractor domain.TextExtractor, c domain.Cache, ttl time.Duration) DocumentTextService {
	if c == nil {
		logger.Get().Warn("DocumentTextService initialized with nil cache. Text will be extracted on every request.")
	}
	return &documentTextService{extractor: extractor, cache: c, ttl: ttl}
}

// Text never fails: cache errors fall through to extraction.
func (s *documentTextService) Text(ctx context.Context, doc *domain.Document) string {
	l := logger.Get()
	key := cache.DocumentTextKey(doc.ID)

	if s.cache != nil {
		text, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			l.Debug("Document text cache hit", zap.String("key", key))
			return text
		case errors.Is(err, domain.ErrCacheMiss):
			l.Debug("Document text cache miss", zap.String("key", key))
		default:
			l.Warn("Failed to read document text from cache", zap.String("key", key), zap.Error(err))
		}
	}

	// Concurrent requests for the same document share one extraction, which
	// must outlive the cancellation of whichever request started it.
	shared := context.WithoutCancel(ctx)
	v, _, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		text := s.extractor.Extract(shared, doc.FilePath)
		if text == "" {
			// Leave failed extractions uncached so a repaired file is picked up.
			return text, nil
		}
		if s.cache != nil {
			if err := s.cache.Set(shared, key, text, s.ttl); err != nil {
				l.Warn("Failed to cache document text", zap.String("key", key), zap.Error(err))
			}
		}
		return text, nil
	})
	return v.(string)
}

func (s *documentTextService) Evict(ctx context.Context, documentID string) {
	if s.cache == nil {
		return
	}
	key := cache.DocumentTextKey(documentID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Warn("Failed to evict document text", zap.String("key", key), zap.Error(err))
	}
}
