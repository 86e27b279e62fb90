package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"study-assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTextService returns text per document id and records lookups.
type recordingTextService struct {
	mu    sync.Mutex
	texts map[string]string
	seen  []string
}

func (s *recordingTextService) Text(_ context.Context, doc *domain.Document) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, doc.ID)
	return s.texts[doc.ID]
}

func (s *recordingTextService) Evict(context.Context, string) {}

func TestBatchService_WarmTextCache(t *testing.T) {
	ctx := context.Background()

	t.Run("visits every document", func(t *testing.T) {
		docRepo := new(MockDocumentRepository)
		docRepo.On("ListDocuments", ctx).Return([]*domain.Document{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
		texts := &recordingTextService{texts: map[string]string{"a": "alpha", "c": "gamma"}}

		report, err := NewBatchService(docRepo, texts).WarmTextCache(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, report.Documents)
		assert.Equal(t, 2, report.Extracted)
		assert.Equal(t, 1, report.Empty)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, texts.seen)
	})

	t.Run("listing failure", func(t *testing.T) {
		docRepo := new(MockDocumentRepository)
		docRepo.On("ListDocuments", ctx).Return(nil, errors.New("db down"))

		_, err := NewBatchService(docRepo, &recordingTextService{}).WarmTextCache(ctx, 0)
		assert.ErrorContains(t, err, "failed to list documents")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		docRepo := new(MockDocumentRepository)
		docRepo.On("ListDocuments", cctx).Return([]*domain.Document{{ID: "a"}}, nil)

		_, err := NewBatchService(docRepo, &recordingTextService{}).WarmTextCache(cctx, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
