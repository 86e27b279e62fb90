// Package extractor pulls plain text out of stored PDF documents.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFExtractor reads documents from a FileStore and extracts their text.
type PDFExtractor struct {
	store domain.FileStore
}

// NewPDFExtractor creates an extractor over store.
func NewPDFExtractor(store domain.FileStore) *PDFExtractor {
	return &PDFExtractor{store: store}
}

// Extract returns the text of every readable page in page order. Fragments
// on a page are joined by a space and pages by a newline. Any failure to
// read or parse the file yields "".
func (e *PDFExtractor) Extract(ctx context.Context, path string) string {
	l := logger.Get()

	data, err := e.store.Read(ctx, path)
	if err != nil {
		l.Warn("Failed to read document for extraction", zap.String("path", path), zap.Error(err))
		return ""
	}

	text, err := extractPDFText(data)
	if err != nil {
		l.Warn("PDF extraction failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return text
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		pageText, ok := pageText(r.Page(i))
		if !ok {
			continue
		}
		pages = append(pages, pageText)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// pageText joins the fragments of one page. ok is false when the page could
// not be read.
func pageText(p pdf.Page) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	if p.V.IsNull() {
		return "", false
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return "", false
	}

	var fragments []string
	for _, row := range rows {
		for _, t := range row.Content {
			fragments = append(fragments, t.S)
		}
	}
	return strings.Join(fragments, " "), true
}

var _ domain.TextExtractor = (*PDFExtractor)(nil)
