// Package parser turns raw model output into typed results.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Outcome tags the result of parsing model output.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeEmpty
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the tagged outcome of a parse. Value is set only for OutcomeOK,
// Err only for OutcomeError.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Err     error
}

// OK reports whether the parse produced a value.
func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeOK
}

// StripCodeFence removes a surrounding ```json (or bare ```) fence.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = s[len("```json"):]
	case strings.HasPrefix(s, "```"):
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseText returns the trimmed text, or OutcomeEmpty for blank output.
func ParseText(raw string) Result[string] {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Result[string]{Outcome: OutcomeEmpty}
	}
	return Result[string]{Outcome: OutcomeOK, Value: s}
}

// ParseJSONArray decodes fenced or bare JSON array output into items of T.
func ParseJSONArray[T any](raw string) Result[[]T] {
	s := StripCodeFence(raw)
	if s == "" {
		return Result[[]T]{Outcome: OutcomeEmpty}
	}
	if !strings.HasPrefix(s, "[") {
		return Result[[]T]{Outcome: OutcomeError, Err: fmt.Errorf("expected JSON array, got %q", preview(s))}
	}

	var items []T
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return Result[[]T]{Outcome: OutcomeError, Err: fmt.Errorf("failed to unmarshal model output: %w", err)}
	}
	return Result[[]T]{Outcome: OutcomeOK, Value: items}
}

const previewLen = 80

// preview shortens s to previewLen runes for error messages.
func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	return string([]rune(s)[:previewLen]) + "..."
}
