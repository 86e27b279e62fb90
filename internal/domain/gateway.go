package domain

import "context"

// Gateway sends a single prompt to a text-generation model and returns the
// text of the first candidate, or "" when the model produced none.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextExtractor produces the plain text of a stored document. It never
// fails: unreadable input yields "".
type TextExtractor interface {
	Extract(ctx context.Context, path string) string
}
