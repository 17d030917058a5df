package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model answers with no usable content.
var ErrEmptyResponse = errors.New("llm returned no usable content")

// Client sends a single (system, user) prompt pair to an LLM and returns
// the response text. userLimit caps the user prompt at that many
// characters before sending; a limit <= 0 sends the prompt unmodified.
// Implementations never retry: one failed call is one failed call.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, userLimit int) (string, error)
}

// Truncate caps s to at most limit characters (runes, not bytes, so a
// multi-byte rune is never split). A limit <= 0 leaves s unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
