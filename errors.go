package gol10n

import "fmt"

// NullContentError indicates a document arrived with no content at all.
// Expansion of that document is aborted; no output is produced for it.
type NullContentError struct {
	Path string
}

func (e *NullContentError) Error() string {
	return fmt.Sprintf("document %q has no content", e.Path)
}

// StreamingError indicates a document arrived with unbuffered content.
// The engine requires content to be fully materialized before scanning.
type StreamingError struct {
	Path string
}

func (e *StreamingError) Error() string {
	return fmt.Sprintf("document %q has streamed content, buffered content is required", e.Path)
}

// ProviderError indicates an AI provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates the AI returned a different number of
// translations than expected.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translation count mismatch: expected %d, got %d", e.Expected, e.Got)
}
