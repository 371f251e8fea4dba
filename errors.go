package chunk

import "errors"

// Configuration errors reported at construction time. They are never coerced
// into fallback values.
var (
	// ErrNoDelimiters is returned when an empty delimiter set is configured.
	ErrNoDelimiters = errors.New("chunk: delimiter set is empty")
	// ErrEmptyPattern is returned when an empty pattern is configured.
	ErrEmptyPattern = errors.New("chunk: pattern is empty")
	// ErrInvalidSize is returned when the target size is not positive.
	ErrInvalidSize = errors.New("chunk: target size must be positive")
	// ErrInvalidChunkSize is returned when the merge token budget is not positive.
	ErrInvalidChunkSize = errors.New("chunk: chunk size must be positive")
	// ErrInvalidMinChars is returned when a negative minimum segment length is configured.
	ErrInvalidMinChars = errors.New("chunk: min chars must be non-negative")
	// ErrInvalidIncludeDelim is returned for an attachment policy outside prev/next/none.
	ErrInvalidIncludeDelim = errors.New("chunk: invalid include delim policy")
)
