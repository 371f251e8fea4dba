// Package chunk segments byte buffers into ordered, non-overlapping offset
// spans. It provides size-bounded chunking at single-byte delimiters or
// multi-byte patterns, exhaustive splitting at every delimiter or pattern
// occurrence, and token-budget merging of pre-counted segments.
//
// The package operates exclusively on byte buffers and integer offsets. It
// never decodes, copies, or mutates the input; callers slice the original
// buffer with the returned spans. Buffers may therefore be shared freely
// across concurrently running chunker instances, while a single instance is
// not safe for concurrent use.
package chunk

// DefaultTargetSize is the target chunk size in bytes used when no size is
// configured.
const DefaultTargetSize = 4096

// DefaultDelimiters are the delimiter bytes used when neither delimiters nor
// a pattern are configured.
var DefaultDelimiters = []byte("\n.?")

// IncludeDelim controls which segment a delimiter is attached to when
// splitting exhaustively.
type IncludeDelim int

const (
	// IncludeDelimPrev attaches the delimiter to the end of the segment
	// that precedes it.
	IncludeDelimPrev IncludeDelim = iota
	// IncludeDelimNext attaches the delimiter to the start of the segment
	// that follows it.
	IncludeDelimNext
	// IncludeDelimNone drops delimiter bytes from the output entirely.
	IncludeDelimNone
)

// String returns the name of the attachment policy.
func (i IncludeDelim) String() string {
	switch i {
	case IncludeDelimPrev:
		return "prev"
	case IncludeDelimNext:
		return "next"
	case IncludeDelimNone:
		return "none"
	}
	return "unknown"
}
