// Package textchunker combines the exhaustive splitter, a token counter, and
// the token-budget merger into a single text chunking pipeline: split a
// buffer at delimiters, count each segment, then pack segments into chunks
// that fit a token budget, optionally overlapping adjacent chunks.
package textchunker

import (
	"errors"

	"github.com/bububa/chunk"
	"github.com/bububa/chunk/tokencounter"
)

// ErrInvalidOverlap is returned when the configured overlap is negative or
// does not leave room for new tokens within the chunk budget.
var ErrInvalidOverlap = errors.New("textchunker: overlap must be non-negative and smaller than chunk size")

// Chunk is one merged output unit. Span locates it in the input buffer;
// StartSegment and EndSegment identify the raw segments it covers.
type Chunk struct {
	chunk.Span
	// TokenSize is the chunk's token count, join costs included.
	TokenSize int
	// StartSegment is the index of the first segment in this chunk.
	StartSegment int
	// EndSegment is the index of the last segment in this chunk (exclusive).
	EndSegment int
}

// Options holds the resolved configuration of a Chunker.
type Options struct {
	chunkSize         int
	overlap           int
	delimiters        []byte
	include           chunk.IncludeDelim
	minChars          int
	counter           tokencounter.TokenCounter
	combineWhitespace bool
}

// Option is a function type for configuring chunker Options.
type Option func(*Options)

// WithChunkSize sets the token budget per chunk.
func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.chunkSize = size
	}
}

// WithOverlap sets the number of tokens adjacent chunks should share. The
// start of each chunk after the first is moved back over preceding segments
// until at least this many tokens repeat.
func WithOverlap(overlap int) Option {
	return func(o *Options) {
		o.overlap = overlap
	}
}

// WithDelimiters sets the delimiter byte set segments are split at.
func WithDelimiters(delimiters []byte) Option {
	return func(o *Options) {
		o.delimiters = delimiters
	}
}

// WithIncludeDelim sets the delimiter attachment policy.
func WithIncludeDelim(include chunk.IncludeDelim) Option {
	return func(o *Options) {
		o.include = include
	}
}

// WithMinChars sets the minimum raw segment length in bytes.
func WithMinChars(minChars int) Option {
	return func(o *Options) {
		o.minChars = minChars
	}
}

// WithTokenCounter sets the counting strategy.
func WithTokenCounter(counter tokencounter.TokenCounter) Option {
	return func(o *Options) {
		o.counter = counter
	}
}

// WithCombineWhitespace charges one extra token per join inside a chunk,
// accounting for whitespace inserted when segments are glued back together.
func WithCombineWhitespace() Option {
	return func(o *Options) {
		o.combineWhitespace = true
	}
}

// Chunker splits byte buffers into token-budgeted chunks.
type Chunker struct {
	Options
}

// New creates a text chunker. It uses sensible defaults if no options are
// provided:
// - chunk size: 200 tokens
// - overlap: 0
// - delimiters: chunk.DefaultDelimiters, attached to the preceding segment
// - token counter: tokencounter.Words
func New(opts ...Option) (*Chunker, error) {
	ret := new(Chunker)
	ret.chunkSize = 200
	ret.delimiters = chunk.DefaultDelimiters
	ret.include = chunk.IncludeDelimPrev
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.counter == nil {
		ret.counter = tokencounter.Words{}
	}
	if len(ret.delimiters) == 0 {
		return nil, chunk.ErrNoDelimiters
	}
	if ret.chunkSize <= 0 {
		return nil, chunk.ErrInvalidChunkSize
	}
	if ret.overlap < 0 || ret.overlap >= ret.chunkSize {
		return nil, ErrInvalidOverlap
	}
	return ret, nil
}

// Chunk splits buf into token-budgeted chunks. The returned chunks are
// contiguous unless overlap is configured, in which case each chunk after the
// first starts inside its predecessor.
func (c *Chunker) Chunk(buf []byte) ([]Chunk, error) {
	spans, err := chunk.SplitAtDelimiters(buf, c.delimiters, c.include, c.minChars)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return nil, nil
	}
	counts := tokencounter.CountSpans(c.counter, buf, spans)
	groups, err := chunk.MergeSplits(counts, c.chunkSize, c.combineWhitespace)
	if err != nil {
		return nil, err
	}
	chunks := make([]Chunk, 0, len(groups))
	segStart := 0
	for _, group := range groups {
		start := segStart
		if c.overlap > 0 && len(chunks) > 0 {
			start -= c.overlapSegments(counts, segStart)
		}
		chunks = append(chunks, Chunk{
			Span:         chunk.Span{Start: spans[start].Start, End: spans[group.End-1].End},
			TokenSize:    c.groupTokens(counts, start, group.End),
			StartSegment: start,
			EndSegment:   group.End,
		})
		segStart = group.End
	}
	return chunks, nil
}

// overlapSegments calculates how many segments before segment end should be
// repeated at the start of the next chunk to achieve the desired token
// overlap.
func (c *Chunker) overlapSegments(counts []int, end int) int {
	overlapTokens := 0
	overlapSegments := 0
	for i := end - 1; i >= 0 && overlapTokens < c.overlap; i-- {
		overlapTokens += counts[i]
		overlapSegments++
	}
	return overlapSegments
}

func (c *Chunker) groupTokens(counts []int, start, end int) int {
	total := 0
	for i := start; i < end; i++ {
		total += counts[i]
	}
	if c.combineWhitespace {
		total += end - start - 1
	}
	return total
}
