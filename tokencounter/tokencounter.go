// Package tokencounter provides token counting strategies for byte buffers.
// Counters produce the per-segment counts that the merge operations in the
// parent package bin-pack under a token budget.
package tokencounter

import (
	"bytes"
	"fmt"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/phrases"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
	"github.com/pkoukk/tiktoken-go"

	"github.com/bububa/chunk"
)

// TokenCounter defines the interface for counting tokens in a byte buffer.
// This abstraction allows for different tokenization strategies (e.g., words, subwords).
type TokenCounter interface {
	// Count returns the number of tokens in the given bytes according to
	// the implementation's tokenization strategy.
	Count(p []byte) int
}

// Graphemes counts Unicode grapheme clusters.
type Graphemes struct{}

func (c Graphemes) Count(p []byte) int {
	return len(graphemes.SegmentAll(p))
}

// Words counts Unicode word boundaries.
type Words struct{}

func (c Words) Count(p []byte) int {
	return len(words.SegmentAll(p))
}

// Phrases counts runs of words connected by whitespace.
type Phrases struct{}

func (c Phrases) Count(p []byte) int {
	return len(phrases.SegmentAll(p))
}

// Sentences counts Unicode sentence boundaries.
type Sentences struct{}

func (c Sentences) Count(p []byte) int {
	return len(sentences.SegmentAll(p))
}

// Whitespace approximates token counts by splitting on whitespace. Fast and
// allocation-light, suitable when the exact model tokenizer is unavailable.
type Whitespace struct{}

func (c Whitespace) Count(p []byte) int {
	return len(bytes.Fields(p))
}

// TikToken provides accurate token counting using the tiktoken library,
// which implements the tokenization schemes used by OpenAI models.
type TikToken struct {
	tke *tiktoken.Tiktoken
}

// NewTikToken creates a TikToken counter using the specified encoding.
// Common encodings include:
// - "cl100k_base" (GPT-4, ChatGPT)
// - "p50k_base" (GPT-3)
// - "r50k_base" (Codex)
func NewTikToken(encoding string) (*TikToken, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikToken{tke: tke}, nil
}

// Count returns the exact number of tokens according to the configured
// tiktoken encoding.
func (c *TikToken) Count(p []byte) int {
	return len(c.tke.Encode(string(p), nil, nil))
}

// CountSpans counts every span of buf with the given counter, producing the
// ordered count sequence the merge operations consume.
func CountSpans(counter TokenCounter, buf []byte, spans []chunk.Span) []int {
	counts := make([]int, len(spans))
	for i, span := range spans {
		counts[i] = counter.Count(span.Bytes(buf))
	}
	return counts
}
