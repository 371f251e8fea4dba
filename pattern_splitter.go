package chunk

import "bytes"

// PatternSplitter splits buffers at every occurrence of a set of multi-byte
// patterns, such as sentence enders (". ", "? ", "! ") or paragraph breaks
// ("\n\n"). Compile once and reuse across buffers; Split allocates nothing
// beyond the result.
//
// Matching is leftmost, preferring the longest pattern at a position, and
// never overlaps: the scan resumes after each match.
type PatternSplitter struct {
	// byFirst indexes patterns by their first byte, longest first.
	byFirst [256][][]byte
	maxLen  int
}

// NewPatternSplitter compiles a splitter for the given patterns. Every
// pattern must be non-empty and at least one is required.
func NewPatternSplitter(patterns [][]byte) (*PatternSplitter, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPattern
	}
	ps := new(PatternSplitter)
	for _, pattern := range patterns {
		if len(pattern) == 0 {
			return nil, ErrEmptyPattern
		}
		if len(pattern) > ps.maxLen {
			ps.maxLen = len(pattern)
		}
		bucket := ps.byFirst[pattern[0]]
		// Insert keeping longer patterns first so leftmost-longest wins.
		pos := len(bucket)
		for i, existing := range bucket {
			if len(pattern) > len(existing) {
				pos = i
				break
			}
		}
		bucket = append(bucket, nil)
		copy(bucket[pos+1:], bucket[pos:])
		bucket[pos] = pattern
		ps.byFirst[pattern[0]] = bucket
	}
	return ps, nil
}

// matchAt returns the length of the longest pattern starting at i, or 0.
func (ps *PatternSplitter) matchAt(buf []byte, i int) int {
	for _, pattern := range ps.byFirst[buf[i]] {
		if bytes.HasPrefix(buf[i:], pattern) {
			return len(pattern)
		}
	}
	return 0
}

// Split segments buf at every pattern occurrence under the given attachment
// policy, then merges segments shorter than minChars the same way
// SplitAtDelimiters does.
func (ps *PatternSplitter) Split(buf []byte, include IncludeDelim, minChars int) ([]Span, error) {
	if include < IncludeDelimPrev || include > IncludeDelimNone {
		return nil, ErrInvalidIncludeDelim
	}
	if minChars < 0 {
		return nil, ErrInvalidMinChars
	}
	var spans []Span
	start := 0
	for i := 0; i < len(buf); {
		length := ps.matchAt(buf, i)
		if length == 0 {
			i++
			continue
		}
		switch include {
		case IncludeDelimPrev:
			spans = append(spans, Span{Start: start, End: i + length})
			start = i + length
		case IncludeDelimNext:
			if i > start {
				spans = append(spans, Span{Start: start, End: i})
			}
			start = i
		case IncludeDelimNone:
			if i > start {
				spans = append(spans, Span{Start: start, End: i})
			}
			start = i + length
		}
		i += length
	}
	if start < len(buf) {
		spans = append(spans, Span{Start: start, End: len(buf)})
	}
	return mergeShort(spans, minChars), nil
}

// SplitAtPatterns is the one-shot form of PatternSplitter for callers that
// split a single buffer.
func SplitAtPatterns(buf []byte, patterns [][]byte, include IncludeDelim, minChars int) ([]Span, error) {
	ps, err := NewPatternSplitter(patterns)
	if err != nil {
		return nil, err
	}
	return ps.Split(buf, include, minChars)
}
