package chunk

// SplitAtDelimiters splits buf at every occurrence of the delimiter bytes.
// The include policy decides which side of a split owns the delimiter byte;
// raw segments shorter than minChars are merged forward with their neighbors
// until the accumulated length reaches minChars (the final group may stay
// shorter).
//
// For IncludeDelimPrev and IncludeDelimNext the returned spans concatenate
// back to the full buffer. IncludeDelimNone drops delimiter bytes.
func SplitAtDelimiters(buf, delimiters []byte, include IncludeDelim, minChars int) ([]Span, error) {
	if err := validateSplit(delimiters, include, minChars); err != nil {
		return nil, err
	}
	matcher := newDelimMatcher(delimiters)
	return mergeShort(splitRaw(buf, matcher, include), minChars), nil
}

// splitRaw produces the raw segmentation, one segment per delimiter-bounded
// region. Zero-length segments are never emitted: a delimiter at the first or
// last byte yields no empty neighbor.
func splitRaw(buf []byte, m *delimMatcher, include IncludeDelim) []Span {
	var spans []Span
	start := 0
	for i, b := range buf {
		if !m.table[b] {
			continue
		}
		switch include {
		case IncludeDelimPrev:
			spans = append(spans, Span{Start: start, End: i + 1})
			start = i + 1
		case IncludeDelimNext:
			if i > start {
				spans = append(spans, Span{Start: start, End: i})
			}
			start = i
		case IncludeDelimNone:
			if i > start {
				spans = append(spans, Span{Start: start, End: i})
			}
			start = i + 1
		}
	}
	if start < len(buf) {
		spans = append(spans, Span{Start: start, End: len(buf)})
	}
	return spans
}

// mergeShort walks raw segments left to right, grouping until the
// accumulated segment length reaches minChars. Groups never reorder and every
// merged span is contiguous.
func mergeShort(spans []Span, minChars int) []Span {
	if minChars <= 0 || len(spans) == 0 {
		return spans
	}
	merged := make([]Span, 0, len(spans))
	current := spans[0]
	accumulated := current.Len()
	for _, span := range spans[1:] {
		if accumulated >= minChars {
			merged = append(merged, current)
			current = span
			accumulated = span.Len()
			continue
		}
		current.End = span.End
		accumulated += span.Len()
	}
	return append(merged, current)
}

// Splitter is the resettable iterator form of SplitAtDelimiters. The split
// plan is computed once at construction; Next walks it.
type Splitter struct {
	spans []Span
	pos   int
}

// SplitOptions holds the resolved configuration of a Splitter.
type SplitOptions struct {
	delimiters []byte
	include    IncludeDelim
	minChars   int
}

// SplitOption is a function type for configuring splitter options.
type SplitOption func(*SplitOptions)

// WithSplitDelimiters sets the delimiter byte set to split at.
func WithSplitDelimiters(delimiters []byte) SplitOption {
	return func(o *SplitOptions) {
		o.delimiters = delimiters
	}
}

// WithIncludeDelim sets the delimiter attachment policy.
func WithIncludeDelim(include IncludeDelim) SplitOption {
	return func(o *SplitOptions) {
		o.include = include
	}
}

// WithMinChars sets the minimum merged segment length in bytes.
func WithMinChars(minChars int) SplitOption {
	return func(o *SplitOptions) {
		o.minChars = minChars
	}
}

// NewSplitter creates an exhaustive splitter over buf. Defaults:
// DefaultDelimiters, IncludeDelimPrev, no minimum length.
func NewSplitter(buf []byte, opts ...SplitOption) (*Splitter, error) {
	options := SplitOptions{delimiters: DefaultDelimiters, include: IncludeDelimPrev}
	for _, opt := range opts {
		opt(&options)
	}
	spans, err := SplitAtDelimiters(buf, options.delimiters, options.include, options.minChars)
	if err != nil {
		return nil, err
	}
	return &Splitter{spans: spans}, nil
}

// Next returns the next segment, or ok=false once exhausted.
func (s *Splitter) Next() (Span, bool) {
	if s.pos >= len(s.spans) {
		return Span{}, false
	}
	span := s.spans[s.pos]
	s.pos++
	return span, true
}

// Reset rewinds the splitter to the first segment.
func (s *Splitter) Reset() {
	s.pos = 0
}

// CollectOffsets returns the remaining segments in one call.
func (s *Splitter) CollectOffsets() []Span {
	spans := s.spans[s.pos:]
	s.pos = len(s.spans)
	return spans
}
