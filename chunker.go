package chunk

// Chunker walks a byte buffer emitting size-bounded spans that end at
// delimiter or pattern boundaries where possible. The cursor is the only
// mutable state; the buffer itself is never copied or modified.
//
// A Chunker is not safe for concurrent use. Independent instances over the
// same buffer are.
type Chunker struct {
	Options
	buf     []byte
	matcher matcher
	cursor  int
}

// New creates a Chunker over buf. Without options it chunks at
// DefaultDelimiters with a DefaultTargetSize window. Configuring a pattern
// switches it to pattern mode. Configuration errors are returned here, never
// deferred or coerced.
func New(buf []byte, opts ...Option) (*Chunker, error) {
	ret := &Chunker{buf: buf}
	ret.size = DefaultTargetSize
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if !ret.patternMode && ret.delimiters == nil {
		ret.delimiters = DefaultDelimiters
	}
	if err := ret.Options.validate(); err != nil {
		return nil, err
	}
	if ret.patternMode {
		ret.matcher = &patternMatcher{pattern: ret.pattern}
	} else {
		ret.matcher = newDelimMatcher(ret.delimiters)
	}
	return ret, nil
}

// Next returns the next span, or ok=false once the buffer is exhausted.
func (c *Chunker) Next() (Span, bool) {
	p := c.cursor
	if p >= len(c.buf) {
		return Span{}, false
	}
	// The remainder fits the target; emit it whole.
	if len(c.buf)-p <= c.size {
		c.cursor = len(c.buf)
		return Span{Start: p, End: len(c.buf)}, true
	}
	w := p + c.size
	if start, length, ok := c.matcher.lastIn(c.buf, p, w); ok {
		if boundary, ok := c.boundary(p, start, length); ok {
			c.cursor = boundary
			return Span{Start: p, End: boundary}, true
		}
	} else if c.forwardFallback {
		if start, length, ok := c.matcher.nextFrom(c.buf, w); ok {
			if boundary, ok := c.boundary(p, start, length); ok {
				c.cursor = boundary
				return Span{Start: p, End: boundary}, true
			}
		}
	}
	// Hard split: no usable boundary in the window.
	c.cursor = w
	return Span{Start: p, End: w}, true
}

// boundary converts a match into a split offset, applying the consecutive and
// prefix policies. A boundary at or before the cursor would emit an empty
// span; it is rejected so the caller falls back to a hard split.
func (c *Chunker) boundary(p, start, length int) (int, bool) {
	if c.consecutive {
		start = c.matcher.runStart(c.buf, start)
	}
	boundary := start + length
	if c.prefix {
		boundary = start
	}
	if boundary <= p {
		return 0, false
	}
	return boundary, true
}

// Reset rewinds the cursor so iteration restarts from the beginning of the
// buffer. The subsequent span sequence is identical to the first one.
func (c *Chunker) Reset() {
	c.cursor = 0
}

// CollectOffsets drains the chunker from its current position and returns the
// remaining spans. It is observably identical to calling Next until
// exhaustion.
func (c *Chunker) CollectOffsets() []Span {
	var spans []Span
	for {
		span, ok := c.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}

// ChunkOffsets computes all spans for buf in a single call.
func ChunkOffsets(buf []byte, opts ...Option) ([]Span, error) {
	chunker, err := New(buf, opts...)
	if err != nil {
		return nil, err
	}
	return chunker.CollectOffsets(), nil
}
