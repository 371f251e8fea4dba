package chunk

// Span is a half-open [Start, End) byte range into the buffer a chunker or
// splitter was created for.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Bytes slices the span out of buf. The returned slice aliases buf.
func (s Span) Bytes(buf []byte) []byte {
	return buf[s.Start:s.End]
}
