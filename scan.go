package chunk

import "bytes"

// matcher locates boundary occurrences inside a byte buffer. Implementations
// exist for single-byte delimiter sets and for multi-byte patterns.
type matcher interface {
	// lastIn returns the start and length of the rightmost occurrence fully
	// contained in [lo, hi).
	lastIn(buf []byte, lo, hi int) (start, length int, ok bool)
	// nextFrom returns the start and length of the first occurrence
	// beginning at or after from.
	nextFrom(buf []byte, from int) (start, length int, ok bool)
	// runStart walks backward from an occurrence at start through an
	// unbroken run of adjacent or overlapping occurrences and returns the
	// start of the run.
	runStart(buf []byte, start int) int
}

// delimMatcher matches any single byte from a delimiter set using a lookup
// table, keeping the backward window scan branch-light.
type delimMatcher struct {
	table [256]bool
}

func newDelimMatcher(delimiters []byte) *delimMatcher {
	m := new(delimMatcher)
	for _, b := range delimiters {
		m.table[b] = true
	}
	return m
}

func (m *delimMatcher) lastIn(buf []byte, lo, hi int) (int, int, bool) {
	for i := hi - 1; i >= lo; i-- {
		if m.table[buf[i]] {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func (m *delimMatcher) nextFrom(buf []byte, from int) (int, int, bool) {
	for i := from; i < len(buf); i++ {
		if m.table[buf[i]] {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func (m *delimMatcher) runStart(buf []byte, start int) int {
	for start > 0 && m.table[buf[start-1]] {
		start--
	}
	return start
}

// patternMatcher matches a fixed multi-byte pattern.
type patternMatcher struct {
	pattern []byte
}

func (m *patternMatcher) lastIn(buf []byte, lo, hi int) (int, int, bool) {
	if i := bytes.LastIndex(buf[lo:hi], m.pattern); i >= 0 {
		return lo + i, len(m.pattern), true
	}
	return 0, 0, false
}

func (m *patternMatcher) nextFrom(buf []byte, from int) (int, int, bool) {
	if i := bytes.Index(buf[from:], m.pattern); i >= 0 {
		return from + i, len(m.pattern), true
	}
	return 0, 0, false
}

// runStart steps to the leftmost occurrence touching the current one until no
// adjacent or overlapping occurrence remains.
func (m *patternMatcher) runStart(buf []byte, start int) int {
	n := len(m.pattern)
	for start > 0 {
		lo := start - n
		if lo < 0 {
			lo = 0
		}
		prev := -1
		for i := lo; i < start; i++ {
			if bytes.HasPrefix(buf[i:], m.pattern) {
				prev = i
				break
			}
		}
		if prev < 0 {
			break
		}
		start = prev
	}
	return start
}
