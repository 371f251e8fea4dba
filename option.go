package chunk

// Options holds the resolved configuration of a Chunker.
type Options struct {
	size            int
	delimiters      []byte
	pattern         []byte
	patternMode     bool
	prefix          bool
	consecutive     bool
	forwardFallback bool
}

// Option is a function type for configuring chunker Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

// WithSize sets the target chunk size in bytes.
func WithSize(size int) Option {
	return func(o *Options) {
		o.size = size
	}
}

// WithDelimiters sets the single-byte delimiter set to split at.
func WithDelimiters(delimiters []byte) Option {
	return func(o *Options) {
		o.delimiters = delimiters
	}
}

// WithPattern switches the chunker to pattern mode, splitting at occurrences
// of the given multi-byte pattern. Pattern mode takes precedence when both a
// pattern and delimiters are configured.
func WithPattern(pattern []byte) Option {
	return func(o *Options) {
		o.pattern = pattern
		o.patternMode = true
	}
}

// WithPrefix attaches the matched delimiter or pattern to the start of the
// next span instead of the end of the closing one.
func WithPrefix() Option {
	return func(o *Options) {
		o.prefix = true
	}
}

// WithConsecutive relocates a match that is part of an unbroken run of
// adjacent or overlapping occurrences to the start of that run, so the split
// lands before the run rather than inside or after it.
func WithConsecutive() Option {
	return func(o *Options) {
		o.consecutive = true
	}
}

// WithForwardFallback searches beyond the window for the next occurrence when
// the backward window contains none, instead of hard-splitting. This trades
// size-target adherence for guaranteed boundary alignment.
func WithForwardFallback() Option {
	return func(o *Options) {
		o.forwardFallback = true
	}
}
