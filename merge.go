package chunk

import "sort"

// MergeGroup is one merged run of input segments: End is the exclusive end
// index into the segment sequence and Tokens the group's total token count,
// join costs included.
type MergeGroup struct {
	End    int
	Tokens int
}

// FindMergeIndices bin-packs ordered per-segment token counts into groups of
// at most chunkSize tokens and returns the exclusive end index of each group.
// A segment larger than the budget forms a singleton group; segments are
// never split. End indices are strictly increasing and the last one equals
// len(counts).
func FindMergeIndices(counts []int, chunkSize int) ([]int, error) {
	groups, err := MergeSplits(counts, chunkSize, false)
	if err != nil {
		return nil, err
	}
	indices := make([]int, len(groups))
	for i, group := range groups {
		indices[i] = group.End
	}
	return indices, nil
}

// MergeSplits bin-packs ordered per-segment token counts under a chunkSize
// budget and reports each group's end index and token total. When
// combineWhitespace is set, every join inside a group costs one extra token
// on top of the joined segment's count.
//
// The packing is greedy left to right over cumulative counts, locating each
// group boundary with a binary search.
func MergeSplits(counts []int, chunkSize int, combineWhitespace bool) ([]MergeGroup, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if len(counts) == 0 {
		return nil, nil
	}
	// cumulative[i] is the cost of the first i segments, charging the join
	// cost on every segment; the first segment's charge is backed out when
	// a group is measured.
	join := 0
	if combineWhitespace {
		join = 1
	}
	cumulative := make([]int, len(counts)+1)
	for i, count := range counts {
		cumulative[i+1] = cumulative[i] + count + join
	}

	var groups []MergeGroup
	current := 0
	for current < len(counts) {
		budget := cumulative[current] + chunkSize + join
		// The boundary is the last index whose cumulative cost still fits.
		end := current + sort.Search(len(cumulative)-current, func(i int) bool {
			return cumulative[current+i] > budget
		}) - 1
		if end == current {
			// Oversized segment: keep it whole as its own group.
			end++
		}
		groups = append(groups, MergeGroup{
			End:    end,
			Tokens: cumulative[end] - cumulative[current] - join,
		})
		current = end
	}
	return groups, nil
}

// Merger is the resettable iterator form of MergeSplits. It packs lazily, one
// group per Next call, and holds no state besides its position.
type Merger struct {
	counts            []int
	chunkSize         int
	combineWhitespace bool
	pos               int
}

// NewMerger creates a merger over ordered per-segment token counts.
func NewMerger(counts []int, chunkSize int, combineWhitespace bool) (*Merger, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &Merger{counts: counts, chunkSize: chunkSize, combineWhitespace: combineWhitespace}, nil
}

// Next returns the next merge group, or ok=false once all segments are
// grouped.
func (m *Merger) Next() (MergeGroup, bool) {
	if m.pos >= len(m.counts) {
		return MergeGroup{}, false
	}
	total := m.counts[m.pos]
	end := m.pos + 1
	for end < len(m.counts) {
		cost := m.counts[end]
		if m.combineWhitespace {
			cost++
		}
		if total+cost > m.chunkSize {
			break
		}
		total += cost
		end++
	}
	m.pos = end
	return MergeGroup{End: end, Tokens: total}, true
}

// Reset rewinds the merger to the first segment.
func (m *Merger) Reset() {
	m.pos = 0
}
