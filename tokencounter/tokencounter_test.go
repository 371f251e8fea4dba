package tokencounter

import (
	"testing"

	"github.com/bububa/chunk"
)

func TestCounters(t *testing.T) {
	tests := []struct {
		name    string
		counter TokenCounter
		input   string
		want    int
	}{
		{name: "whitespace", counter: Whitespace{}, input: "hello world test", want: 3},
		{name: "whitespace collapses runs", counter: Whitespace{}, input: "  a   b  ", want: 2},
		{name: "whitespace empty", counter: Whitespace{}, input: "", want: 0},
		{name: "graphemes", counter: Graphemes{}, input: "abc", want: 3},
		{name: "words single", counter: Words{}, input: "hello", want: 1},
		// uax29 counts the separating space as its own segment.
		{name: "words with separator", counter: Words{}, input: "hello world", want: 3},
		{name: "sentences", counter: Sentences{}, input: "One sentence. And two.", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.counter.Count([]byte(tt.input)); got != tt.want {
				t.Errorf("invalid count, want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCountSpans(t *testing.T) {
	buf := []byte("one two. three four five. six.")
	spans, err := chunk.SplitAtDelimiters(buf, []byte("."), chunk.IncludeDelimPrev, 0)
	if err != nil {
		t.Fatal(err)
	}
	counts := CountSpans(Whitespace{}, buf, spans)
	want := []int{2, 3, 1}
	if len(counts) != len(want) {
		t.Fatalf("invalid counts, want %v, got %v", want, counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("invalid count:%d, want %d, got %d", i, want[i], counts[i])
		}
	}
}
