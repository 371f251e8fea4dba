package chunk

import (
	"errors"
	"testing"
)

func TestPatternSplitterSplit(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		patterns     []string
		include      IncludeDelim
		minChars     int
		wantSegments []string
	}{
		{
			name:         "sentence enders",
			input:        "Hello. World? Test!",
			patterns:     []string{". ", "? ", "! "},
			include:      IncludeDelimPrev,
			wantSegments: []string{"Hello. ", "World? ", "Test!"},
		},
		{
			name:         "paragraph breaks",
			input:        "Para 1\n\nPara 2\n\nPara 3",
			patterns:     []string{"\n\n"},
			include:      IncludeDelimPrev,
			wantSegments: []string{"Para 1\n\n", "Para 2\n\n", "Para 3"},
		},
		{
			name:         "next policy",
			input:        "Hello. World? Test!",
			patterns:     []string{". ", "? "},
			include:      IncludeDelimNext,
			wantSegments: []string{"Hello", ". World", "? Test!"},
		},
		{
			name:         "none policy drops pattern bytes",
			input:        "a--b--c",
			patterns:     []string{"--"},
			include:      IncludeDelimNone,
			wantSegments: []string{"a", "b", "c"},
		},
		{
			name:         "longest pattern wins at a position",
			input:        "zabcz",
			patterns:     []string{"ab", "abc"},
			include:      IncludeDelimNone,
			wantSegments: []string{"z", "z"},
		},
		{
			name:         "matches never overlap",
			input:        "x---y",
			patterns:     []string{"--"},
			include:      IncludeDelimNone,
			wantSegments: []string{"x", "-y"},
		},
		{
			name:         "min chars merges short segments",
			input:        "a. b. c. d",
			patterns:     []string{". "},
			include:      IncludeDelimPrev,
			minChars:     4,
			wantSegments: []string{"a. b. ", "c. d"},
		},
		{
			name:         "no match",
			input:        "nothing here",
			patterns:     []string{"--"},
			include:      IncludeDelimPrev,
			wantSegments: []string{"nothing here"},
		},
		{
			name:         "empty input",
			input:        "",
			patterns:     []string{"--"},
			include:      IncludeDelimPrev,
			wantSegments: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := make([][]byte, len(tt.patterns))
			for i, pattern := range tt.patterns {
				patterns[i] = []byte(pattern)
			}
			buf := []byte(tt.input)
			spans, err := SplitAtPatterns(buf, patterns, tt.include, tt.minChars)
			if err != nil {
				t.Fatal(err)
			}
			if len(spans) != len(tt.wantSegments) {
				t.Fatalf("invalid segments, want %d, got %d", len(tt.wantSegments), len(spans))
			}
			for i, want := range tt.wantSegments {
				if segment := string(spans[i].Bytes(buf)); segment != want {
					t.Errorf("invalid segment:%d, want %q, got %q", i, want, segment)
				}
			}
		})
	}
}

func TestPatternSplitterReuse(t *testing.T) {
	splitter, err := NewPatternSplitter([][]byte{[]byte(". "), []byte("? "), []byte("! ")})
	if err != nil {
		t.Fatal(err)
	}
	first := []byte("Hello. World?")
	spans, err := splitter.Split(first, IncludeDelimPrev, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertSpans(t, spans, []Span{{0, 7}, {7, 13}})

	second := []byte("Another! Text.")
	spans, err = splitter.Split(second, IncludeDelimPrev, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertSpans(t, spans, []Span{{0, 9}, {9, 14}})
}

func TestPatternSplitterConfigErrors(t *testing.T) {
	if _, err := NewPatternSplitter(nil); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("want ErrEmptyPattern, got %v", err)
	}
	if _, err := NewPatternSplitter([][]byte{[]byte(". "), nil}); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("want ErrEmptyPattern, got %v", err)
	}
	splitter, err := NewPatternSplitter([][]byte{[]byte(". ")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := splitter.Split([]byte("x"), IncludeDelim(-1), 0); !errors.Is(err, ErrInvalidIncludeDelim) {
		t.Errorf("want ErrInvalidIncludeDelim, got %v", err)
	}
	if _, err := splitter.Split([]byte("x"), IncludeDelimPrev, -1); !errors.Is(err, ErrInvalidMinChars) {
		t.Errorf("want ErrInvalidMinChars, got %v", err)
	}
}
