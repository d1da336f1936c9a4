package textdiff

import (
	"reflect"
	"testing"
)

func TestMatchAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    map[byte]int
	}{
		{
			name:    "unique",
			pattern: "abc",
			want:    map[byte]int{'a': 4, 'b': 2, 'c': 1},
		},
		{
			name:    "duplicates",
			pattern: "abcaba",
			want:    map[byte]int{'a': 37, 'b': 18, 'c': 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchAlphabet(tt.pattern); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matchAlphabet(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatch_Shortcuts(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		loc     int
		want    int
	}{
		{"equality", "abcdef", "abcdef", 1000, 0},
		{"empty text", "", "abcdef", 1, -1},
		{"empty pattern", "abcdef", "", 3, 3},
		{"exact at loc", "abcdef", "de", 3, 3},
		{"beyond end", "abcdef", "defy", 4, 3},
		{"oversized pattern", "abcdef", "abcdefy", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.text, tt.pattern, tt.loc); got != tt.want {
				t.Errorf("Match(%q, %q, %d) = %d, want %d",
					tt.text, tt.pattern, tt.loc, got, tt.want)
			}
		})
	}
}

func TestMatch_Fuzzy(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		loc     int
		opts    []Option
		want    int
	}{
		{"exact 1", "abcdefghijk", "fgh", 5, nil, 5},
		{"exact 2", "abcdefghijk", "fgh", 0, nil, 5},
		{"fuzzy 1", "abcdefghijk", "efxhi", 0, nil, 4},
		{"fuzzy 2", "abcdefghijk", "cdefxyhijk", 5, nil, 2},
		{"fuzzy miss", "abcdefghijk", "bxy", 1, nil, -1},
		{"overflow", "123456789xx0", "3456789x0", 2, nil, 2},
		{
			"threshold 0.4",
			"abcdefghijk", "efxyhi", 1,
			[]Option{WithMatchThreshold(0.4)},
			4,
		},
		{
			"threshold 0.3",
			"abcdefghijk", "efxyhi", 1,
			[]Option{WithMatchThreshold(0.3)},
			-1,
		},
		{
			"threshold 0.0",
			"abcdefghijk", "bcdef", 1,
			[]Option{WithMatchThreshold(0.0)},
			1,
		},
		{
			"distance close strict",
			"abcdefghijklmnopqrstuvwxyz", "abcdefg", 24,
			[]Option{WithMatchDistance(10)},
			-1,
		},
		{
			"distance close loose",
			"abcdefghijklmnopqrstuvwxyz", "abcdxxefg", 1,
			[]Option{WithMatchDistance(10)},
			0,
		},
		{
			"distance far",
			"abcdefghijklmnopqrstuvwxyz", "abcdefg", 24,
			[]Option{WithMatchDistance(1000)},
			0,
		},
		{
			"loose threshold sentence",
			"I am the very model of a modern major general.", " that berry ", 5,
			[]Option{WithMatchThreshold(0.7)},
			4,
		},
		{
			"drifted word",
			"I am the very model of a modern major general.", "general", 20,
			nil,
			38,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.text, tt.pattern, tt.loc, tt.opts...); got != tt.want {
				t.Errorf("Match(%q, %q, %d) = %d, want %d",
					tt.text, tt.pattern, tt.loc, got, tt.want)
			}
		})
	}
}

func TestMatch_PatternTooLong(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog twice in a row today."
	pattern := "fox jumps over the lazy dog twice more"
	if len(pattern) <= 32 {
		t.Fatal("pattern must exceed the default bit width")
	}
	if got := Match(text, pattern, 0); got != -1 {
		t.Errorf("Match with oversized pattern = %d, want -1", got)
	}
}

func TestBitapScore(t *testing.T) {
	o := defaultOptions()
	if got := bitapScore(0, 10, 10, "abcd", o); got != 0.0 {
		t.Errorf("perfect match score = %v, want 0", got)
	}
	if got := bitapScore(1, 10, 10, "abcd", o); got != 0.25 {
		t.Errorf("one-error score = %v, want 0.25", got)
	}
	// Drift costs proximity/distance.
	if got := bitapScore(0, 110, 10, "abcd", o); got != 0.1 {
		t.Errorf("drift score = %v, want 0.1", got)
	}

	o.matchDistance = 0
	if got := bitapScore(1, 10, 10, "abcd", o); got != 0.25 {
		t.Errorf("zero-distance in-place score = %v, want 0.25", got)
	}
	if got := bitapScore(0, 11, 10, "abcd", o); got != 1.0 {
		t.Errorf("zero-distance drifted score = %v, want 1.0", got)
	}
}
