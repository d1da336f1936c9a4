package textdiff

import (
	"reflect"
	"strings"
	"testing"
)

func TestLinesToRunes(t *testing.T) {
	tests := []struct {
		name          string
		text1, text2  string
		wantChars1    []rune
		wantChars2    []rune
		wantLineArray []string
	}{
		{
			name:          "shared lines",
			text1:         "alpha\nbeta\nalpha\n",
			text2:         "beta\nalpha\nbeta\n",
			wantChars1:    []rune{1, 2, 1},
			wantChars2:    []rune{2, 1, 2},
			wantLineArray: []string{"", "alpha\n", "beta\n"},
		},
		{
			name:          "empty text1",
			text1:         "",
			text2:         "alpha\r\nbeta\r\n\r\nalpha\r\n",
			wantChars1:    []rune{},
			wantChars2:    []rune{1, 2, 3, 1},
			wantLineArray: []string{"", "alpha\r\n", "beta\r\n", "\r\n"},
		},
		{
			name:          "no trailing newline",
			text1:         "a",
			text2:         "b",
			wantChars1:    []rune{1},
			wantChars2:    []rune{2},
			wantLineArray: []string{"", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chars1, chars2, lineArray := linesToRunes(tt.text1, tt.text2)
			if !reflect.DeepEqual(chars1, tt.wantChars1) {
				t.Errorf("chars1 = %v, want %v", chars1, tt.wantChars1)
			}
			if !reflect.DeepEqual(chars2, tt.wantChars2) {
				t.Errorf("chars2 = %v, want %v", chars2, tt.wantChars2)
			}
			if !reflect.DeepEqual(lineArray, tt.wantLineArray) {
				t.Errorf("lineArray = %v, want %v", lineArray, tt.wantLineArray)
			}
		})
	}
}

func TestRunesToLines(t *testing.T) {
	lineArray := []string{"", "alpha\n", "beta\n"}
	edits := EditList{
		{Equal, string([]rune{1, 2, 1})},
		{Insert, string([]rune{2, 1, 2})},
	}

	got := runesToLines(edits, lineArray)
	want := EditList{
		{Equal, "alpha\nbeta\nalpha\n"},
		{Insert, "beta\nalpha\nbeta\n"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("runesToLines() = %v, want %v", got, want)
	}
}

func TestLinesToRunes_ManyLines(t *testing.T) {
	// Every line must round-trip even when the encoding runs deep into the
	// rune space.
	n := 300
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(strings.Repeat(string(rune('a'+i%26)), i/26+1))
		sb.WriteString("\n")
	}
	text := sb.String()

	chars, _, lineArray := linesToRunes(text, "")
	if len(chars) != n {
		t.Fatalf("encoded %d lines, want %d", len(chars), n)
	}
	var rebuilt strings.Builder
	for _, r := range chars {
		rebuilt.WriteString(lineArray[r])
	}
	if rebuilt.String() != text {
		t.Error("round-trip through line encoding did not reproduce the text")
	}
}

func TestDiff_LineMode(t *testing.T) {
	// Line mode and character mode must describe the same transformation.
	var sb1, sb2 strings.Builder
	for i := 0; i < 40; i++ {
		sb1.WriteString("the quick brown fox jumps over the lazy dog\n")
		if i%5 == 0 {
			sb2.WriteString("the quick red fox leaps over the lazy dog\n")
		} else {
			sb2.WriteString("the quick brown fox jumps over the lazy dog\n")
		}
	}
	text1, text2 := sb1.String(), sb2.String()

	lineEdits := Diff(text1, text2, WithCheckLines(true))
	charEdits := Diff(text1, text2, WithCheckLines(false))

	if got := lineEdits.SourceText(); got != text1 {
		t.Errorf("line mode SourceText() diverged")
	}
	if got := lineEdits.DestText(); got != text2 {
		t.Errorf("line mode DestText() diverged")
	}
	if got := charEdits.DestText(); got != text2 {
		t.Errorf("char mode DestText() diverged")
	}
}
