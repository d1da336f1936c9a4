package textdiff

import "testing"

var textEdits = EditList{
	{Equal, "jump"},
	{Delete, "s"},
	{Insert, "ed"},
	{Equal, " over "},
	{Delete, "the"},
	{Insert, "a"},
	{Equal, " lazy"},
}

func TestEditList_SourceText(t *testing.T) {
	if got, want := textEdits.SourceText(), "jumps over the lazy"; got != want {
		t.Errorf("SourceText() = %q, want %q", got, want)
	}
}

func TestEditList_DestText(t *testing.T) {
	if got, want := textEdits.DestText(), "jumped over a lazy"; got != want {
		t.Errorf("DestText() = %q, want %q", got, want)
	}
}

func TestEditList_Levenshtein(t *testing.T) {
	tests := []struct {
		name  string
		edits EditList
		want  int
	}{
		{
			name:  "trailing equality",
			edits: EditList{{Delete, "abc"}, {Insert, "1234"}, {Equal, "xyz"}},
			want:  4,
		},
		{
			name:  "leading equality",
			edits: EditList{{Equal, "xyz"}, {Delete, "abc"}, {Insert, "1234"}},
			want:  4,
		},
		{
			name:  "middle equality",
			edits: EditList{{Delete, "abc"}, {Equal, "xyz"}, {Insert, "1234"}},
			want:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edits.Levenshtein(); got != tt.want {
				t.Errorf("Levenshtein() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEditList_XIndex(t *testing.T) {
	tests := []struct {
		name  string
		edits EditList
		loc   int
		want  int
	}{
		{
			name:  "translation",
			edits: EditList{{Delete, "a"}, {Insert, "1234"}, {Equal, "xyz"}},
			loc:   2,
			want:  5,
		},
		{
			name:  "inside deletion",
			edits: EditList{{Equal, "a"}, {Delete, "1234"}, {Equal, "xyz"}},
			loc:   3,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edits.XIndex(tt.loc); got != tt.want {
				t.Errorf("XIndex(%d) = %d, want %d", tt.loc, got, tt.want)
			}
		})
	}
}
