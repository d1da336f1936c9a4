package textdiff

import "testing"

func TestEditList_RenderHTML(t *testing.T) {
	edits := EditList{
		{Equal, "a\n"},
		{Delete, "<B>b</B>"},
		{Insert, "c&d"},
	}
	want := "<span>a&para;<br></span>" +
		"<del style=\"background:#ffe6e6;\">&lt;B&gt;b&lt;/B&gt;</del>" +
		"<ins style=\"background:#e6ffe6;\">c&amp;d</ins>"
	if got := edits.RenderHTML(); got != want {
		t.Errorf("RenderHTML() = %q, want %q", got, want)
	}
}

func TestEditList_RenderText(t *testing.T) {
	edits := EditList{
		{Equal, "The "},
		{Delete, "cat"},
		{Insert, "dog"},
		{Equal, " sat"},
	}
	if got, want := edits.RenderText(), "The -cat+dog sat"; got != want {
		t.Errorf("RenderText() = %q, want %q", got, want)
	}
}

func TestEditList_RenderCompact(t *testing.T) {
	edits := EditList{
		{Equal, "The "},
		{Delete, "cat"},
		{Insert, "dog"},
		{Equal, " sat"},
	}
	if got, want := edits.RenderCompact(), "The -[cat]+[dog] sat"; got != want {
		t.Errorf("RenderCompact() = %q, want %q", got, want)
	}
}
