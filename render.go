package textdiff

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\n", "&para;<br>",
)

// RenderHTML renders the diff as an HTML fragment, wrapping insertions in
// <ins>, deletions in <del>, and unchanged text in <span>. Newlines show as
// a pilcrow followed by a break.
func (edits EditList) RenderHTML() string {
	var sb strings.Builder
	for _, edit := range edits {
		text := htmlEscaper.Replace(edit.Text)
		switch edit.Op {
		case Insert:
			sb.WriteString("<ins style=\"background:#e6ffe6;\">")
			sb.WriteString(text)
			sb.WriteString("</ins>")
		case Delete:
			sb.WriteString("<del style=\"background:#ffe6e6;\">")
			sb.WriteString(text)
			sb.WriteString("</del>")
		case Equal:
			sb.WriteString("<span>")
			sb.WriteString(text)
			sb.WriteString("</span>")
		}
	}
	return sb.String()
}

// RenderText renders the diff inline, with a + or - before each changed
// section and unchanged text verbatim.
func (edits EditList) RenderText() string {
	var sb strings.Builder
	for _, edit := range edits {
		switch edit.Op {
		case Insert:
			sb.WriteString("+")
			sb.WriteString(edit.Text)
		case Delete:
			sb.WriteString("-")
			sb.WriteString(edit.Text)
		case Equal:
			sb.WriteString(edit.Text)
		}
	}
	return sb.String()
}

// RenderCompact renders the diff with changed sections in signed brackets,
// e.g. "The -[cat]+[dog] sat".
func (edits EditList) RenderCompact() string {
	var sb strings.Builder
	for _, edit := range edits {
		switch edit.Op {
		case Insert:
			sb.WriteString("+[")
			sb.WriteString(edit.Text)
			sb.WriteString("]")
		case Delete:
			sb.WriteString("-[")
			sb.WriteString(edit.Text)
			sb.WriteString("]")
		case Equal:
			sb.WriteString(edit.Text)
		}
	}
	return sb.String()
}
