package textdiff

import (
	"strings"
	"unicode/utf8"
)

// SourceText reconstructs the source text the diff was computed from.
func (edits EditList) SourceText() string {
	var sb strings.Builder
	for _, edit := range edits {
		if edit.Op != Insert {
			sb.WriteString(edit.Text)
		}
	}
	return sb.String()
}

// DestText reconstructs the destination text the diff was computed against.
func (edits EditList) DestText() string {
	var sb strings.Builder
	for _, edit := range edits {
		if edit.Op != Delete {
			sb.WriteString(edit.Text)
		}
	}
	return sb.String()
}

// Levenshtein returns the edit distance the diff represents, in runes.
// Paired insertions and deletions count once, at the size of the larger.
func (edits EditList) Levenshtein() int {
	distance := 0
	insertions, deletions := 0, 0
	for _, edit := range edits {
		switch edit.Op {
		case Insert:
			insertions += utf8.RuneCountInString(edit.Text)
		case Delete:
			deletions += utf8.RuneCountInString(edit.Text)
		case Equal:
			// A run of changes ends here.
			distance += max(insertions, deletions)
			insertions, deletions = 0, 0
		}
	}
	return distance + max(insertions, deletions)
}

// XIndex maps a byte offset in the source text to the corresponding offset
// in the destination text. Offsets inside a deletion map to the position
// where the deleted text used to be.
func (edits EditList) XIndex(loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	var lastEdit *Edit
	for i := range edits {
		edit := &edits[i]
		if edit.Op != Insert {
			chars1 += len(edit.Text)
		}
		if edit.Op != Delete {
			chars2 += len(edit.Text)
		}
		if chars1 > loc {
			lastEdit = edit
			break
		}
		lastChars1 = chars1
		lastChars2 = chars2
	}
	if lastEdit != nil && lastEdit.Op == Delete {
		return lastChars2
	}
	return lastChars2 + (loc - lastChars1)
}
