package textdiff

import "strings"

// lineMode diffs large texts line by line first, then re-diffs the changed
// blocks character by character. Much faster than a pure character diff and
// usually just as readable.
func (d *differ) lineMode(text1, text2 []rune) EditList {
	chars1, chars2, lineArray := linesToRunes(string(text1), string(text2))

	edits := d.diffMain(chars1, chars2, false)
	edits = runesToLines(edits, lineArray)
	edits = CleanupSemantic(edits)

	// Re-diff each replacement block character by character. The trailing
	// sentinel guarantees the final block gets flushed.
	edits = append(edits, Edit{Equal, ""})
	pointer := 0
	countDelete, countInsert := 0, 0
	var textDelete, textInsert strings.Builder
	for pointer < len(edits) {
		switch edits[pointer].Op {
		case Insert:
			countInsert++
			textInsert.WriteString(edits[pointer].Text)
		case Delete:
			countDelete++
			textDelete.WriteString(edits[pointer].Text)
		case Equal:
			if countDelete >= 1 && countInsert >= 1 {
				pointer -= countDelete + countInsert
				sub := d.diffMain([]rune(textDelete.String()), []rune(textInsert.String()), false)
				edits = splice(edits, pointer, countDelete+countInsert, sub...)
				pointer += len(sub)
			}
			countDelete, countInsert = 0, 0
			textDelete.Reset()
			textInsert.Reset()
		}
		pointer++
	}
	return edits[:len(edits)-1]
}

// linesToRunes encodes each unique line of both texts as a single rune, so
// a line diff can reuse the character diff machinery. The returned slice
// maps rune values back to lines; index 0 is a padding entry so no line
// encodes to the zero rune.
func linesToRunes(text1, text2 string) ([]rune, []rune, []string) {
	lineArray := []string{""}
	lineHash := map[string]rune{}
	chars1 := linesToRunesMunge(text1, &lineArray, lineHash)
	chars2 := linesToRunesMunge(text2, &lineArray, lineHash)
	return chars1, chars2, lineArray
}

// linesToRunesMunge encodes one text, assigning fresh runes to lines not
// seen before.
func linesToRunesMunge(text string, lineArray *[]string, lineHash map[string]rune) []rune {
	runes := make([]rune, 0, 64)
	lineStart := 0
	for lineStart < len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd == -1 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart + 1
		}
		line := text[lineStart:lineEnd]
		lineStart = lineEnd

		r, ok := lineHash[line]
		if !ok {
			r = rune(len(*lineArray))
			*lineArray = append(*lineArray, line)
			lineHash[line] = r
		}
		runes = append(runes, r)
	}
	return runes
}

// runesToLines rehydrates a diff over encoded runes back into a diff over
// the original lines.
func runesToLines(edits EditList, lineArray []string) EditList {
	hydrated := make(EditList, len(edits))
	for i, edit := range edits {
		var sb strings.Builder
		for _, r := range edit.Text {
			sb.WriteString(lineArray[r])
		}
		hydrated[i] = Edit{edit.Op, sb.String()}
	}
	return hydrated
}
