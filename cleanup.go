package textdiff

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// splice replaces edits[index:index+amount] with the given inserts.
func splice(edits EditList, index, amount int, inserts ...Edit) EditList {
	suffix := append(EditList{}, edits[index+amount:]...)
	edits = append(edits[:index], inserts...)
	return append(edits, suffix...)
}

// CleanupMerge reorders and merges like edit sections, merging equalities
// and factoring out commonalities until the list is in canonical form.
func CleanupMerge(edits EditList) EditList {
	return cleanupMerge(edits)
}

func cleanupMerge(edits EditList) EditList {
	// The trailing sentinel guarantees the final run gets flushed.
	edits = append(edits, Edit{Equal, ""})
	pointer := 0
	countDelete, countInsert := 0, 0
	var textDelete, textInsert []rune
	for pointer < len(edits) {
		switch edits[pointer].Op {
		case Insert:
			countInsert++
			textInsert = append(textInsert, []rune(edits[pointer].Text)...)
			pointer++
		case Delete:
			countDelete++
			textDelete = append(textDelete, []rune(edits[pointer].Text)...)
			pointer++
		case Equal:
			if countDelete+countInsert > 1 {
				if countDelete != 0 && countInsert != 0 {
					// Factor out any common prefix.
					if n := commonPrefixLen(textInsert, textDelete); n != 0 {
						x := pointer - countDelete - countInsert
						if x > 0 && edits[x-1].Op == Equal {
							edits[x-1].Text += string(textInsert[:n])
						} else {
							edits = append(EditList{{Equal, string(textInsert[:n])}}, edits...)
							pointer++
						}
						textInsert = textInsert[n:]
						textDelete = textDelete[n:]
					}
					// Factor out any common suffix.
					if n := commonSuffixLen(textInsert, textDelete); n != 0 {
						edits[pointer].Text = string(textInsert[len(textInsert)-n:]) + edits[pointer].Text
						textInsert = textInsert[:len(textInsert)-n]
						textDelete = textDelete[:len(textDelete)-n]
					}
				}
				// Replace the run with the merged records.
				pointer -= countDelete + countInsert
				var merged EditList
				if len(textDelete) > 0 {
					merged = append(merged, Edit{Delete, string(textDelete)})
				}
				if len(textInsert) > 0 {
					merged = append(merged, Edit{Insert, string(textInsert)})
				}
				edits = splice(edits, pointer, countDelete+countInsert, merged...)
				pointer += len(merged) + 1
			} else if pointer != 0 && edits[pointer-1].Op == Equal {
				// Merge this equality into the previous one.
				edits[pointer-1].Text += edits[pointer].Text
				edits = splice(edits, pointer, 1)
			} else {
				pointer++
			}
			countDelete, countInsert = 0, 0
			textDelete, textInsert = nil, nil
		}
	}
	if edits[len(edits)-1].Text == "" {
		edits = edits[:len(edits)-1]
	}

	// Second pass: shift single edits surrounded by equalities sideways to
	// eliminate an equality, e.g. A<ins>BA</ins>C becomes <ins>AB</ins>AC.
	changes := false
	pointer = 1
	for pointer < len(edits)-1 {
		if edits[pointer-1].Op == Equal && edits[pointer+1].Op == Equal {
			prev, edit, next := edits[pointer-1].Text, edits[pointer].Text, edits[pointer+1].Text
			if strings.HasSuffix(edit, prev) {
				edits[pointer].Text = prev + edit[:len(edit)-len(prev)]
				edits[pointer+1].Text = prev + next
				edits = splice(edits, pointer-1, 1)
				changes = true
			} else if strings.HasPrefix(edit, next) {
				edits[pointer-1].Text += next
				edits[pointer].Text = edit[len(next):] + next
				edits = splice(edits, pointer+1, 1)
				changes = true
			}
		}
		pointer++
	}
	if changes {
		edits = cleanupMerge(edits)
	}
	return edits
}

// CleanupSemantic reduces the number of edits by eliminating semantically
// trivial equalities, so the diff follows word and phrase boundaries a
// human would pick.
func CleanupSemantic(edits EditList) EditList {
	changes := false
	// Indices of equalities that might yet be eliminated.
	equalities := make([]int, 0, len(edits))
	var lastEquality string
	pointer := 0
	// Runes changed before and after the candidate equality.
	var lengthInsertions1, lengthDeletions1 int
	var lengthInsertions2, lengthDeletions2 int

	for pointer < len(edits) {
		if edits[pointer].Op == Equal {
			equalities = append(equalities, pointer)
			lengthInsertions1 = lengthInsertions2
			lengthDeletions1 = lengthDeletions2
			lengthInsertions2 = 0
			lengthDeletions2 = 0
			lastEquality = edits[pointer].Text
		} else {
			if edits[pointer].Op == Insert {
				lengthInsertions2 += utf8.RuneCountInString(edits[pointer].Text)
			} else {
				lengthDeletions2 += utf8.RuneCountInString(edits[pointer].Text)
			}
			// Eliminate an equality no bigger than the edits on either side.
			difference1 := max(lengthInsertions1, lengthDeletions1)
			difference2 := max(lengthInsertions2, lengthDeletions2)
			if n := utf8.RuneCountInString(lastEquality); n > 0 && n <= difference1 && n <= difference2 {
				insPoint := equalities[len(equalities)-1]
				edits = splice(edits, insPoint, 0, Edit{Delete, lastEquality})
				edits[insPoint+1].Op = Insert
				// The equality is gone; back up past the previous one too,
				// since the change may have destabilized it.
				equalities = equalities[:len(equalities)-1]
				if len(equalities) > 0 {
					equalities = equalities[:len(equalities)-1]
				}
				pointer = -1
				if len(equalities) > 0 {
					pointer = equalities[len(equalities)-1]
				}
				lengthInsertions1, lengthDeletions1 = 0, 0
				lengthInsertions2, lengthDeletions2 = 0, 0
				lastEquality = ""
				changes = true
			}
		}
		pointer++
	}

	if changes {
		edits = cleanupMerge(edits)
	}
	edits = CleanupSemanticLossless(edits)

	// Extract overlaps between adjacent deletions and insertions,
	// e.g. <del>abcxxx</del><ins>xxxdef</ins> becomes
	// <del>abc</del>xxx<ins>def</ins>. Only worth it when the overlap is as
	// big as half the edit ahead or behind it.
	pointer = 1
	for pointer < len(edits) {
		if edits[pointer-1].Op == Delete && edits[pointer].Op == Insert {
			deletion := []rune(edits[pointer-1].Text)
			insertion := []rune(edits[pointer].Text)
			overlap1 := commonOverlapLen(deletion, insertion)
			overlap2 := commonOverlapLen(insertion, deletion)
			if overlap1 >= overlap2 {
				if overlap1*2 >= len(deletion) || overlap1*2 >= len(insertion) {
					edits = splice(edits, pointer, 0, Edit{Equal, string(insertion[:overlap1])})
					edits[pointer-1].Text = string(deletion[:len(deletion)-overlap1])
					edits[pointer+1].Text = string(insertion[overlap1:])
					pointer++
				}
			} else {
				if overlap2*2 >= len(deletion) || overlap2*2 >= len(insertion) {
					// Reverse overlap: the insertion ends where the deletion
					// starts, so swap their order around the equality.
					edits = splice(edits, pointer, 0, Edit{Equal, string(deletion[:overlap2])})
					edits[pointer-1] = Edit{Insert, string(insertion[:len(insertion)-overlap2])}
					edits[pointer+1] = Edit{Delete, string(deletion[overlap2:])}
					pointer++
				}
			}
			pointer++
		}
		pointer++
	}
	return edits
}

var (
	nonAlphaNumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	linebreakRegex       = regexp.MustCompile(`[\r\n]`)
	blanklineEndRegex    = regexp.MustCompile(`\n\r?\n$`)
	blanklineStartRegex  = regexp.MustCompile(`^\r?\n\r?\n`)
)

// boundaryScore rates the quality of splitting two texts at their join,
// from 6 (edges) down to 0 (interior of a word).
func boundaryScore(one, two string) int {
	if len(one) == 0 || len(two) == 0 {
		return 6
	}

	rune1, _ := utf8.DecodeLastRuneInString(one)
	rune2, _ := utf8.DecodeRuneInString(two)
	char1 := string(rune1)
	char2 := string(rune2)

	nonAlphaNumeric1 := nonAlphaNumericRegex.MatchString(char1)
	nonAlphaNumeric2 := nonAlphaNumericRegex.MatchString(char2)
	whitespace1 := nonAlphaNumeric1 && whitespaceRegex.MatchString(char1)
	whitespace2 := nonAlphaNumeric2 && whitespaceRegex.MatchString(char2)
	lineBreak1 := whitespace1 && linebreakRegex.MatchString(char1)
	lineBreak2 := whitespace2 && linebreakRegex.MatchString(char2)
	blankLine1 := lineBreak1 && blanklineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blanklineStartRegex.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		return 5
	case lineBreak1 || lineBreak2:
		return 4
	case nonAlphaNumeric1 && !whitespace1 && whitespace2:
		// End of sentences.
		return 3
	case whitespace1 || whitespace2:
		return 2
	case nonAlphaNumeric1 || nonAlphaNumeric2:
		return 1
	}
	return 0
}

// CleanupSemanticLossless shifts edit boundaries sideways, without changing
// the texts the diff describes, to align them with word, line, and
// paragraph boundaries.
func CleanupSemanticLossless(edits EditList) EditList {
	pointer := 1
	// The first and last edit have nothing to shift against.
	for pointer < len(edits)-1 {
		if edits[pointer-1].Op == Equal && edits[pointer+1].Op == Equal {
			equality1 := edits[pointer-1].Text
			edit := edits[pointer].Text
			equality2 := edits[pointer+1].Text

			// Shift the edit as far left as possible.
			if n := commonSuffixLen([]rune(equality1), []rune(edit)); n > 0 {
				e1 := []rune(equality1)
				ed := []rune(edit)
				common := string(ed[len(ed)-n:])
				equality1 = string(e1[:len(e1)-n])
				edit = common + string(ed[:len(ed)-n])
				equality2 = common + equality2
			}

			// Step rightwards one rune at a time, keeping the best scoring
			// split. The >= favors trailing over leading whitespace.
			bestEquality1, bestEdit, bestEquality2 := equality1, edit, equality2
			bestScore := boundaryScore(equality1, edit) + boundaryScore(edit, equality2)
			for len(edit) != 0 && len(equality2) != 0 {
				_, sz := utf8.DecodeRuneInString(edit)
				if len(equality2) < sz || edit[:sz] != equality2[:sz] {
					break
				}
				equality1 += edit[:sz]
				edit = edit[sz:] + equality2[:sz]
				equality2 = equality2[sz:]
				score := boundaryScore(equality1, edit) + boundaryScore(edit, equality2)
				if score >= bestScore {
					bestScore = score
					bestEquality1, bestEdit, bestEquality2 = equality1, edit, equality2
				}
			}

			if edits[pointer-1].Text != bestEquality1 {
				if len(bestEquality1) != 0 {
					edits[pointer-1].Text = bestEquality1
				} else {
					edits = splice(edits, pointer-1, 1)
					pointer--
				}
				edits[pointer].Text = bestEdit
				if len(bestEquality2) != 0 {
					edits[pointer+1].Text = bestEquality2
				} else {
					edits = splice(edits, pointer+1, 1)
					pointer--
				}
			}
		}
		pointer++
	}
	return edits
}

// CleanupEfficiency reduces the number of edits by eliminating
// operationally trivial equalities whose text is shorter than the edit
// cost, producing diffs that serialize more compactly.
func CleanupEfficiency(edits EditList, opts ...Option) EditList {
	o := applyOptions(opts)
	return cleanupEfficiency(edits, o.editCost)
}

func cleanupEfficiency(edits EditList, editCost int) EditList {
	changes := false
	// Indices of candidate equalities, most recent first.
	type stackNode struct {
		index int
		next  *stackNode
	}
	var equalities *stackNode
	lastEquality := ""
	pointer := 0
	// Whether an insertion or deletion borders the candidate on each side.
	preIns, preDel := false, false
	postIns, postDel := false, false

	for pointer < len(edits) {
		if edits[pointer].Op == Equal {
			if utf8.RuneCountInString(edits[pointer].Text) < editCost && (postIns || postDel) {
				equalities = &stackNode{index: pointer, next: equalities}
				preIns, preDel = postIns, postDel
				lastEquality = edits[pointer].Text
			} else {
				// Not a candidate, and can never become one.
				equalities = nil
				lastEquality = ""
			}
			postIns, postDel = false, false
		} else {
			if edits[pointer].Op == Delete {
				postDel = true
			} else {
				postIns = true
			}

			// Splitting is worth it when the equality borders edits on all
			// four sides, or on three sides and is under half the edit cost.
			sumSides := 0
			for _, b := range []bool{preIns, preDel, postIns, postDel} {
				if b {
					sumSides++
				}
			}
			if len(lastEquality) > 0 &&
				((preIns && preDel && postIns && postDel) ||
					(utf8.RuneCountInString(lastEquality) < editCost/2 && sumSides == 3)) {
				insPoint := equalities.index
				edits = splice(edits, insPoint, 0, Edit{Delete, lastEquality})
				edits[insPoint+1].Op = Insert
				equalities = equalities.next
				lastEquality = ""
				if preIns && preDel {
					// Nothing before the removed equality can change.
					postIns, postDel = true, true
					equalities = nil
				} else {
					if equalities != nil {
						equalities = equalities.next
					}
					pointer = -1
					if equalities != nil {
						pointer = equalities.index
					}
					postIns, postDel = false, false
				}
				changes = true
			}
		}
		pointer++
	}

	if changes {
		edits = cleanupMerge(edits)
	}
	return edits
}
