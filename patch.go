package textdiff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Patch is one hunk of change: a diff plus the coordinates it applies at.
// Start and Length fields are byte offsets; Start1/Length1 address the
// source text, Start2/Length2 the destination text.
type Patch struct {
	Diffs   EditList
	Start1  int
	Start2  int
	Length1 int
	Length2 int
}

// String formats the patch in the GNU diff style, e.g. "@@ -382,8 +481,9 @@".
// Headers are 1-based; a zero-length range keeps its 0-based start.
func (p *Patch) String() string {
	var coords1, coords2 string
	switch {
	case p.Length1 == 0:
		coords1 = strconv.Itoa(p.Start1) + ",0"
	case p.Length1 == 1:
		coords1 = strconv.Itoa(p.Start1 + 1)
	default:
		coords1 = strconv.Itoa(p.Start1+1) + "," + strconv.Itoa(p.Length1)
	}
	switch {
	case p.Length2 == 0:
		coords2 = strconv.Itoa(p.Start2) + ",0"
	case p.Length2 == 1:
		coords2 = strconv.Itoa(p.Start2 + 1)
	default:
		coords2 = strconv.Itoa(p.Start2+1) + "," + strconv.Itoa(p.Length2)
	}

	var sb strings.Builder
	sb.WriteString("@@ -" + coords1 + " +" + coords2 + " @@\n")
	for _, edit := range p.Diffs {
		switch edit.Op {
		case Insert:
			sb.WriteString("+")
		case Delete:
			sb.WriteString("-")
		case Equal:
			sb.WriteString(" ")
		}
		sb.WriteString(encodeURI(edit.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}

// PatchMake diffs two texts and packages the result as a list of patches.
func PatchMake(text1, text2 string, opts ...Option) []Patch {
	o := applyOptions(opts)
	edits := diffWith(o, text1, text2, o.checkLines)
	if len(edits) > 2 {
		edits = CleanupSemantic(edits)
		edits = cleanupEfficiency(edits, o.editCost)
	}
	return patchMake(text1, edits, o)
}

// PatchMakeFromDiffs packages an existing diff of text1 as a list of
// patches.
func PatchMakeFromDiffs(text1 string, edits EditList, opts ...Option) []Patch {
	return patchMake(text1, edits, applyOptions(opts))
}

func patchMake(text1 string, edits EditList, o *options) []Patch {
	var patches []Patch
	if len(edits) == 0 {
		return patches
	}

	var patch Patch
	charCount1 := 0 // bytes into text1
	charCount2 := 0 // bytes into text2
	// Recreate the texts patch by patch, so each patch gets context from
	// the text as it stands when that patch applies (a rolling context,
	// unlike unidiff).
	prepatchText := text1
	postpatchText := text1

	for i, edit := range edits {
		if len(patch.Diffs) == 0 && edit.Op != Equal {
			patch.Start1 = charCount1
			patch.Start2 = charCount2
		}

		switch edit.Op {
		case Insert:
			patch.Diffs = append(patch.Diffs, edit)
			patch.Length2 += len(edit.Text)
			postpatchText = postpatchText[:charCount2] + edit.Text + postpatchText[charCount2:]
		case Delete:
			patch.Diffs = append(patch.Diffs, edit)
			patch.Length1 += len(edit.Text)
			postpatchText = postpatchText[:charCount2] + postpatchText[charCount2+len(edit.Text):]
		case Equal:
			if len(edit.Text) <= 2*o.patchMargin && len(patch.Diffs) != 0 && i != len(edits)-1 {
				// Small equality inside a patch.
				patch.Diffs = append(patch.Diffs, edit)
				patch.Length1 += len(edit.Text)
				patch.Length2 += len(edit.Text)
			}
			if len(edit.Text) >= 2*o.patchMargin && len(patch.Diffs) != 0 {
				// A big enough equality closes the current patch.
				patch = patchAddContext(patch, prepatchText, o)
				patches = append(patches, patch)
				patch = Patch{}
				prepatchText = postpatchText
				charCount1 = charCount2
			}
		}

		if edit.Op != Insert {
			charCount1 += len(edit.Text)
		}
		if edit.Op != Delete {
			charCount2 += len(edit.Text)
		}
	}
	if len(patch.Diffs) != 0 {
		patch = patchAddContext(patch, prepatchText, o)
		patches = append(patches, patch)
	}
	return patches
}

// patchAddContext grows the context around a patch until the patch text is
// unique in the source, without letting the pattern exceed what the match
// engine can search for.
func patchAddContext(patch Patch, text string, o *options) Patch {
	if len(text) == 0 {
		return patch
	}

	pattern := text[patch.Start2 : patch.Start2+patch.Length1]
	padding := 0
	for strings.Index(text, pattern) != strings.LastIndex(text, pattern) &&
		len(pattern) < o.matchMaxBits-2*o.patchMargin {
		padding += o.patchMargin
		maxStart := max(0, patch.Start2-padding)
		minEnd := min(len(text), patch.Start2+patch.Length1+padding)
		pattern = text[maxStart:minEnd]
	}
	// One extra chunk absorbs drift at the edges.
	padding += o.patchMargin

	prefix := text[max(0, patch.Start2-padding):patch.Start2]
	if len(prefix) != 0 {
		patch.Diffs = append(EditList{{Equal, prefix}}, patch.Diffs...)
	}
	suffix := text[patch.Start2+patch.Length1 : min(len(text), patch.Start2+patch.Length1+padding)]
	if len(suffix) != 0 {
		patch.Diffs = append(patch.Diffs, Edit{Equal, suffix})
	}

	patch.Start1 -= len(prefix)
	patch.Start2 -= len(prefix)
	patch.Length1 += len(prefix) + len(suffix)
	patch.Length2 += len(prefix) + len(suffix)
	return patch
}

// patchDeepCopy clones patches so applying them cannot mutate the caller's
// copies.
func patchDeepCopy(patches []Patch) []Patch {
	patchesCopy := make([]Patch, len(patches))
	for i, patch := range patches {
		patchesCopy[i] = Patch{
			Diffs:   append(EditList{}, patch.Diffs...),
			Start1:  patch.Start1,
			Start2:  patch.Start2,
			Length1: patch.Length1,
			Length2: patch.Length2,
		}
	}
	return patchesCopy
}

// patchAddPadding pads the first and last patch with non-text characters
// so that edits at the very edges of the text have context to match
// against. Returns the padding string, which the caller must also add to
// the text and later strip.
func patchAddPadding(patches []Patch, o *options) string {
	paddingLength := o.patchMargin
	var sb strings.Builder
	for x := 1; x <= paddingLength; x++ {
		sb.WriteRune(rune(x))
	}
	nullPadding := sb.String()

	for i := range patches {
		patches[i].Start1 += paddingLength
		patches[i].Start2 += paddingLength
	}

	first := &patches[0]
	if len(first.Diffs) == 0 || first.Diffs[0].Op != Equal {
		first.Diffs = append(EditList{{Equal, nullPadding}}, first.Diffs...)
		first.Start1 -= paddingLength
		first.Start2 -= paddingLength
		first.Length1 += paddingLength
		first.Length2 += paddingLength
	} else if paddingLength > len(first.Diffs[0].Text) {
		extra := paddingLength - len(first.Diffs[0].Text)
		first.Diffs[0].Text = nullPadding[len(first.Diffs[0].Text):] + first.Diffs[0].Text
		first.Start1 -= extra
		first.Start2 -= extra
		first.Length1 += extra
		first.Length2 += extra
	}

	last := &patches[len(patches)-1]
	if len(last.Diffs) == 0 || last.Diffs[len(last.Diffs)-1].Op != Equal {
		last.Diffs = append(last.Diffs, Edit{Equal, nullPadding})
		last.Length1 += paddingLength
		last.Length2 += paddingLength
	} else if paddingLength > len(last.Diffs[len(last.Diffs)-1].Text) {
		extra := paddingLength - len(last.Diffs[len(last.Diffs)-1].Text)
		last.Diffs[len(last.Diffs)-1].Text += nullPadding[:extra]
		last.Length1 += extra
		last.Length2 += extra
	}

	return nullPadding
}

// patchSplitMax breaks up patches whose source span exceeds what the match
// engine can search for, chaining the pieces with rolling context.
func patchSplitMax(patches []Patch, o *options) []Patch {
	patchSize := o.matchMaxBits
	for x := 0; x < len(patches); x++ {
		if patches[x].Length1 <= patchSize {
			continue
		}
		bigPatch := patches[x]
		patches = append(patches[:x], patches[x+1:]...)
		x--

		start1 := bigPatch.Start1
		start2 := bigPatch.Start2
		precontext := ""
		for len(bigPatch.Diffs) != 0 {
			patch := Patch{}
			empty := true
			patch.Start1 = start1 - len(precontext)
			patch.Start2 = start2 - len(precontext)
			if len(precontext) != 0 {
				patch.Length1 = len(precontext)
				patch.Length2 = len(precontext)
				patch.Diffs = append(patch.Diffs, Edit{Equal, precontext})
			}
			for len(bigPatch.Diffs) != 0 && patch.Length1 < patchSize-o.patchMargin {
				op := bigPatch.Diffs[0].Op
				text := bigPatch.Diffs[0].Text
				switch {
				case op == Insert:
					// Insertions never grow the source span.
					patch.Length2 += len(text)
					start2 += len(text)
					patch.Diffs = append(patch.Diffs, bigPatch.Diffs[0])
					bigPatch.Diffs = bigPatch.Diffs[1:]
					empty = false
				case op == Delete && len(patch.Diffs) == 1 &&
					patch.Diffs[0].Op == Equal && len(text) > 2*patchSize:
					// A monster deletion passes through in one chunk; the
					// apply step matches its head and tail separately.
					patch.Length1 += len(text)
					start1 += len(text)
					patch.Diffs = append(patch.Diffs, Edit{op, text})
					bigPatch.Diffs = bigPatch.Diffs[1:]
					empty = false
				default:
					// Deletion or equality; take as much as fits.
					text = text[:min(len(text), patchSize-patch.Length1-o.patchMargin)]
					patch.Length1 += len(text)
					start1 += len(text)
					if op == Equal {
						patch.Length2 += len(text)
						start2 += len(text)
					} else {
						empty = false
					}
					patch.Diffs = append(patch.Diffs, Edit{op, text})
					if text == bigPatch.Diffs[0].Text {
						bigPatch.Diffs = bigPatch.Diffs[1:]
					} else {
						bigPatch.Diffs[0].Text = bigPatch.Diffs[0].Text[len(text):]
					}
				}
			}

			// Head context for the next piece.
			precontext = patch.Diffs.DestText()
			precontext = precontext[max(0, len(precontext)-o.patchMargin):]

			// Tail context for this piece.
			postcontext := bigPatch.Diffs.SourceText()
			if len(postcontext) > o.patchMargin {
				postcontext = postcontext[:o.patchMargin]
			}
			if len(postcontext) != 0 {
				patch.Length1 += len(postcontext)
				patch.Length2 += len(postcontext)
				if len(patch.Diffs) != 0 && patch.Diffs[len(patch.Diffs)-1].Op == Equal {
					patch.Diffs[len(patch.Diffs)-1].Text += postcontext
				} else {
					patch.Diffs = append(patch.Diffs, Edit{Equal, postcontext})
				}
			}
			if !empty {
				x++
				patches = append(patches[:x], append([]Patch{patch}, patches[x:]...)...)
			}
		}
	}
	return patches
}

// PatchApply applies the patches to text, tolerating drift between the
// text the patches were made from and the text given. Returns the patched
// text and one bool per applied patch reporting whether it could be applied.
// Patches whose source span exceeds the match bit width are split before
// applying, and each piece gets its own entry, so the slice is not parallel
// to the input when a split happens. Application never fails as a whole;
// unmatched patches are skipped.
func PatchApply(patches []Patch, text string, opts ...Option) (string, []bool) {
	if len(patches) == 0 {
		return text, []bool{}
	}
	o := applyOptions(opts)

	patches = patchDeepCopy(patches)
	nullPadding := patchAddPadding(patches, o)
	text = nullPadding + text + nullPadding
	patches = patchSplitMax(patches, o)

	// delta tracks the drift between where patches expected to land and
	// where they actually landed, so later patches search the right spot.
	delta := 0
	results := make([]bool, len(patches))
	for x, patch := range patches {
		expectedLoc := patch.Start2 + delta
		text1 := patch.Diffs.SourceText()
		var startLoc int
		endLoc := -1
		if len(text1) > o.matchMaxBits {
			// Only a monster deletion produces an oversized pattern; match
			// its head and tail and demand they line up.
			startLoc = matchWith(text, text1[:o.matchMaxBits], expectedLoc, o)
			if startLoc != -1 {
				endLoc = matchWith(text, text1[len(text1)-o.matchMaxBits:],
					expectedLoc+len(text1)-o.matchMaxBits, o)
				if endLoc == -1 || startLoc >= endLoc {
					startLoc = -1
				}
			}
		} else {
			startLoc = matchWith(text, text1, expectedLoc, o)
		}
		if startLoc == -1 {
			results[x] = false
			// Subtract the delta for this failed patch from later patches.
			delta -= patch.Length2 - patch.Length1
			continue
		}

		results[x] = true
		delta = startLoc - expectedLoc
		var text2 string
		if endLoc == -1 {
			text2 = text[startLoc:min(startLoc+len(text1), len(text))]
		} else {
			text2 = text[startLoc:min(endLoc+o.matchMaxBits, len(text))]
		}
		if text1 == text2 {
			// Perfect match; substitute directly.
			text = text[:startLoc] + patch.Diffs.DestText() + text[startLoc+len(text1):]
			continue
		}

		// Imperfect match. Diff what was found against what was expected
		// to get a framework of equivalent indices.
		diffs := diffWith(o, text1, text2, false)
		if len(text1) > o.matchMaxBits &&
			float64(diffs.Levenshtein())/float64(len([]rune(text1))) > o.deleteThreshold {
			// The end points match but the content is unacceptably bad.
			results[x] = false
			continue
		}
		diffs = CleanupSemanticLossless(diffs)
		index1 := 0
		for _, edit := range patch.Diffs {
			if edit.Op != Equal {
				index2 := diffs.XIndex(index1)
				switch edit.Op {
				case Insert:
					text = text[:startLoc+index2] + edit.Text + text[startLoc+index2:]
				case Delete:
					startIndex := startLoc + index2
					text = text[:startIndex] +
						text[startIndex+diffs.XIndex(index1+len(edit.Text))-index2:]
				}
			}
			if edit.Op != Delete {
				index1 += len(edit.Text)
			}
		}
	}

	text = text[len(nullPadding) : len(text)-len(nullPadding)]
	return text, results
}

// PatchToText serializes a list of patches to text.
func PatchToText(patches []Patch) string {
	var sb strings.Builder
	for i := range patches {
		sb.WriteString(patches[i].String())
	}
	return sb.String()
}

var patchHeaderRegex = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// PatchFromText parses a textual representation of patches.
func PatchFromText(text string) ([]Patch, error) {
	var patches []Patch
	if len(text) == 0 {
		return patches, nil
	}
	lines := strings.Split(text, "\n")
	pointer := 0
	for pointer < len(lines) {
		m := patchHeaderRegex.FindStringSubmatch(lines[pointer])
		if m == nil {
			return nil, fmt.Errorf("%w: invalid header %q", ErrBadPatch, lines[pointer])
		}

		var patch Patch
		patch.Start1, _ = strconv.Atoi(m[1])
		switch {
		case len(m[2]) == 0:
			patch.Start1--
			patch.Length1 = 1
		case m[2] == "0":
			patch.Length1 = 0
		default:
			patch.Start1--
			patch.Length1, _ = strconv.Atoi(m[2])
		}

		patch.Start2, _ = strconv.Atoi(m[3])
		switch {
		case len(m[4]) == 0:
			patch.Start2--
			patch.Length2 = 1
		case m[4] == "0":
			patch.Length2 = 0
		default:
			patch.Start2--
			patch.Length2, _ = strconv.Atoi(m[4])
		}
		pointer++

		for pointer < len(lines) {
			if len(lines[pointer]) == 0 {
				pointer++
				continue
			}
			sign := lines[pointer][0]
			if sign == '@' {
				// Start of the next patch.
				break
			}
			line, err := decodeURI(lines[pointer][1:])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid body line %q: %v", ErrBadPatch, lines[pointer], err)
			}
			switch sign {
			case '-':
				patch.Diffs = append(patch.Diffs, Edit{Delete, line})
			case '+':
				patch.Diffs = append(patch.Diffs, Edit{Insert, line})
			case ' ':
				patch.Diffs = append(patch.Diffs, Edit{Equal, line})
			default:
				return nil, fmt.Errorf("%w: invalid mode %q in %q", ErrBadPatch, string(sign), lines[pointer])
			}
			pointer++
		}

		patches = append(patches, patch)
	}
	return patches, nil
}
