package textdiff

// diffMain is the top of the diff pipeline: it short-circuits equal inputs,
// factors out the common prefix and suffix, diffs the middle, and glues the
// affixes back on as Equal edits.
func (d *differ) diffMain(text1, text2 []rune, checkLines bool) EditList {
	if runesEqual(text1, text2) {
		if len(text1) > 0 {
			return EditList{{Equal, string(text1)}}
		}
		return nil
	}

	prefixLen := commonPrefixLen(text1, text2)
	prefix := text1[:prefixLen]
	text1 = text1[prefixLen:]
	text2 = text2[prefixLen:]

	suffixLen := commonSuffixLen(text1, text2)
	suffix := text1[len(text1)-suffixLen:]
	text1 = text1[:len(text1)-suffixLen]
	text2 = text2[:len(text2)-suffixLen]

	edits := d.compute(text1, text2, checkLines)

	if len(prefix) > 0 {
		edits = append(EditList{{Equal, string(prefix)}}, edits...)
	}
	if len(suffix) > 0 {
		edits = append(edits, Edit{Equal, string(suffix)})
	}
	return cleanupMerge(edits)
}

// compute diffs two texts known to share no common prefix or suffix.
func (d *differ) compute(text1, text2 []rune, checkLines bool) EditList {
	if len(text1) == 0 {
		return EditList{{Insert, string(text2)}}
	}
	if len(text2) == 0 {
		return EditList{{Delete, string(text1)}}
	}

	long, short := text1, text2
	if len(long) < len(short) {
		long, short = short, long
	}
	if i := runesIndex(long, short); i != -1 {
		// The shorter text sits whole inside the longer one.
		op := Insert
		if len(text1) > len(text2) {
			op = Delete
		}
		return EditList{
			{op, string(long[:i])},
			{Equal, string(short)},
			{op, string(long[i+len(short):])},
		}
	}
	if len(short) == 1 {
		// A single rune that is not a substring cannot be Equal to anything.
		return EditList{{Delete, string(text1)}, {Insert, string(text2)}}
	}

	if hm := d.halfMatch(text1, text2); hm != nil {
		edits := d.diffMain(hm.prefix1, hm.prefix2, checkLines)
		edits = append(edits, Edit{Equal, string(hm.common)})
		return append(edits, d.diffMain(hm.suffix1, hm.suffix2, checkLines)...)
	}

	if checkLines && len(text1) > 100 && len(text2) > 100 {
		return d.lineMode(text1, text2)
	}
	return d.bisect(text1, text2)
}
