package textdiff

// commonPrefixLen returns the number of runes shared at the start of both
// texts.
func commonPrefixLen(text1, text2 []rune) int {
	n := min(len(text1), len(text2))
	for i := 0; i < n; i++ {
		if text1[i] != text2[i] {
			return i
		}
	}
	return n
}

// commonSuffixLen returns the number of runes shared at the end of both
// texts.
func commonSuffixLen(text1, text2 []rune) int {
	n := min(len(text1), len(text2))
	for i := 1; i <= n; i++ {
		if text1[len(text1)-i] != text2[len(text2)-i] {
			return i - 1
		}
	}
	return n
}

// commonOverlapLen returns the number of runes shared between the end of
// text1 and the start of text2.
func commonOverlapLen(text1, text2 []rune) int {
	// Truncate to comparable regions.
	if len(text1) > len(text2) {
		text1 = text1[len(text1)-len(text2):]
	} else if len(text1) < len(text2) {
		text2 = text2[:len(text1)]
	}
	if runesEqual(text1, text2) {
		return len(text1)
	}

	// Walk candidate overlap lengths upward. Quadratic worst case but
	// near-linear in practice (Ukkonen's observation).
	best := 0
	length := 1
	for {
		pattern := text1[len(text1)-length:]
		found := runesIndex(text2, pattern)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || runesEqual(text1[len(text1)-length:], text2[:length]) {
			best = length
			length++
		}
	}
}

// runesEqual reports whether two rune slices hold the same sequence.
func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if b[i] != r {
			return false
		}
	}
	return true
}

// runesIndex returns the rune index of the first occurrence of pattern in
// text, or -1.
func runesIndex(text, pattern []rune) int {
	return runesIndexOf(text, pattern, 0)
}

// runesIndexOf returns the rune index of the first occurrence of pattern in
// text at or after start, or -1.
func runesIndexOf(text, pattern []rune, start int) int {
	if start > len(text)-len(pattern) {
		return -1
	}
	if start < 0 {
		start = 0
	}
outer:
	for i := start; i <= len(text)-len(pattern); i++ {
		for j, r := range pattern {
			if text[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

// halfMatchResult describes a substring of the longer text that covers at
// least half of it and occurs in the shorter text.
type halfMatchResult struct {
	prefix1, suffix1 []rune // around the common part in text1
	prefix2, suffix2 []rune // around the common part in text2
	common           []rune
}

// halfMatch looks for a substring of the longer text at least half its
// length that also appears in the shorter text. Finding one lets the diff
// split both texts and recurse on much smaller problems. Returns nil when
// no such substring exists, when the longer text is too short to bother, or
// when running without a time limit (the speedup is not worth a
// non-optimal diff if time is unlimited).
func (d *differ) halfMatch(text1, text2 []rune) *halfMatchResult {
	if d.opts.timeout <= 0 {
		return nil
	}

	long, short := text1, text2
	if len(long) < len(short) {
		long, short = short, long
	}
	if len(long) < 4 || len(short)*2 < len(long) {
		return nil
	}

	// Seed from the second quarter and again from the second half.
	hm1 := halfMatchAt(long, short, (len(long)+3)/4)
	hm2 := halfMatchAt(long, short, (len(long)+1)/2)

	var hm *halfMatchResult
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	case len(hm1.common) >= len(hm2.common):
		hm = hm1
	default:
		hm = hm2
	}

	if len(text1) < len(text2) {
		// Results were computed against swapped inputs.
		hm = &halfMatchResult{
			prefix1: hm.prefix2,
			suffix1: hm.suffix2,
			prefix2: hm.prefix1,
			suffix2: hm.suffix1,
			common:  hm.common,
		}
	}
	return hm
}

// halfMatchAt checks whether a substring of short exists within long
// starting around index i, long enough to cover half of long.
func halfMatchAt(long, short []rune, i int) *halfMatchResult {
	seed := long[i : i+len(long)/4]
	var (
		bestCommon []rune
		bestLongA  []rune
		bestLongB  []rune
		bestShortA []rune
		bestShortB []rune
		hasBest    bool
	)
	for j := runesIndexOf(short, seed, 0); j != -1; j = runesIndexOf(short, seed, j+1) {
		prefixLen := commonPrefixLen(long[i:], short[j:])
		suffixLen := commonSuffixLen(long[:i], short[:j])
		if len(bestCommon) < suffixLen+prefixLen {
			bestCommon = append(append([]rune{}, short[j-suffixLen:j]...), short[j:j+prefixLen]...)
			bestLongA = long[:i-suffixLen]
			bestLongB = long[i+prefixLen:]
			bestShortA = short[:j-suffixLen]
			bestShortB = short[j+prefixLen:]
			hasBest = true
		}
	}
	if !hasBest || len(bestCommon)*2 < len(long) {
		return nil
	}
	return &halfMatchResult{
		prefix1: bestLongA,
		suffix1: bestLongB,
		prefix2: bestShortA,
		suffix2: bestShortB,
		common:  bestCommon,
	}
}
