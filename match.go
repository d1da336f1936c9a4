package textdiff

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Match locates the position in text that best matches pattern, searching
// around the expected byte offset loc. Returns -1 when no position scores
// within the match threshold. A pattern longer than the bit width
// configured with WithMatchMaxBits is found only when it equals text or
// sits verbatim at loc; otherwise the result is -1. Offsets are byte
// positions.
func Match(text, pattern string, loc int, opts ...Option) int {
	return matchWith(text, pattern, loc, applyOptions(opts))
}

// matchWith runs a fuzzy match under an existing options struct. The patch
// engine uses it to share one configuration across its searches.
func matchWith(text, pattern string, loc int, o *options) int {
	loc = max(0, min(loc, len(text)))
	switch {
	case text == pattern:
		// Shortcut. Not guaranteed by the scoring, but obviously right.
		return 0
	case len(text) == 0:
		return -1
	case loc+len(pattern) <= len(text) && text[loc:loc+len(pattern)] == pattern:
		// Perfect match at the perfect spot.
		return loc
	}
	return matchBitap(text, pattern, loc, o)
}

// matchBitap runs the Bitap shift-or search: one bit array pass per allowed
// error level, with a binary search per level bounding how far from loc a
// match may drift before its score exceeds the threshold.
// See Baeza-Yates and Gonnet (1992).
func matchBitap(text, pattern string, loc int, o *options) int {
	if len(pattern) > o.matchMaxBits {
		// The state word cannot hold the pattern.
		return -1
	}

	s := matchAlphabet(pattern)

	// Highest score beyond which we give up.
	scoreThreshold := o.matchThreshold
	// A nearby exact match caps the threshold early.
	if bestLoc := indexOf(text, pattern, loc); bestLoc != -1 {
		scoreThreshold = math.Min(bitapScore(0, bestLoc, loc, pattern, o), scoreThreshold)
		if bestLoc = lastIndexOf(text, pattern, loc+len(pattern)); bestLoc != -1 {
			scoreThreshold = math.Min(bitapScore(0, bestLoc, loc, pattern, o), scoreThreshold)
		}
	}

	matchMask := 1 << uint(len(pattern)-1)
	bestLoc := -1

	var binMin, binMid int
	binMax := len(pattern) + len(text)
	var lastRd []int
	for d := 0; d < len(pattern); d++ {
		// Each level allows one more error; binary search how far from loc
		// a match at this level may stray and still beat the threshold.
		binMin = 0
		binMid = binMax
		for binMin < binMid {
			if bitapScore(d, loc+binMid, loc, pattern, o) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		// This level's limit bounds the next.
		binMax = binMid
		start := max(1, loc-binMid+1)
		finish := min(loc+binMid, len(text)) + len(pattern)

		rd := make([]int, finish+2)
		rd[finish+1] = (1 << uint(d)) - 1

		for j := finish; j >= start; j-- {
			var charMatch int
			if j-1 < len(text) {
				charMatch = s[text[j-1]]
			}
			if d == 0 {
				// Exact match pass.
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				// Fuzzy pass: substitution, insertion, deletion.
				rd[j] = ((rd[j+1]<<1)|1)&charMatch |
					(((lastRd[j+1] | lastRd[j]) << 1) | 1) |
					lastRd[j+1]
			}
			if rd[j]&matchMask != 0 {
				score := bitapScore(d, j-1, loc, pattern, o)
				if score <= scoreThreshold {
					scoreThreshold = score
					bestLoc = j - 1
					if bestLoc > loc {
						// When passing loc, don't exceed the current
						// distance from loc.
						start = max(1, 2*loc-bestLoc)
					} else {
						// Already passed loc; downhill from here.
						break
					}
				}
			}
		}
		if bitapScore(d+1, loc, loc, pattern, o) > scoreThreshold {
			// No hope for a better match at greater error levels.
			break
		}
		lastRd = rd
	}
	return bestLoc
}

// bitapScore rates a match with e errors found at position x, searching
// for a match near loc. Lower is better; 0.0 is a perfect match in place.
func bitapScore(e, x, loc int, pattern string, o *options) float64 {
	accuracy := float64(e) / float64(len(pattern))
	proximity := math.Abs(float64(loc - x))
	if o.matchDistance == 0 {
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + proximity/float64(o.matchDistance)
}

// matchAlphabet builds the per-byte bit masks for the Bitap search.
func matchAlphabet(pattern string) map[byte]int {
	s := map[byte]int{}
	for i := 0; i < len(pattern); i++ {
		s[pattern[i]] |= 1 << uint(len(pattern)-i-1)
	}
	return s
}

// indexOf returns the byte index of the first occurrence of pattern in str
// at or after i, or -1.
func indexOf(str, pattern string, i int) int {
	if i > len(str)-1 {
		return -1
	}
	if i <= 0 {
		return strings.Index(str, pattern)
	}
	ind := strings.Index(str[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

// lastIndexOf returns the byte index of the last occurrence of pattern in
// str that ends no later than the rune starting at i (anywhere in str when
// i is past its end), or -1.
func lastIndexOf(str, pattern string, i int) int {
	if i < 0 {
		return -1
	}
	if i >= len(str) {
		return strings.LastIndex(str, pattern)
	}
	_, size := utf8.DecodeRuneInString(str[i:])
	return strings.LastIndex(str[:i+size], pattern)
}
