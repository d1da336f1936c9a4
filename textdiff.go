// Package textdiff implements diff, fuzzy match, and patch operations on
// plain text, after Myers' O(ND) algorithm and Fraser's cleanup and
// patching heuristics.
//
// The three engines build on each other:
//   - Diff: computes a minimal edit script between two texts, with
//     optional semantic and efficiency cleanups for human-readable output
//   - Match: locates a pattern in text near an expected position, tolerating
//     errors via the Bitap algorithm
//   - Patch: turns diffs into context patches and applies them to texts
//     that may have drifted since the diff was made
package textdiff

import "time"

// Op identifies the type of edit operation.
type Op int

const (
	// Equal means the text is unchanged.
	Equal Op = iota
	// Insert means text was added that is not in the source.
	Insert
	// Delete means text was removed from the source.
	Delete
)

// String returns a string representation of the Op.
func (op Op) String() string {
	switch op {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Edit represents a single edit operation and the text it covers.
type Edit struct {
	Op   Op
	Text string
}

// EditList is a sequence of edits transforming a source text into a
// destination text. In canonical form no two adjacent edits share an
// operation and no edit has empty text.
type EditList []Edit

// options holds configuration shared by the diff, match, and patch engines.
type options struct {
	timeout         time.Duration
	editCost        int
	checkLines      bool
	matchThreshold  float64
	matchDistance   int
	matchMaxBits    int
	patchMargin     int
	deleteThreshold float64
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		timeout:         time.Second,
		editCost:        4,
		checkLines:      true,
		matchThreshold:  0.5,
		matchDistance:   1000,
		matchMaxBits:    32, // bits in a word on all supported platforms
		patchMargin:     4,
		deleteThreshold: 0.5,
	}
}

// Option configures diff, match, and patch behavior.
type Option func(*options)

// WithTimeout bounds the time spent searching for an optimal diff. Past the
// deadline the result is still correct, just not guaranteed minimal.
// Zero or negative means no limit.
// Default: 1 second.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithEditCost sets the cost of an empty edit operation in terms of edit
// characters, used by CleanupEfficiency to decide when to coalesce edits.
// Default: 4.
func WithEditCost(n int) Option {
	return func(o *options) {
		o.editCost = n
	}
}

// WithCheckLines enables or disables the line-level pre-pass that speeds up
// diffs of large texts at a slight cost in optimality.
// Default: true.
func WithCheckLines(enabled bool) Option {
	return func(o *options) {
		o.checkLines = enabled
	}
}

// WithMatchThreshold sets how closely a fuzzy match must resemble the
// pattern, from 0.0 (exact) to 1.0 (anything).
// Default: 0.5.
func WithMatchThreshold(t float64) Option {
	return func(o *options) {
		o.matchThreshold = t
	}
}

// WithMatchDistance sets how far from the expected location a match may
// stray before its score reflects the distance. 0 demands the exact
// location, a large value accepts a match anywhere.
// Default: 1000.
func WithMatchDistance(n int) Option {
	return func(o *options) {
		o.matchDistance = n
	}
}

// WithMatchMaxBits sets the maximum pattern length for fuzzy matching,
// bounded by the number of bits in an int. Longer patterns make PatchApply
// split patches.
// Default: 32.
func WithMatchMaxBits(n int) Option {
	return func(o *options) {
		o.matchMaxBits = n
	}
}

// WithPatchMargin sets the amount of context included around each patch
// hunk.
// Default: 4.
func WithPatchMargin(n int) Option {
	return func(o *options) {
		o.patchMargin = n
	}
}

// WithDeleteThreshold sets how closely the content of a large deletion must
// match the expected text when applying a patch, from 0.0 (exact) to 1.0
// (anything).
// Default: 0.5.
func WithDeleteThreshold(t float64) Option {
	return func(o *options) {
		o.deleteThreshold = t
	}
}

// applyOptions builds an options struct from defaults plus overrides.
func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Diff compares two texts and returns the edits transforming text1 into
// text2. The result is in canonical form and has been merge-cleaned;
// callers wanting human-oriented output should follow with CleanupSemantic
// or CleanupEfficiency.
func Diff(text1, text2 string, opts ...Option) EditList {
	o := applyOptions(opts)
	return diffWith(o, text1, text2, o.checkLines)
}

// diffWith runs a diff under an existing options struct. The patch engine
// uses it to share one configuration across secondary diffs.
func diffWith(o *options, text1, text2 string, checkLines bool) EditList {
	d := newDiffer(o)
	return d.diffMain([]rune(text1), []rune(text2), checkLines)
}
