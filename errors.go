package textdiff

import "errors"

// Sentinel errors for malformed serialized input. Wrapped errors carry the
// detail; test with errors.Is.
var (
	// ErrBadDelta reports delta text that does not parse or does not apply
	// to the given source text.
	ErrBadDelta = errors.New("textdiff: bad delta")
	// ErrBadPatch reports patch text that does not parse.
	ErrBadPatch = errors.New("textdiff: bad patch")
)
