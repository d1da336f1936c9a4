package textdiff_test

import (
	"fmt"

	"github.com/dacharyc/textdiff"
)

func ExampleDiff() {
	edits := textdiff.Diff(
		"The cat in the hat.",
		"The dog in the hat.",
		textdiff.WithTimeout(0),
	)
	fmt.Println(edits.RenderCompact())
	// Output: The -[cat]+[dog] in the hat.
}

func ExampleMatch() {
	loc := textdiff.Match(
		"I am the very model of a modern major general.",
		"general", 20,
	)
	fmt.Println(loc)
	// Output: 38
}

func ExamplePatchApply() {
	patches := textdiff.PatchMake(
		"The quick brown fox.",
		"The slow brown fox.",
	)
	result, applied := textdiff.PatchApply(patches, "The quick brown fox.")
	fmt.Println(result, applied)
	// Output: The slow brown fox. [true]
}

func ExampleEditList_ToDelta() {
	edits := textdiff.Diff("abc", "abd", textdiff.WithTimeout(0))
	fmt.Printf("%q\n", edits.ToDelta())

	decoded, err := textdiff.FromDelta("abc", edits.ToDelta())
	if err != nil {
		panic(err)
	}
	fmt.Println(decoded.DestText())
	// Output:
	// "=2\t-1\t+d"
	// abd
}
