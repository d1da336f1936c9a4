// Comparison tool for validating textdiff output quality against go-diff
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dacharyc/textdiff"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	testCases := []struct {
		name string
		a, b string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    "The quick brown fox jumps",
			b:    "A slow red fox leaps",
		},
		{
			name: "Prose with common words",
			a:    "The quick brown fox jumps over the lazy dog in the park",
			b:    "A slow red fox leaps over the sleeping cat in the garden",
		},
		{
			name: "Code-like tokens",
			a:    "func main ( ) { fmt . Println ( hello ) }",
			b:    "func main ( ) { log . Printf ( world ) }",
		},
		{
			name: "Large file (500 lines, scattered changes)",
			a:    strings.Join(generateLargeText(500, 0), "\n"),
			b:    strings.Join(generateLargeText(500, 42), "\n"),
		},
	}

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d bytes, B: %d bytes\n", len(tc.a), len(tc.b))

		start := time.Now()
		edits := textdiff.Diff(tc.a, tc.b)
		textdiffTime := time.Since(start)

		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(tc.a, tc.b, true)
		goDiffTime := time.Since(start)

		textdiffStats := analyzeTextdiff(edits)
		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\ntextdiff: %v\n", textdiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			textdiffStats.total, textdiffStats.equal, textdiffStats.delete, textdiffStats.insert)
		fmt.Printf("  Change regions: %d, Levenshtein: %d\n",
			textdiffStats.changeRegions, edits.Levenshtein())

		fmt.Printf("\ngo-diff:  %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
		fmt.Printf("  Change regions: %d, Levenshtein: %d\n",
			goDiffStats.changeRegions, dmp.DiffLevenshtein(goDiffs))

		if edits.SourceText() != tc.a || edits.DestText() != tc.b {
			fmt.Println("  WARNING: textdiff edits do not reconstruct the inputs")
		}

		if len(tc.a) <= 64 {
			fmt.Println("\ntextdiff output:")
			for _, e := range edits {
				switch e.Op {
				case textdiff.Equal:
					fmt.Printf("  = %q\n", e.Text)
				case textdiff.Delete:
					fmt.Printf("  - %q\n", e.Text)
				case textdiff.Insert:
					fmt.Printf("  + %q\n", e.Text)
				}
			}
		}
	}
}

type diffStats struct {
	total, equal, delete, insert int
	changeRegions                int
}

func analyzeTextdiff(edits textdiff.EditList) diffStats {
	var s diffStats
	s.total = len(edits)
	inChange := false
	for _, e := range edits {
		switch e.Op {
		case textdiff.Equal:
			s.equal++
			inChange = false
		case textdiff.Delete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case textdiff.Insert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
