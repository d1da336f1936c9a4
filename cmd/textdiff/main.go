// Command textdiff diffs, matches, and patches text files from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dacharyc/textdiff"
)

func main() {
	root := &cobra.Command{
		Use:          "textdiff",
		Short:        "Diff, fuzzy match, and patch plain text",
		SilenceUsage: true,
	}
	root.AddCommand(newDiffCmd(), newPatchCmd(), newApplyCmd(), newMatchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDiffCmd() *cobra.Command {
	var (
		timeout   time.Duration
		lineMode  bool
		format    string
		semantic  bool
		editCost  int
	)
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compute the differences between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text1, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text2, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			edits := textdiff.Diff(string(text1), string(text2),
				textdiff.WithTimeout(timeout),
				textdiff.WithCheckLines(lineMode))
			if semantic {
				edits = textdiff.CleanupSemantic(edits)
			}
			if editCost > 0 {
				edits = textdiff.CleanupEfficiency(edits, textdiff.WithEditCost(editCost))
			}

			switch format {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), edits.RenderText())
			case "compact":
				fmt.Fprintln(cmd.OutOrStdout(), edits.RenderCompact())
			case "html":
				fmt.Fprintln(cmd.OutOrStdout(), edits.RenderHTML())
			case "delta":
				fmt.Fprintln(cmd.OutOrStdout(), edits.ToDelta())
			default:
				return fmt.Errorf("unknown format %q (want text, compact, html, or delta)", format)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Second, "give up refining the diff after this long (0 for no limit)")
	cmd.Flags().BoolVar(&lineMode, "lines", true, "run a line-level pre-pass on large inputs")
	cmd.Flags().StringVar(&format, "format", "compact", "output format: text, compact, html, or delta")
	cmd.Flags().BoolVar(&semantic, "semantic", false, "clean up the diff for human readability")
	cmd.Flags().IntVar(&editCost, "edit-cost", 0, "clean up the diff for machine efficiency with this edit cost")
	return cmd
}

func newPatchCmd() *cobra.Command {
	var margin int
	cmd := &cobra.Command{
		Use:   "patch <file1> <file2>",
		Short: "Build a patch that turns file1 into file2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text1, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text2, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			patches := textdiff.PatchMake(string(text1), string(text2),
				textdiff.WithPatchMargin(margin))
			fmt.Fprint(cmd.OutOrStdout(), textdiff.PatchToText(patches))
			return nil
		},
	}
	cmd.Flags().IntVar(&margin, "margin", 4, "bytes of context to keep around each hunk")
	return cmd
}

func newApplyCmd() *cobra.Command {
	var (
		threshold       float64
		distance        int
		deleteThreshold float64
	)
	cmd := &cobra.Command{
		Use:   "apply <patchfile> <target>",
		Short: "Apply a patch to a file, tolerating drift in the target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patchText, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			target, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			patches, err := textdiff.PatchFromText(string(patchText))
			if err != nil {
				return err
			}
			result, applied := textdiff.PatchApply(patches, string(target),
				textdiff.WithMatchThreshold(threshold),
				textdiff.WithMatchDistance(distance),
				textdiff.WithDeleteThreshold(deleteThreshold))

			fmt.Fprint(cmd.OutOrStdout(), result)
			failed := 0
			for _, ok := range applied {
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d hunks failed to apply", failed, len(applied))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "how sloppy a context match may be, 0 (exact) to 1 (anything)")
	cmd.Flags().IntVar(&distance, "distance", 1000, "how far from the expected location a match may drift")
	cmd.Flags().Float64Var(&deleteThreshold, "delete-threshold", 0.5, "how sloppy a deletion's content match may be")
	return cmd
}

func newMatchCmd() *cobra.Command {
	var (
		threshold float64
		distance  int
		loc       int
	)
	cmd := &cobra.Command{
		Use:   "match <file> <pattern>",
		Short: "Fuzzy-find a pattern in a file near a location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			found := textdiff.Match(string(text), args[1], loc,
				textdiff.WithMatchThreshold(threshold),
				textdiff.WithMatchDistance(distance))
			if found < 0 {
				return fmt.Errorf("no match for %q near offset %d", args[1], loc)
			}
			fmt.Fprintln(cmd.OutOrStdout(), found)
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "how sloppy a match may be, 0 (exact) to 1 (anything)")
	cmd.Flags().IntVar(&distance, "distance", 1000, "how far from the expected location a match may drift")
	cmd.Flags().IntVar(&loc, "loc", 0, "byte offset where the pattern is expected")
	return cmd
}
