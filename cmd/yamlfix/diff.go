package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// printDiff writes a line-based diff between the original and fixed
// text of one input, colored when the output is a terminal or -color
// was given.
func printDiff(cfg *MainConfig, w io.Writer, name, from, to string) error {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(fromRunes, toRunes, false), lines)

	useColor := cfg.useColor(w)
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)

	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s (fixed)\n", name, name); err != nil {
		return err
	}
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, c = "+", ins
		case diffpatch.DiffDelete:
			prefix, c = "-", del
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range splitDiffLines(d.Text) {
			out := prefix + line + "\n"
			if useColor && c != nil {
				out = c.Sprint(out)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
