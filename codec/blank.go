package codec

import (
	"regexp"
	"strconv"
	"strings"
)

// The engine drops blank lines between entries when it rebuilds the
// document, which would erase the author's grouping before the blank-line
// budgets ever see it. EncodeBlankRuns replaces each run with a single
// comment line carrying the run length; comments ride through the engine
// attached to the following node, and DecodeBlankRuns expands them back.
// Runs inside block scalars are literal content and are left alone.
var (
	reBlankRun         = regexp.MustCompile(`^[\t ]*#` + Joiner + `(\d+)$`)
	reBlockScalarStart = regexp.MustCompile(`(?:^|\s)[|>][0-9]*[+-]?$`)
)

const blankRunMark = "#" + Joiner

// EncodeBlankRuns folds every interior run of blank lines into one
// comment line recording the run length. Trailing blank lines have no
// following node to attach to and are passed through for the end-of-file
// pass to deal with.
func EncodeBlankRuns(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	run := 0
	blockIndent := -1
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blockIndent >= 0 {
			if blank || lineIndent(line) > blockIndent {
				out = append(out, line)
				continue
			}
			blockIndent = -1
		}
		if blank {
			run++
			continue
		}
		if run > 0 {
			out = append(out, blankRunMark+strconv.Itoa(run))
			run = 0
		}
		out = append(out, line)
		if reBlockScalarStart.MatchString(strings.TrimRight(line, " \t")) {
			blockIndent = lineIndent(line)
		}
	}
	for ; run > 0; run-- {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// DecodeBlankRuns reverses EncodeBlankRuns, expanding each marker line
// back into its recorded number of blank lines.
func DecodeBlankRuns(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if m := reBlankRun.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			for ; n > 0; n-- {
				out = append(out, "")
			}
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func lineIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
