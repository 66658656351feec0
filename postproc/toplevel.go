package postproc

import (
	"regexp"
	"strings"
)

var (
	reHeadingLine   = regexp.MustCompile(`^(---|#.*|)$`)
	reListItemStart = regexp.MustCompile(`^(\s*)- +`)
	reCommentLine   = regexp.MustCompile(`^\s*#`)
)

// FixTopLevelLists strips the one level of indentation the engine adds to
// root-level sequences. The detector bails out and returns the input
// verbatim when the first content line is not a sequence item; comment
// lines keep their indentation because the engine never reindents them.
func FixTopLevelLists(src string) string {
	lines := strings.Split(src, "\n")
	fixed := make([]string, 0, len(lines))

	topLevelList := false
	indent := ""
	for _, line := range lines {
		// heading, comments and blank lines before the first item
		if !topLevelList && reHeadingLine.MatchString(line) {
			fixed = append(fixed, line)
			continue
		}
		if !topLevelList {
			m := reListItemStart.FindStringSubmatch(line)
			if m == nil {
				return src
			}
			topLevelList = true
			indent = m[1]
			fixed = append(fixed, strings.TrimPrefix(line, indent))
			continue
		}
		if reHeadingLine.MatchString(line) || reCommentLine.MatchString(line) {
			fixed = append(fixed, line)
			continue
		}
		fixed = append(fixed, strings.TrimPrefix(line, indent))
	}
	return strings.Join(fixed, "\n")
}
