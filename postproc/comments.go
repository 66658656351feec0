package postproc

import (
	"regexp"
	"strings"

	"github.com/lyz-code/yamlfix/config"
)

var (
	reCommentNoSpace = regexp.MustCompile(`(^|\s)#(\w)`)
	reInlineComment  = regexp.MustCompile(`(.+\S)(\s+?)#`)
)

// FixComments enforces a space after the comment marker and the configured
// minimum spacing between content and an inline comment. Lines whose last
// non-whitespace character is a quote are skipped: the `#` is likely inside
// a string literal, and this pass is a heuristic, not a string-aware
// scanner.
func FixComments(src string, cfg *config.Config) string {
	commentStart := strings.Repeat(" ", cfg.CommentsMinSpacesFromContent) + "#"
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if cfg.CommentsRequireStartingSpace && reCommentNoSpace.MatchString(line) {
			line = reCommentNoSpace.ReplaceAllString(line, "${1}# ${2}")
		}
		if cfg.CommentsMinSpacesFromContent > 1 &&
			strings.Contains(line, " #") && !endsWithQuote(line) {
			line = reInlineComment.ReplaceAllString(line, "${1}"+commentStart)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func endsWithQuote(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	return strings.HasSuffix(trimmed, "'") || strings.HasSuffix(trimmed, `"`)
}
