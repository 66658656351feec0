package codec

import (
	"regexp"
	"strings"
)

// Joiner glues the words of a {{ ... }} expression into one token so the
// engine's scalar folding can never wrap inside the braces. U+2605 does not
// occur in normal documents; DecodeTemplates turns it back into spaces.
const Joiner = "★"

var reTemplate = regexp.MustCompile(`{{.*}}`)

// EncodeTemplates joins every double-brace expression on a line into a
// single unsplittable token. Independent expressions on one line are joined
// independently.
func EncodeTemplates(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if reTemplate.MatchString(line) {
			lines[i] = encodeTemplateLine(line)
		}
	}
	return strings.Join(lines, "\n")
}

func encodeTemplateLine(line string) string {
	var (
		words []string
		terms []string
	)
	for _, word := range strings.Split(line, " ") {
		switch {
		case strings.Contains(word, "}}"):
			terms = append(terms, word)
			words = append(words, strings.Join(terms, Joiner))
			terms = nil
		case strings.Contains(word, "{{") || len(terms) > 0:
			terms = append(terms, word)
		default:
			words = append(words, word)
		}
	}
	if len(terms) > 0 {
		// unterminated expression, leave the tail as it was
		words = append(words, strings.Join(terms, " "))
	}
	return strings.Join(words, " ")
}

// DecodeTemplates reverses EncodeTemplates, restoring single spaces inside
// double-brace expressions.
func DecodeTemplates(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if reTemplate.MatchString(line) {
			lines[i] = strings.ReplaceAll(line, Joiner, " ")
		}
	}
	return strings.Join(lines, "\n")
}
