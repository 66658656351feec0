// Package whitelines re-derives blank-line counts between top-level
// sections and before comments. Section boundaries are located with a
// composite pattern over the document text, not the node tree: the engine
// does not reliably preserve blank lines through a round trip, the text
// does.
package whitelines

import (
	"regexp"
	"strings"

	"github.com/lyz-code/yamlfix/config"
	"github.com/lyz-code/yamlfix/debug"
)

// Span is a byte range of one top-level section within a document,
// including the blank lines and leading comment block that belong to it.
type Span struct {
	Start, End int
}

// A section is an optional comment block followed by a root-level key line
// and its indented block. The two alternatives anchor the first section to
// the document start or an explicit start marker, so its leading blank
// lines are never treated as inter-section spacing.
const sectionPattern = `\n*(?:^#.*\n)*\n*^[^ ].*:\n(?:\n|^  .*)+\n*`

var (
	reSection = regexp.MustCompile(
		`(?m)(?P<b>(?:---\n|\A)` + sectionPattern + `)|(?P<s>` + sectionPattern + `)`)

	rePreCommentRun = regexp.MustCompile(`\n\n+[\t ]*#`)
	reContentRun    = regexp.MustCompile(`\n\n+[\t ]*[^#\n\t ]`)
)

// LocateSections returns the spans of all top-level sections found in src.
func LocateSections(src string) []Span {
	ms := reSection.FindAllStringIndex(src, -1)
	spans := make([]Span, 0, len(ms))
	for _, m := range ms {
		spans = append(spans, Span{Start: m[0], End: m[1]})
	}
	return spans
}

// Fix normalizes blank-line runs: the generic budget applies to runs not
// followed by a comment, the section budget to the runs flanking top-level
// sections, and the comment budget to runs immediately preceding a comment
// line. The comment budget is applied last so it wins directly before a
// comment even at a section edge.
func Fix(src string, cfg *config.Config) string {
	src = replaceRuns(reContentRun, src, cfg.Whitelines)
	src = fixSectionWhitelines(src, cfg)
	src = replaceRuns(rePreCommentRun, src, cfg.CommentsWhitelines)
	return src
}

func replaceRuns(re *regexp.Regexp, src string, n int) string {
	return re.ReplaceAllStringFunc(src, func(run string) string {
		return strings.Repeat("\n", n+1) + strings.TrimLeft(run, "\n")
	})
}

func fixSectionWhitelines(src string, cfg *config.Config) string {
	if debug.Sections() {
		for _, sp := range LocateSections(src) {
			debug.Logf("section at %d:%d", sp.Start, sp.End)
		}
	}
	generic, section := cfg.Whitelines, cfg.SectionWhitelines

	// spacing before each section; beginning-of-document sections keep
	// their leading run as is
	before := replaceSubmatch(reSection, src, func(begin, normal string, hasNormal bool) string {
		if !hasNormal {
			return begin + normal
		}
		n := section
		// an author-sized run at or above the generic budget is kept: the
		// section budget never reduces spacing the generic budget allows
		if generic > section && strings.HasPrefix(normal, strings.Repeat("\n", generic+1)) {
			n = generic
		}
		return strings.Repeat("\n", n+1) + strings.TrimLeft(normal, "\n")
	})

	// spacing after each section
	after := replaceSubmatch(reSection, before, func(begin, normal string, hasNormal bool) string {
		text := begin
		if hasNormal {
			text = normal
		}
		n := section
		if generic > section && strings.HasSuffix(text, strings.Repeat("\n", generic+2)) {
			n = generic
		}
		return strings.TrimRight(text, "\n") + strings.Repeat("\n", n+1)
	})

	for strings.HasSuffix(after, "\n\n") {
		after = after[:len(after)-1]
	}
	return after
}

// replaceSubmatch is ReplaceAllStringFunc with access to the two
// alternative groups of reSection.
func replaceSubmatch(re *regexp.Regexp, src string, repl func(begin, normal string, hasNormal bool) string) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(src, -1) {
		b.WriteString(src[last:m[0]])
		begin, normal := "", ""
		hasNormal := false
		if m[2] >= 0 {
			begin = src[m[2]:m[3]]
		}
		if m[4] >= 0 {
			normal = src[m[4]:m[5]]
			hasNormal = true
		}
		b.WriteString(repl(begin, normal, hasNormal))
		last = m[1]
	}
	b.WriteString(src[last:])
	return b.String()
}
