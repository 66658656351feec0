package postproc

import "regexp"

var reFlowSeqTail = regexp.MustCompile(`\[(.*)(\n+)]\n?`)

// FixFlowStyleLists relocates a flow sequence's closing bracket that the
// engine emitted on its own line after one or more blank lines:
//
//	list: ["a", b, 'c'
//
//	]
//
// becomes
//
//	list: ["a", b, 'c']
//
// with the blank lines moved after the bracket.
func FixFlowStyleLists(src string) string {
	return reFlowSeqTail.ReplaceAllString(src, "[$1]$2")
}
