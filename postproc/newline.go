package postproc

import "strings"

// NewlineAtEOF strips all trailing whitespace and ends the document with
// exactly one newline.
func NewlineAtEOF(src string) string {
	return strings.TrimRight(src, " \t\r\n") + "\n"
}
