package postproc

import "strings"

// RestoreDoubleExclamations turns the engine's percent-encoded `!%21` tag
// markers back into literal `!!` everywhere they occur.
func RestoreDoubleExclamations(src string) string {
	return strings.ReplaceAll(src, "!%21", "!!")
}
