package codec

import (
	"regexp"
	"strings"
)

// The engine canonicalizes bare boolean-looking words but also converts
// quoted yes/no/on/off into booleans when the quotes are dropped. EncodeTruthy
// rewrites the unquoted variants to canonical booleans before parsing so the
// engine treats them as real booleans; DecodeTruthy re-quotes the words the
// engine emitted bare, restoring the author's string intent. The two are
// inverses over one engine round trip.
var (
	reTruthyTrue  = regexp.MustCompile(`(?i)^(.*(:|-) )(true|yes|on)$`)
	reTruthyFalse = regexp.MustCompile(`(?i)^(.*(:|-) )(false|no|off)$`)
	reTruthyWord  = regexp.MustCompile(`(?i)^(.*(:|-) )(yes|on|no|off)$`)
)

// EncodeTruthy converts unquoted truthy words after a ": " or "- " to the
// canonical lowercase boolean. Lines already holding canonical true/false
// come out unchanged.
func EncodeTruthy(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if m := reTruthyTrue.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + "true"
		} else if m := reTruthyFalse.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + "false"
		}
	}
	return strings.Join(lines, "\n")
}

// DecodeTruthy wraps bare yes/on/no/off words after a ": " or "- " in the
// given quote character. Canonical true/false are left alone: after
// EncodeTruthy only originally-quoted words can still surface bare.
func DecodeTruthy(src, quote string) string {
	if quote == "" {
		quote = "'"
	}
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if m := reTruthyWord.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + quote + m[3] + quote
		}
	}
	return strings.Join(lines, "\n")
}
