package yamlfix

import (
	"strings"

	"github.com/lyz-code/yamlfix/codec"
	"github.com/lyz-code/yamlfix/config"
	"github.com/lyz-code/yamlfix/debug"
	"github.com/lyz-code/yamlfix/engine"
	"github.com/lyz-code/yamlfix/postproc"
	"github.com/lyz-code/yamlfix/style"
	"github.com/lyz-code/yamlfix/whitelines"
)

// Fix normalizes YAML source text according to cfg. Files that begin
// with the vault sentinel are returned byte for byte, since their
// payload is opaque ciphertext. A leading shebang or jinja2 directive
// line is held out of the pipeline and reattached unchanged.
func Fix(src string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.VaultSentinel != "" && strings.HasPrefix(src, cfg.VaultSentinel) {
		if debug.Fixers() {
			debug.Logf("fix: vault sentinel, passing through")
		}
		return src, nil
	}

	marker, body := splitLeadingMarkers(src, cfg)

	out, err := fixBody(body, cfg)
	if err != nil {
		return "", err
	}
	return marker + out, nil
}

func fixBody(src string, cfg *config.Config) (string, error) {
	trace := func(pass, s string) {
		if debug.Fixers() {
			debug.Logf("fix: after %s: %d bytes", pass, len(s))
		}
	}

	s := codec.EncodeTruthy(src)
	trace("encode truthy", s)
	s = codec.EncodeTemplates(s)
	trace("encode templates", s)
	s = codec.EncodeBlankRuns(s)
	trace("encode blank runs", s)

	s, err := engine.RoundTrip(s, cfg, style.New(cfg))
	if err != nil {
		return "", err
	}
	trace("round trip", s)

	s = codec.DecodeTruthy(s, cfg.QuoteRepresentation)
	trace("decode truthy", s)
	s = codec.DecodeTemplates(s)
	trace("decode templates", s)
	s = codec.DecodeBlankRuns(s)
	trace("decode blank runs", s)
	s = postproc.RestoreDoubleExclamations(s)
	trace("restore exclamations", s)
	s = postproc.FixComments(s, cfg)
	trace("fix comments", s)
	s = postproc.FixFlowStyleLists(s)
	trace("fix flow lists", s)
	s = postproc.FixTopLevelLists(s)
	trace("fix top level lists", s)
	s = whitelines.Fix(s, cfg)
	trace("whitelines", s)
	s = postproc.NewlineAtEOF(s)
	trace("newline at eof", s)
	return s, nil
}

// splitLeadingMarkers peels off a leading shebang line and, after it,
// a jinja2 directive line. The returned marker keeps its trailing
// newlines so that marker+body reassembles the original text.
func splitLeadingMarkers(src string, cfg *config.Config) (marker, body string) {
	body = src
	if cfg.ShebangPrefix != "" && strings.HasPrefix(body, cfg.ShebangPrefix) {
		line, rest := splitFirstLine(body)
		marker += line
		body = rest
	}
	if cfg.JinjaDirectivePrefix != "" && strings.HasPrefix(body, cfg.JinjaDirectivePrefix) {
		line, rest := splitFirstLine(body)
		marker += line
		body = rest
	}
	return marker, body
}

func splitFirstLine(s string) (line, rest string) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s + "\n", ""
	}
	return s[:i+1], s[i+1:]
}
