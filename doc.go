// Package yamlfix normalizes YAML source text.
//
// The normalization runs a source string through a fixed pipeline:
// line-level encoders protect constructs the parser would mangle,
// the text is round-tripped through a parse and re-serialize cycle
// that applies the configured node styles, and a series of text
// passes restores the protected constructs and enforces comment
// spacing, top-level list layout, and blank-line budgets.
//
// Fix is the only entry point most callers need:
//
//	out, err := yamlfix.Fix(src, config.Default())
//
// The pipeline is deterministic and idempotent: fixing already-fixed
// text returns it unchanged.
package yamlfix
