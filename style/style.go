// Package style decides the presentation of every node during
// serialization: quoting of scalars, flow or block layout of sequences,
// null rendering and boolean canonicalization. The decisions are a list of
// composable patch functions held by a Styler and applied while walking the
// tree; value content and comment content are never modified, only style
// tags and canonical scalar text.
package style

import (
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"github.com/lyz-code/yamlfix/config"
)

const (
	nullTag = "!!null"
	boolTag = "!!bool"
	strTag  = "!!str"
)

// ScalarPatch adjusts a single scalar node.
type ScalarPatch func(node *yaml.Node)

// EntryPatch adjusts one key/value pair of a mapping.
type EntryPatch func(key, value *yaml.Node)

// Styler is the strategy invoked by the engine on each document tree
// before serialization.
type Styler struct {
	cfg *config.Config

	scalarPatches []ScalarPatch
	entryPatches  []EntryPatch
}

func New(cfg *config.Config) *Styler {
	s := &Styler{cfg: cfg}
	s.scalarPatches = []ScalarPatch{
		s.patchNoneRepresentation,
		s.patchBooleanCanonical,
		s.patchQuoteClearing,
		s.patchForcedQuotes,
	}
	s.entryPatches = []EntryPatch{
		s.patchBasicValueQuotes,
		s.patchSequenceStyle,
	}
	return s
}

// Apply walks a document tree and runs every patch function on the nodes
// it governs. Alias nodes are left alone: restyling an alias would detach
// it from its anchor.
func (s *Styler) Apply(doc *yaml.Node) {
	s.walk(doc)
}

func (s *Styler) walk(n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			s.walk(c)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			s.walk(key)
			s.walk(value)
			for _, patch := range s.entryPatches {
				patch(key, value)
			}
		}
	case yaml.ScalarNode:
		for _, patch := range s.scalarPatches {
			patch(n)
		}
	}
}

// patchNoneRepresentation rewrites null scalars to the configured
// rendering; the default empty representation makes `key: null` serialize
// as `key:`.
func (s *Styler) patchNoneRepresentation(n *yaml.Node) {
	if n.Tag == nullTag {
		n.Value = s.cfg.NoneRepresentation
	}
}

// patchBooleanCanonical lowercases boolean literals the parser resolved
// from a cased or truthy spelling, so True/TRUE/Yes all serialize as true.
func (s *Styler) patchBooleanCanonical(n *yaml.Node) {
	if n.Tag != boolTag || n.Style != 0 {
		return
	}
	switch strings.ToLower(n.Value) {
	case "true", "yes", "on":
		n.Value = "true"
	case "false", "no", "off":
		n.Value = "false"
	}
}

// patchQuoteClearing drops author quoting from plain strings so the engine
// re-quotes only where the content requires it. Disabled by
// PreserveQuotes; block scalars carry a literal or folded style and are
// never touched.
func (s *Styler) patchQuoteClearing(n *yaml.Node) {
	if s.cfg.PreserveQuotes || n.Tag != strTag {
		return
	}
	if n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0 {
		n.Style = 0
	}
}

// patchForcedQuotes quotes every key and basic string scalar when
// QuoteKeysAndBasicValues is set. A scalar that still carries an explicit
// style at this point keeps it: existing style wins over forced quoting.
func (s *Styler) patchForcedQuotes(n *yaml.Node) {
	if !s.cfg.QuoteKeysAndBasicValues {
		return
	}
	s.applyScalarQuote(n)
}

// patchBasicValueQuotes quotes basic string values (and the items of
// simple sequences) when QuoteBasicValues is set. Sequences holding
// non-scalar items or commented items are skipped, they are not "basic".
func (s *Styler) patchBasicValueQuotes(_, value *yaml.Node) {
	if !s.cfg.QuoteBasicValues {
		return
	}
	s.applyScalarQuote(value)
	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
		return
	}
	if seqContainsNonScalars(value) || seqContainsComments(value) {
		return
	}
	for _, item := range value.Content {
		s.applyScalarQuote(item)
	}
}

// patchSequenceStyle sets flow or block layout for sequence values per
// configuration. Three conditions force block style regardless: a
// non-scalar element, a commented element, or a projected flow rendering
// wider than the configured line length. Empty sequences are left as-is.
func (s *Styler) patchSequenceStyle(key, value *yaml.Node) {
	if key.Kind != yaml.ScalarNode || value.Kind != yaml.SequenceNode {
		return
	}
	if s.cfg.SequenceStyle == config.KeepStyle {
		return
	}
	if len(value.Content) == 0 {
		return
	}
	forceBlock := seqContainsNonScalars(value) ||
		seqContainsComments(value) ||
		s.flowWiderThanLineLength(key, value)

	if s.cfg.SequenceStyle == config.FlowStyle && !forceBlock {
		value.Style = yaml.FlowStyle
	} else {
		clearFlow(value)
	}
}

// clearFlow removes flow layout from a node and everything under it, so a
// sequence forced to block style does not keep flow fragments inside.
func clearFlow(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, c := range n.Content {
		clearFlow(c)
	}
}

func (s *Styler) applyScalarQuote(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == strTag && n.Style == 0 {
		n.Style = s.quoteStyle()
	}
}

func (s *Styler) quoteStyle() yaml.Style {
	if s.cfg.QuoteRepresentation == `"` {
		return yaml.DoubleQuotedStyle
	}
	return yaml.SingleQuotedStyle
}

func seqContainsNonScalars(seq *yaml.Node) bool {
	for _, item := range seq.Content {
		if item.Kind != yaml.ScalarNode {
			return true
		}
	}
	return false
}

func seqContainsComments(seq *yaml.Node) bool {
	for _, item := range seq.Content {
		if item.Kind != yaml.ScalarNode {
			continue
		}
		if strings.TrimSpace(item.HeadComment) != "" ||
			strings.TrimSpace(item.LineComment) != "" ||
			strings.TrimSpace(item.FootComment) != "" {
			return true
		}
	}
	return false
}

// flowWiderThanLineLength is a conservative closed-form bound on the
// single-line flow rendering: 2 characters of quoting per token, 2 per
// separator, 2 for the brackets. It deliberately overestimates so block
// style is forced before the engine would fold a flow sequence.
func (s *Styler) flowWiderThanLineLength(key, seq *yaml.Node) bool {
	const (
		quoteLen     = 2
		separatorLen = 2
		bracketLen   = 2
	)
	width := len(key.Value) + quoteLen + separatorLen
	for _, item := range seq.Content {
		if item.Kind == yaml.ScalarNode {
			width += len(item.Value) + quoteLen + separatorLen
		}
	}
	return width+bracketLen > s.cfg.LineLength
}
