// Package engine round-trips YAML documents through a parse and
// re-serialize cycle, applying node styling between the two halves.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/lyz-code/yamlfix/config"
	"github.com/lyz-code/yamlfix/debug"
)

// Styler rewrites node styles and values in a parsed document tree
// before it is serialized back out.
type Styler interface {
	Apply(doc *yaml.Node)
}

// RoundTrip parses src into document trees, applies styler to each,
// and serializes them back to text. Multi-document inputs stay
// multi-document. The output has no trailing newline padding beyond a
// single explicit start marker decision, which is applied when
// cfg.ExplicitStart is set and the text does not already begin with one.
func RoundTrip(src string, cfg *config.Config, styler Styler) (string, error) {
	docs, err := parseAll(src)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", nil
	}
	if !cfg.AllowDuplicateKeys {
		for _, doc := range docs {
			if err := checkDuplicateKeys(doc); err != nil {
				return "", err
			}
		}
	}
	if styler != nil {
		for _, doc := range docs {
			styler.Apply(doc)
		}
	}
	out, err := serializeAll(docs, cfg)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if cfg.ExplicitStart && out != "" && !strings.HasPrefix(out, "---") {
		out = "---\n" + out
	}
	if debug.Engine() {
		debug.Logf("engine: %d document(s), %d bytes out", len(docs), len(out))
	}
	return out, nil
}

func parseAll(src string) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(strings.NewReader(src))
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		docs = append(docs, &doc)
	}
}

func serializeAll(docs []*yaml.Node, cfg *config.Config) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(cfg.IndentMapping)
	// A zero dash offset, or a sequence indent no deeper than the mapping
	// indent, puts dashes in the same column as their key.
	if cfg.IndentOffset == 0 || cfg.IndentSequence <= cfg.IndentMapping {
		enc.CompactSeqIndent()
	}
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return "", fmt.Errorf("%w: %w", ErrSerialize, err)
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return buf.String(), nil
}

// checkDuplicateKeys walks every mapping in the tree and rejects
// scalar keys that repeat within one mapping. Merge keys ("<<") and
// alias keys are exempt, matching what parsers tolerate in practice.
func checkDuplicateKeys(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkDuplicateKeys(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value != "<<" {
				if seen[k.Value] {
					return &DuplicateKeyError{Key: k.Value, Line: k.Line}
				}
				seen[k.Value] = true
			}
			if err := checkDuplicateKeys(v); err != nil {
				return err
			}
		}
	}
	return nil
}
