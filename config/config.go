// Package config holds the resolved per-run formatting options.
//
// A Config is read-only for the duration of a run and is passed explicitly
// to every pass and to the style strategy; there is no ambient
// configuration state.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the full set of formatting options. The zero value is not
// usable directly; start from Default and override fields, or use LoadFile.
type Config struct {
	AllowDuplicateKeys bool `yaml:"allow_duplicate_keys"`
	ExplicitStart      bool `yaml:"explicit_start"`

	IndentMapping  int `yaml:"indent_mapping"`
	IndentSequence int `yaml:"indent_sequence"`
	IndentOffset   int `yaml:"indent_offset"`
	LineLength     int `yaml:"line_length"`

	// NoneRepresentation is the text emitted for null values: "" (empty),
	// "~", "null", "NULL", ...
	NoneRepresentation string `yaml:"none_representation"`

	PreserveQuotes          bool   `yaml:"preserve_quotes"`
	QuoteBasicValues        bool   `yaml:"quote_basic_values"`
	QuoteKeysAndBasicValues bool   `yaml:"quote_keys_and_basic_values"`
	QuoteRepresentation     string `yaml:"quote_representation"`

	SequenceStyle SequenceStyle `yaml:"sequence_style"`

	CommentsMinSpacesFromContent int  `yaml:"comments_min_spaces_from_content"`
	CommentsRequireStartingSpace bool `yaml:"comments_require_starting_space"`

	// CommentsWhitelines bounds blank runs immediately before a comment
	// line, Whitelines bounds any other blank run, SectionWhitelines bounds
	// the runs flanking top-level sections.
	CommentsWhitelines int `yaml:"comments_whitelines"`
	Whitelines         int `yaml:"whitelines"`
	SectionWhitelines  int `yaml:"section_whitelines"`

	// Leading-marker prefixes. A document starting with VaultSentinel is
	// returned untouched; a first line starting with ShebangPrefix or
	// JinjaDirectivePrefix is held out of the pipeline and reattached.
	VaultSentinel        string `yaml:"vault_sentinel"`
	ShebangPrefix        string `yaml:"shebang_prefix"`
	JinjaDirectivePrefix string `yaml:"jinja_directive_prefix"`
}

// Default returns a Config with the documented defaults for every field.
func Default() *Config {
	return &Config{
		AllowDuplicateKeys:           false,
		ExplicitStart:                true,
		IndentMapping:                2,
		IndentSequence:               4,
		IndentOffset:                 2,
		LineLength:                   80,
		NoneRepresentation:           "",
		PreserveQuotes:               false,
		QuoteBasicValues:             false,
		QuoteKeysAndBasicValues:      false,
		QuoteRepresentation:          "'",
		SequenceStyle:                FlowStyle,
		CommentsMinSpacesFromContent: 2,
		CommentsRequireStartingSpace: true,
		CommentsWhitelines:           1,
		Whitelines:                   0,
		SectionWhitelines:            0,
		VaultSentinel:                "$ANSIBLE_VAULT;",
		ShebangPrefix:                "#!",
		JinjaDirectivePrefix:         "#jinja2:",
	}
}

// LoadFile reads a YAML configuration file over the defaults. Keys absent
// from the file keep their default value.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if cfg.QuoteRepresentation == "" {
		cfg.QuoteRepresentation = "'"
	}
	return cfg, nil
}
