package config

import (
	"errors"
	"fmt"
)

// SequenceStyle selects how sequences under a mapping key are laid out.
type SequenceStyle int

const (
	// FlowStyle renders simple sequences inline: key: [a, b].
	FlowStyle SequenceStyle = iota
	// BlockStyle renders sequences as dash-itemized lines.
	BlockStyle
	// KeepStyle leaves sequences as authored.
	KeepStyle
)

var ErrBadSequenceStyle = errors.New("bad sequence style")

func ParseSequenceStyle(v string) (SequenceStyle, error) {
	s, ok := map[string]SequenceStyle{
		"flow":        FlowStyle,
		"flow_style":  FlowStyle,
		"block":       BlockStyle,
		"block_style": BlockStyle,
		"keep":        KeepStyle,
		"keep_style":  KeepStyle,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSequenceStyle, v)
}

func (s SequenceStyle) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s SequenceStyle) MarshalText() ([]byte, error) {
	switch s {
	case FlowStyle:
		return []byte("flow_style"), nil
	case BlockStyle:
		return []byte("block_style"), nil
	case KeepStyle:
		return []byte("keep_style"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a sequence style>", s)
	}
}

func (s *SequenceStyle) UnmarshalText(d []byte) error {
	ps, err := ParseSequenceStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}
