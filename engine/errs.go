package engine

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrSerialize    = errors.New("serialize error")
	ErrDuplicateKey = errors.New("duplicate key")
)

// DuplicateKeyError reports a mapping key that occurs more than once,
// with the line of the second occurrence.
type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %q at line %d", ErrDuplicateKey.Error(), e.Key, e.Line)
	}
	return fmt.Sprintf("%s: %q", ErrDuplicateKey.Error(), e.Key)
}
