package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is the sentinel wrapped by every *OverflowError. Callers
	// should match overflow conditions with errors.Is(err, ErrOverflow).
	ErrOverflow = errors.New("numeric: arithmetic overflow")

	// ErrUnknownKind is returned by New and ParseKind for unrecognized
	// representation selectors.
	ErrUnknownKind = errors.New("numeric: unknown backend kind")
)

// OverflowError reports a fixed-width operation that left the representable
// range. It carries the offending operands; the operation's result is the
// wrapped best-effort value, which callers may keep for comparison-only use.
type OverflowError struct {
	Op   string // "add", "sub", "neg" or "abs"
	Kind Kind
	X, Y Value // Y is the zero Value for unary operations
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	if e.Op == "neg" || e.Op == "abs" {
		return fmt.Sprintf("numeric: %s overflow on %s(%s)", e.Kind, e.Op, e.X)
	}
	return fmt.Sprintf("numeric: %s overflow on %s(%s, %s)", e.Kind, e.Op, e.X, e.Y)
}

// Unwrap returns ErrOverflow for errors.Is matching.
func (e *OverflowError) Unwrap() error { return ErrOverflow }
