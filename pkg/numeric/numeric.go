// Package numeric provides overflow-aware scalar arithmetic over
// interchangeable representations.
//
// Loop coordinates grow exponentially under repeated braid action, so every
// arithmetic step on a fixed-width representation must be checked: an
// operation that leaves the representable range returns the wrapped
// best-effort value together with an *OverflowError instead of silently
// wrapping. The arbitrary-precision backend never overflows; the floating
// backend never signals but is approximate and unsuitable for exact equality
// testing.
//
// All coordinate entries of one loop share a single backend. The backend is
// selected by Kind at the points where loops are produced:
//
//	be, err := numeric.New(numeric.Fixed64)
//	if err != nil {
//	    return err
//	}
//	sum, err := be.Add(be.FromInt64(2), be.FromInt64(3))
package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Kind identifies a scalar representation.
type Kind int

const (
	// Fixed64 is a checked 64-bit signed integer representation. It is the
	// zero value and the default.
	Fixed64 Kind = iota
	// Fixed32 is a checked 32-bit signed integer representation.
	Fixed32
	// Big is an arbitrary-precision integer representation; it never overflows.
	Big
	// Float is a float64 approximation; it never signals overflow and must
	// not be used where exact comparison is required.
	Float
)

// DefaultKind is the representation used when none is configured.
const DefaultKind = Fixed64

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case Fixed32:
		return "fixed32"
	case Fixed64:
		return "fixed64"
	case Big:
		return "big"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fits reports whether v is representable under the kind. Only Fixed32
// narrows the int64 range; Float accepts every int64, losing precision
// beyond 53 bits.
func Fits(k Kind, v int64) bool {
	if k == Fixed32 {
		return v >= math.MinInt32 && v <= math.MaxInt32
	}
	return true
}

// ParseKind converts a configuration string into a Kind.
// Recognized values are "fixed32", "fixed64", "big" and "float".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "fixed32":
		return Fixed32, nil
	case "fixed64", "":
		return Fixed64, nil
	case "big":
		return Big, nil
	case "float":
		return Float, nil
	}
	return 0, fmt.Errorf("numeric: %w: %q", ErrUnknownKind, s)
}

// Value is a scalar tagged with its representation. The zero Value is the
// Fixed64 zero; values are otherwise created through a Backend.
type Value struct {
	kind Kind
	i    int64    // Fixed32 / Fixed64 payload
	b    *big.Int // Big payload
	f    float64  // Float payload
}

// Kind returns the representation of the value.
func (v Value) Kind() Kind { return v.kind }

// Float64 returns the value as a float64, losing precision for large
// integers. Big values beyond the float64 range saturate to ±Inf.
func (v Value) Float64() float64 {
	switch v.kind {
	case Big:
		f, _ := new(big.Float).SetInt(v.b).Float64()
		return f
	case Float:
		return v.f
	default:
		return float64(v.i)
	}
}

// Int64 returns the value as an int64 when it is exactly representable.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case Big:
		if v.b.IsInt64() {
			return v.b.Int64(), true
		}
		return 0, false
	case Float:
		i := int64(v.f)
		return i, float64(i) == v.f
	default:
		return v.i, true
	}
}

// String renders the scalar payload.
func (v Value) String() string {
	switch v.kind {
	case Big:
		return v.b.String()
	case Float:
		return fmt.Sprintf("%g", v.f)
	default:
		return fmt.Sprintf("%d", v.i)
	}
}
