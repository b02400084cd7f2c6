package braid

import "errors"

var (
	// ErrStrandCount is returned when a braid is constructed with fewer
	// than one strand, or widened to fewer strands than its word needs.
	ErrStrandCount = errors.New("braid: strand count must admit every generator")

	// ErrGeneratorRange is returned when a generator magnitude is zero or
	// not strictly less than the strand count.
	ErrGeneratorRange = errors.New("braid: generator magnitude out of range")

	// ErrStrandSubset is returned by Sub for an empty, duplicated or
	// out-of-range strand selection.
	ErrStrandSubset = errors.New("braid: invalid strand subset")

	// ErrTimeCount is returned when a crossing-time sequence does not have
	// exactly one entry per generator.
	ErrTimeCount = errors.New("braid: one crossing time required per generator")

	// ErrTimeOrder is returned when a crossing-time sequence is not
	// monotonically non-decreasing.
	ErrTimeOrder = errors.New("braid: crossing times must be non-decreasing")

	// ErrChronology is returned by Chrono.Compose when the left operand
	// ends after the right operand begins.
	ErrChronology = errors.New("braid: composition violates chronological order")

	// ErrTimestamped marks operations that are not defined for time-stamped
	// braids; callers should use the chronology-aware analogs instead.
	ErrTimestamped = errors.New("braid: operation not defined for time-stamped braids")
)
