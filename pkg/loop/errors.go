package loop

import "errors"

var (
	// ErrOddLength is returned when a flat coordinate sequence does not
	// split into equal-length a and b halves.
	ErrOddLength = errors.New("loop: coordinate sequence must have even length")

	// ErrLengthMismatch is returned when explicit a and b sequences differ
	// in length.
	ErrLengthMismatch = errors.New("loop: a and b must have equal length")

	// ErrNoCoordinates is returned when a loop would have no coordinate
	// pairs at all; the smallest multicurve lives on two strands.
	ErrNoCoordinates = errors.New("loop: at least one coordinate pair required")

	// ErrGeneratorRange is returned by Apply when a word contains a
	// generator whose magnitude reaches the loop's strand count.
	ErrGeneratorRange = errors.New("loop: generator magnitude must be below the loop strand count")

	// ErrBadBasis is returned for unrecognized canonical basis selectors.
	ErrBadBasis = errors.New("loop: unknown canonical basis")

	// ErrMixedBatch is returned when batched loops disagree on strand count
	// or numeric representation.
	ErrMixedBatch = errors.New("loop: batched loops must share strand count and backend")
)
