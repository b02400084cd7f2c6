package pipeline

import (
	"strconv"
	"strings"

	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/errors"
)

// ParseWord parses a braid word from whitespace- or comma-separated signed
// generator indices. strands forces a strand count; 0 means the smallest
// count the word fits on.
func ParseWord(raw string, strands int) (braid.Word, error) {
	if err := errors.ValidateWordString(raw); err != nil {
		return braid.Word{}, err
	}
	fields := splitList(raw)
	gens := make([]int, len(fields))
	for i, f := range fields {
		g, err := strconv.Atoi(f)
		if err != nil {
			return braid.Word{}, errors.Wrap(errors.ErrCodeInvalidWord, err,
				"generator %q", f)
		}
		gens[i] = g
	}
	w, err := braid.FromGens(gens)
	if err != nil {
		return braid.Word{}, errors.Wrap(errors.ErrCodeInvalidWord, err,
			"braid word %q", raw)
	}
	if strands != 0 {
		w, err = w.WithStrands(strands)
		if err != nil {
			return braid.Word{}, errors.Wrap(errors.ErrCodeInvalidWord, err,
				"braid word %q on %d strands", raw, strands)
		}
	}
	return w, nil
}

// ParseTimes parses crossing times from whitespace- or comma-separated
// decimals.
func ParseTimes(raw string) ([]float64, error) {
	if err := errors.ValidateTimesString(raw); err != nil {
		return nil, err
	}
	fields := splitList(raw)
	times := make([]float64, len(fields))
	for i, f := range fields {
		t, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTimes, err, "time %q", f)
		}
		times[i] = t
	}
	return times, nil
}

// ParseCoords parses loop coordinates from whitespace- or comma-separated
// integers.
func ParseCoords(raw string) ([]int64, error) {
	if err := errors.ValidateCoordsString(raw); err != nil {
		return nil, err
	}
	fields := splitList(raw)
	coords := make([]int64, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLoop, err, "coordinate %q", f)
		}
		coords[i] = c
	}
	return coords, nil
}

// splitList splits on commas and whitespace, dropping empties.
func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
