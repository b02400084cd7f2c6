package cli

import (
	"strings"

	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/pipeline"
)

// parseWordArg converts a word argument into a braid word, surfacing the
// validation errors from the pipeline parser.
func parseWordArg(raw string, strands int) (braid.Word, error) {
	return pipeline.ParseWord(raw, strands)
}

// parseChronoArg builds a time-stamped braid from a word argument and an
// optional times argument; an empty times string takes the 1, 2, ...
// defaults.
func parseChronoArg(rawWord, rawTimes string, strands int) (braid.Chrono, error) {
	w, err := parseWordArg(rawWord, strands)
	if err != nil {
		return braid.Chrono{}, err
	}
	var times []float64
	if rawTimes != "" {
		if times, err = pipeline.ParseTimes(rawTimes); err != nil {
			return braid.Chrono{}, err
		}
	}
	return braid.NewChrono(w, times)
}

// wordLen counts the generators in a raw word string.
func wordLen(raw string) int {
	return len(strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}))
}
