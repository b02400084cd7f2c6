package errors

import (
	"regexp"
	"unicode"
)

// maxWordInput bounds raw word strings before parsing; a million-crossing
// braid on the command line is a mistake, not a workload.
const maxWordInput = 1 << 20

// wordStringRegex matches a raw generator list: signed integers separated
// by spaces and/or commas.
var wordStringRegex = regexp.MustCompile(`^\s*-?\d+(\s*[,\s]\s*-?\d+)*\s*$`)

// ValidateWordString validates a raw braid-word string before parsing.
// It rejects empty input, control characters and anything that is not a
// separated list of signed integers. Range checks on the parsed generators
// are done separately by the word constructor.
func ValidateWordString(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidWord, "braid word cannot be empty")
	}

	if len(raw) > maxWordInput {
		return New(ErrCodeInvalidWord, "braid word too long (max %d bytes)", maxWordInput)
	}

	for _, r := range raw {
		if unicode.IsControl(r) && r != '\t' {
			return New(ErrCodeInvalidWord, "braid word contains control characters")
		}
	}

	if !wordStringRegex.MatchString(raw) {
		return New(ErrCodeInvalidWord, "braid word must be signed integers separated by spaces or commas: %q", raw)
	}

	return nil
}

// timesStringRegex matches a separated list of decimal numbers, with
// optional sign, fraction and exponent.
var timesStringRegex = regexp.MustCompile(`^\s*[-+]?\d+(\.\d*)?([eE][-+]?\d+)?(\s*[,\s]\s*[-+]?\d+(\.\d*)?([eE][-+]?\d+)?)*\s*$`)

// ValidateTimesString validates a raw crossing-time string before parsing.
// Monotonicity is checked by the time-stamped braid constructor, not here.
func ValidateTimesString(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidTimes, "crossing times cannot be empty")
	}

	if len(raw) > maxWordInput {
		return New(ErrCodeInvalidTimes, "crossing times too long (max %d bytes)", maxWordInput)
	}

	if !timesStringRegex.MatchString(raw) {
		return New(ErrCodeInvalidTimes, "crossing times must be numbers separated by spaces or commas: %q", raw)
	}

	return nil
}

// maxStrands bounds explicit strand counts. Coordinate vectors are O(n), so
// the bound protects against accidental memory blowups, not legitimate use.
const maxStrands = 1 << 20

// ValidateStrandCount validates an explicit strand count from user input.
func ValidateStrandCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidWord, "strand count must be at least 1, got %d", n)
	}
	if n > maxStrands {
		return New(ErrCodeInvalidWord, "strand count too large (max %d)", maxStrands)
	}
	return nil
}

// ValidateCoordsString validates a raw loop-coordinate string before
// parsing; the shape checks (even, non-empty length) belong to the loop
// constructor.
func ValidateCoordsString(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidLoop, "loop coordinates cannot be empty")
	}

	if len(raw) > maxWordInput {
		return New(ErrCodeInvalidLoop, "loop coordinates too long (max %d bytes)", maxWordInput)
	}

	if !wordStringRegex.MatchString(raw) {
		return New(ErrCodeInvalidLoop, "loop coordinates must be signed integers separated by spaces or commas: %q", raw)
	}

	return nil
}
