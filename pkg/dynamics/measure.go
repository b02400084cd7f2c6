package dynamics

import (
	"fmt"

	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

// Measure selects the length functional used by the metric operations.
type Measure int

const (
	// MeasureIntAxis counts intersections with the horizontal axis (the
	// default).
	MeasureIntAxis Measure = iota
	// MeasureMinLength is the minimal taut length of the loop.
	MeasureMinLength
)

// String returns the configuration name of the measure.
func (m Measure) String() string {
	switch m {
	case MeasureIntAxis:
		return "intaxis"
	case MeasureMinLength:
		return "minlength"
	}
	return fmt.Sprintf("Measure(%d)", int(m))
}

// ParseMeasure converts a configuration string into a Measure.
// Recognized values are "intaxis" and "minlength".
func ParseMeasure(s string) (Measure, error) {
	switch s {
	case "intaxis", "":
		return MeasureIntAxis, nil
	case "minlength":
		return MeasureMinLength, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMeasure, s)
}

func measureLoop(l *loop.Loop, m Measure) (numeric.Value, error) {
	switch m {
	case MeasureIntAxis:
		return l.IntAxis()
	case MeasureMinLength:
		return l.MinLength()
	}
	return numeric.Value{}, fmt.Errorf("%w: %q", ErrBadMeasure, m)
}
