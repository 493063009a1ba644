// Package sampling builds the evaluation domains for the cost curves.
package sampling

import "fabcost/internal/errors"

const (
	// Start anchors every sampled domain; the comparison is meaningless
	// below one unit or one complexity point.
	Start = 1.0

	// MinPoints is the smallest curve resolution accepted.
	MinPoints = 10
)

// Validate rejects domain parameters before any model evaluation. The
// label names the offending parameter in the error message.
func Validate(label string, max float64, points int) error {
	if max <= Start {
		return errors.Newf(errors.TypeInput, "%s must be > %g, got %g", label, Start, max)
	}
	if points < MinPoints {
		return errors.Newf(errors.TypeInput, "points must be >= %d, got %d", MinPoints, points)
	}
	return nil
}

// Domain returns points evenly spaced over [Start, max], endpoints
// included, in ascending order.
func Domain(label string, max float64, points int) ([]float64, error) {
	if err := Validate(label, max, points); err != nil {
		return nil, err
	}

	xs := make([]float64, points)
	step := (max - Start) / float64(points-1)
	for i := range xs {
		xs[i] = Start + float64(i)*step
	}
	// Pin the endpoint so accumulated rounding cannot overshoot max.
	xs[points-1] = max
	return xs, nil
}
