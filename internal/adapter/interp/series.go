// Package interp provides interpolation over regularly sampled data.
package interp

import (
	"fmt"
	"math"
)

// Series represents a 1D sampled function for linear interpolation,
// e.g. ecliptic longitude sampled over Julian days.
type Series struct {
	X []float64 // Sample coordinates (e.g., Julian days), strictly increasing.
	Y []float64 // Sample values.
}

// Validate checks if the series is usable for interpolation.
func (s *Series) Validate() error {
	if len(s.X) < 2 {
		return fmt.Errorf("series must have at least 2 samples")
	}
	if len(s.Y) != len(s.X) {
		return fmt.Errorf("number of values (%d) must match sample coordinates (%d)", len(s.Y), len(s.X))
	}
	for i := 1; i < len(s.X); i++ {
		if s.X[i] <= s.X[i-1] {
			return fmt.Errorf("sample coordinates must be strictly increasing")
		}
	}
	return nil
}

// segment locates the sample interval containing x.
func (s *Series) segment(x float64) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("invalid series: %w", err)
	}

	const epsilon = 1e-9
	if x < s.X[0]-epsilon || x > s.X[len(s.X)-1]+epsilon {
		return 0, fmt.Errorf("coordinate %.6f is outside series range [%.6f, %.6f]",
			x, s.X[0], s.X[len(s.X)-1])
	}

	// Binary search for the containing interval.
	lo, hi := 0, len(s.X)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x >= s.X[mid] {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// At performs linear interpolation at a given coordinate.
func (s *Series) At(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return 0, err
	}

	t := (x - s.X[i]) / (s.X[i+1] - s.X[i])
	t = math.Max(0, math.Min(1, t))
	return s.Y[i] + t*(s.Y[i+1]-s.Y[i]), nil
}

// SlopeAt returns the first derivative of the interpolant at x (the slope of
// the containing segment).
func (s *Series) SlopeAt(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return 0, err
	}
	return (s.Y[i+1] - s.Y[i]) / (s.X[i+1] - s.X[i]), nil
}

// UnwrapDeg makes a circular degree series continuous by removing 360-degree
// jumps between consecutive samples. The sampling interval must be short
// enough that real motion between samples stays under 180 degrees.
func UnwrapDeg(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = values[0]
	offset := 0.0
	for i := 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		if d > 180 {
			offset -= 360
		} else if d < -180 {
			offset += 360
		}
		out[i] = values[i] + offset
	}
	return out
}
