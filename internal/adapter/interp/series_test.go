package interp

import (
	"math"
	"testing"
)

// TestSeries_At tests linear interpolation at sample points and midpoints.
func TestSeries_At(t *testing.T) {
	s := &Series{
		X: []float64{0, 1, 2, 4},
		Y: []float64{10, 20, 20, 40},
	}

	tests := []struct {
		x        float64
		expected float64
	}{
		{0, 10},
		{0.5, 15},
		{1, 20},
		{1.5, 20},
		{3, 30},
		{4, 40},
	}
	for _, tt := range tests {
		got, err := s.At(tt.x)
		if err != nil {
			t.Fatalf("At(%.1f) error: %v", tt.x, err)
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("At(%.1f): expected %.1f, got %.10f", tt.x, tt.expected, got)
		}
	}
}

// TestSeries_AtOutOfRange tests range errors.
func TestSeries_AtOutOfRange(t *testing.T) {
	s := &Series{X: []float64{0, 1}, Y: []float64{0, 1}}
	if _, err := s.At(-0.5); err == nil {
		t.Error("expected error below range, got nil")
	}
	if _, err := s.At(1.5); err == nil {
		t.Error("expected error above range, got nil")
	}
}

// TestSeries_Validate tests structural validation.
func TestSeries_Validate(t *testing.T) {
	bad := []*Series{
		{X: []float64{0}, Y: []float64{1}},
		{X: []float64{0, 1}, Y: []float64{1}},
		{X: []float64{1, 1}, Y: []float64{1, 2}},
		{X: []float64{2, 1}, Y: []float64{1, 2}},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
}

// TestSeries_SlopeAt tests segment derivatives.
func TestSeries_SlopeAt(t *testing.T) {
	s := &Series{X: []float64{0, 2, 3}, Y: []float64{0, 4, 3}}

	got, err := s.SlopeAt(1)
	if err != nil {
		t.Fatalf("SlopeAt error: %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("SlopeAt(1): expected 2, got %.10f", got)
	}

	got, err = s.SlopeAt(2.5)
	if err != nil {
		t.Fatalf("SlopeAt error: %v", err)
	}
	if math.Abs(got-(-1)) > 1e-9 {
		t.Errorf("SlopeAt(2.5): expected -1, got %.10f", got)
	}
}

// TestUnwrapDeg tests removal of 360-degree wraps.
func TestUnwrapDeg(t *testing.T) {
	// Forward motion through 360, then retrograde back through it.
	in := []float64{350, 355, 2, 10, 350, 340}
	out := UnwrapDeg(in)
	expected := []float64{350, 355, 362, 370, 350, 340}

	for i := range in {
		if math.Abs(out[i]-expected[i]) > 1e-9 {
			t.Errorf("UnwrapDeg[%d]: expected %.1f, got %.1f", i, expected[i], out[i])
		}
	}
}
