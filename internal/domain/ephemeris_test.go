package domain

import (
	"math"
	"testing"
)

// TestCalcBody_Sun checks the solar position against the textbook example
// for 1992-10-13 0h (apparent longitude 199.909 degrees, distance 0.9977 AU).
func TestCalcBody_Sun(t *testing.T) {
	jd := JulianDayUT(1992, 10, 13.0)

	pos, err := CalcBody(jd, Sun)
	if err != nil {
		t.Fatalf("CalcBody(Sun) error: %v", err)
	}

	if math.Abs(pos.Longitude-199.909) > 0.02 {
		t.Errorf("Sun longitude: expected ~199.909, got %.6f", pos.Longitude)
	}
	if math.Abs(pos.Latitude) > 0.01 {
		t.Errorf("Sun latitude: expected ~0, got %.6f", pos.Latitude)
	}
	if math.Abs(pos.Distance-0.99766) > 0.001 {
		t.Errorf("Sun distance: expected ~0.99766, got %.6f", pos.Distance)
	}
	// The Sun advances close to one degree per day.
	if pos.Speed < 0.95 || pos.Speed > 1.03 {
		t.Errorf("Sun speed: expected ~0.99 deg/day, got %.6f", pos.Speed)
	}
}

// TestCalcBody_Moon checks the lunar position against the textbook example
// for 1992-04-12 0h (longitude ~133.167, latitude ~-3.229, distance ~368410 km).
func TestCalcBody_Moon(t *testing.T) {
	jd := JulianDayUT(1992, 4, 12.0)

	pos, err := CalcBody(jd, Moon)
	if err != nil {
		t.Fatalf("CalcBody(Moon) error: %v", err)
	}

	if math.Abs(pos.Longitude-133.167) > 0.1 {
		t.Errorf("Moon longitude: expected ~133.167, got %.6f", pos.Longitude)
	}
	if math.Abs(pos.Latitude-(-3.229)) > 0.05 {
		t.Errorf("Moon latitude: expected ~-3.229, got %.6f", pos.Latitude)
	}
	expectedAU := 368409.7 / kmPerAU
	if math.Abs(pos.Distance-expectedAU) > 5e-5 {
		t.Errorf("Moon distance: expected ~%.7f AU, got %.7f", expectedAU, pos.Distance)
	}
	if pos.Speed < 11.5 || pos.Speed > 15.5 {
		t.Errorf("Moon speed: expected 11.5..15.5 deg/day, got %.6f", pos.Speed)
	}
}

// TestCalcBody_InnerPlanetElongation checks that Mercury and Venus never
// stray beyond their maximum possible elongation from the Sun.
func TestCalcBody_InnerPlanetElongation(t *testing.T) {
	maxElong := map[Body]float64{
		Mercury: 29.0,
		Venus:   48.5,
	}

	for _, jd := range []float64{2448908.5, 2451545.0, 2455197.5, 2460310.5} {
		sun, err := CalcBody(jd, Sun)
		if err != nil {
			t.Fatalf("CalcBody(Sun) error: %v", err)
		}
		for body, limit := range maxElong {
			pos, err := CalcBody(jd, body)
			if err != nil {
				t.Fatalf("CalcBody(%s) error: %v", body, err)
			}
			elong := math.Abs(DeltaDeg(pos.Longitude, sun.Longitude))
			if elong > limit {
				t.Errorf("%s at jd %.1f: elongation %.3f exceeds %.1f", body, jd, elong, limit)
			}
		}
	}
}

// TestCalcBody_OuterPlanetDistances checks geocentric distance envelopes.
func TestCalcBody_OuterPlanetDistances(t *testing.T) {
	ranges := map[Body][2]float64{
		Mars:    {0.35, 2.8},
		Jupiter: {3.9, 6.5},
		Saturn:  {7.9, 11.1},
		Uranus:  {17.2, 21.1},
		Neptune: {28.9, 31.3},
	}

	for _, jd := range []float64{2448908.5, 2451545.0, 2460310.5} {
		for body, r := range ranges {
			pos, err := CalcBody(jd, body)
			if err != nil {
				t.Fatalf("CalcBody(%s) error: %v", body, err)
			}
			if pos.Distance < r[0] || pos.Distance > r[1] {
				t.Errorf("%s at jd %.1f: distance %.3f outside [%.1f, %.1f]",
					body, jd, pos.Distance, r[0], r[1])
			}
			if math.IsNaN(pos.Longitude) || math.IsInf(pos.Longitude, 0) {
				t.Errorf("%s at jd %.1f: non-finite longitude", body, jd)
			}
		}
	}
}

// TestCalcBody_MeanNode checks the node longitude at J2000 and its
// retrograde motion.
func TestCalcBody_MeanNode(t *testing.T) {
	pos, err := CalcBody(J2000, MeanNode)
	if err != nil {
		t.Fatalf("CalcBody(MeanNode) error: %v", err)
	}
	if math.Abs(pos.Longitude-125.0445) > 0.01 {
		t.Errorf("mean node at J2000: expected ~125.0445, got %.6f", pos.Longitude)
	}
	// The node regresses ~0.053 deg/day.
	if pos.Speed > -0.04 || pos.Speed < -0.07 {
		t.Errorf("mean node speed: expected ~-0.053 deg/day, got %.6f", pos.Speed)
	}
}

// TestCalcBody_TrueNode checks the osculating node stays near the mean node.
func TestCalcBody_TrueNode(t *testing.T) {
	for _, jd := range []float64{2448908.5, J2000, 2460310.5} {
		mean, err := CalcBody(jd, MeanNode)
		if err != nil {
			t.Fatalf("CalcBody(MeanNode) error: %v", err)
		}
		tru, err := CalcBody(jd, TrueNode)
		if err != nil {
			t.Fatalf("CalcBody(TrueNode) error: %v", err)
		}
		if d := math.Abs(DeltaDeg(tru.Longitude, mean.Longitude)); d > 2.5 {
			t.Errorf("true node at jd %.1f: %.3f deg from mean node", jd, d)
		}
	}
}

// TestCalcBody_UnknownBody checks the typed failure for unsupported ids.
func TestCalcBody_UnknownBody(t *testing.T) {
	if _, err := CalcBody(J2000, Body(42)); err == nil {
		t.Error("expected error for unknown body, got nil")
	}
}
