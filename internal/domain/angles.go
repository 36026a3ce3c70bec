package domain

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Norm360 maps an arbitrary angle in degrees into the [0, 360) range.
//
// Ecliptic longitudes, sidereal times and house cusps are all reported on a
// 0-360 degree circle, so intermediate results from polynomial series (which
// grow to thousands of degrees) must be wrapped before use.
func Norm360(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// DeltaDeg returns the signed shortest angular difference a-b in degrees,
// in the range (-180, 180].
func DeltaDeg(a, b float64) float64 {
	d := math.Mod(a-b, 360.0)
	if d <= -180 {
		d += 360.0
	}
	if d > 180 {
		d -= 360.0
	}
	return d
}

// arcDeg returns the forward arc from a to b in degrees, in [0, 360).
func arcDeg(a, b float64) float64 {
	return Norm360(b - a)
}

// inArc reports whether x lies on the forward arc from a to b.
func inArc(x, a, b float64) bool {
	return arcDeg(a, x) < arcDeg(a, b)
}
