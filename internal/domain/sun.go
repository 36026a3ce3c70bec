package domain

import "math"

// solarPosition returns the apparent geocentric ecliptic longitude (degrees),
// latitude (degrees, effectively zero) and distance (AU) of the Sun.
//
// Low-accuracy theory after Meeus, "Astronomical Algorithms", chapter 25.
// Good to about 0.01 degrees over several centuries around J2000, which is
// within the tolerance of the chart-level consumers of this service.
func solarPosition(jd float64) (lonDeg, latDeg, distAU float64) {
	t := JulianCenturies(jd)

	// Geometric mean longitude and mean anomaly.
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	mRad := Deg2Rad(m)

	// Eccentricity of Earth's orbit.
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t*t

	// Equation of center.
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	trueLon := l0 + c
	trueAnom := m + c

	// Radius vector in AU.
	distAU = 1.000001018 * (1 - e*e) / (1 + e*math.Cos(Deg2Rad(trueAnom)))

	// Apparent longitude: aberration and nutation via the lunar node.
	omega := 125.04 - 1934.136*t
	lonDeg = Norm360(trueLon - 0.00569 - 0.00478*math.Sin(Deg2Rad(omega)))
	latDeg = 0.0

	return lonDeg, latDeg, distAU
}
