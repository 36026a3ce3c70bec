package domain

import "math"

// J2000 is the Julian day of the standard epoch J2000.0 (2000-01-01 12:00 UT).
const J2000 = 2451545.0

// JulianCenturies returns the number of Julian centuries elapsed between
// J2000.0 and the given Julian day.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// JulianDayUT computes the Julian day for a Gregorian calendar date.
// The day may carry a fractional part for the time of day in UT.
func JulianDayUT(year, month int, day float64) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100.0)
	b := 2 - a + math.Floor(a/4.0)
	return math.Floor(365.25*(float64(year)+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		day + b - 1524.5
}

// MeanObliquityDeg returns the mean obliquity of the ecliptic in degrees.
// IAU 1980 series expressed in Julian centuries from J2000.0.
func MeanObliquityDeg(jd float64) float64 {
	t := JulianCenturies(jd)
	return 23.43929111 - 0.0130041667*t - 1.6389e-7*t*t + 5.0361e-7*t*t*t
}

// GMSTDeg returns the Greenwich mean sidereal time at the given Julian day,
// expressed in degrees.
func GMSTDeg(jd float64) float64 {
	t := JulianCenturies(jd)
	theta := 280.46061837 + 360.98564736629*(jd-J2000) +
		0.000387933*t*t - t*t*t/38710000.0
	return Norm360(theta)
}

// ARMCDeg returns the right ascension of the meridian (local sidereal time in
// degrees) for a geographic longitude, east positive.
func ARMCDeg(jd, geoLon float64) float64 {
	return Norm360(GMSTDeg(jd) + geoLon)
}
