package domain

import (
	"fmt"
	"math"
)

// BodyPosition is the four-value result shape the binding surface marshals:
// apparent ecliptic longitude and latitude in degrees, geocentric distance in
// AU, and longitudinal speed in degrees per day (negative while retrograde).
type BodyPosition struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`
	Speed     float64 `json:"speed"`
}

// meanNodeDistAU is the mean geocentric lunar distance, reported as the
// nominal distance for the node points.
const meanNodeDistAU = 0.002569555

// speedStepDays is the half-step for the central-difference speed estimate.
const speedStepDays = 0.01

// CalcBody computes the tropical geocentric position of a body using the
// built-in analytic theory. Longitudinal speed is obtained by central
// differencing the longitude series.
func CalcBody(jd float64, body Body) (BodyPosition, error) {
	lon, lat, dist, err := calcLonLatDist(jd, body)
	if err != nil {
		return BodyPosition{}, err
	}

	before, _, _, err := calcLonLatDist(jd-speedStepDays, body)
	if err != nil {
		return BodyPosition{}, err
	}
	after, _, _, err := calcLonLatDist(jd+speedStepDays, body)
	if err != nil {
		return BodyPosition{}, err
	}
	speed := DeltaDeg(after, before) / (2 * speedStepDays)

	return BodyPosition{
		Longitude: lon,
		Latitude:  lat,
		Distance:  dist,
		Speed:     speed,
	}, nil
}

func calcLonLatDist(jd float64, body Body) (lonDeg, latDeg, distAU float64, err error) {
	switch body {
	case Sun:
		lonDeg, latDeg, distAU = solarPosition(jd)
		return lonDeg, latDeg, distAU, nil
	case Moon:
		lonDeg, latDeg, distAU = lunarPosition(jd)
		return lonDeg, latDeg, distAU, nil
	case MeanNode:
		return meanNodeLongitude(jd), 0, meanNodeDistAU, nil
	case TrueNode:
		return trueNodeLongitude(jd), 0, meanNodeDistAU, nil
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return planetPosition(jd, body)
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}
}

// meanNodeLongitude returns the mean longitude of the lunar ascending node
// in degrees (Schureman/IAU polynomial in Julian centuries from J2000).
func meanNodeLongitude(jd float64) float64 {
	t := JulianCenturies(jd)
	n := 125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000.0
	return Norm360(n)
}

// trueNodeLongitude returns the osculating longitude of the lunar ascending
// node: the direction in which the Moon's instantaneous orbital plane
// crosses the ecliptic northward. Derived from the angular momentum vector
// of the lunar position series.
func trueNodeLongitude(jd float64) float64 {
	const h = 0.05 // days; velocity step

	x0, y0, z0 := lunarEclCartesian(jd)
	x1, y1, z1 := lunarEclCartesian(jd + h)
	vx, vy, vz := (x1-x0)/h, (y1-y0)/h, (z1-z0)/h

	// Orbital plane normal r x v; ascending node direction is z-hat x h.
	hx := y0*vz - z0*vy
	hy := z0*vx - x0*vz
	_ = x0*vy - y0*vx // hz unused: node lies in the ecliptic plane

	return Norm360(Rad2Deg(math.Atan2(hx, -hy)))
}
