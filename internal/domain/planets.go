package domain

import (
	"fmt"
	"math"
)

// keplerElements holds mean Keplerian orbital elements at J2000.0 and their
// per-Julian-century rates, referred to the mean ecliptic and equinox of
// J2000. Values from the JPL approximate-position tables (Standish),
// valid 1800-2050 with graceful degradation outside.
type keplerElements struct {
	a, aDot         float64 // semi-major axis, AU
	e, eDot         float64 // eccentricity
	i, iDot         float64 // inclination, degrees
	l, lDot         float64 // mean longitude, degrees
	varpi, varpiDot float64 // longitude of perihelion, degrees
	omega, omegaDot float64 // longitude of ascending node, degrees
}

var planetElements = map[Body]keplerElements{
	Mercury: {
		0.38709927, 0.00000037, 0.20563593, 0.00001906,
		7.00497902, -0.00594749, 252.25032350, 149472.67411175,
		77.45779628, 0.16047689, 48.33076593, -0.12534081,
	},
	Venus: {
		0.72333566, 0.00000390, 0.00677672, -0.00004107,
		3.39467605, -0.00078890, 181.97909950, 58517.81538729,
		131.60246718, 0.00268329, 76.67984255, -0.27769418,
	},
	Mars: {
		1.52371034, 0.00001847, 0.09339410, 0.00007882,
		1.84969142, -0.00813131, -4.55343205, 19140.30268499,
		-23.94362959, 0.44441088, 49.55953891, -0.29257343,
	},
	Jupiter: {
		5.20288700, -0.00011607, 0.04838624, -0.00013253,
		1.30439695, -0.00183714, 34.39644051, 3034.74612775,
		14.72847983, 0.21252668, 100.47390909, 0.20469106,
	},
	Saturn: {
		9.53667594, -0.00125060, 0.05386179, -0.00050991,
		2.48599187, 0.00193609, 49.95424423, 1222.49362201,
		92.59887831, -0.41897216, 113.66242448, -0.28867794,
	},
	Uranus: {
		19.18916464, -0.00196176, 0.04725744, -0.00004397,
		0.77263783, -0.00242939, 313.23810451, 428.48202785,
		170.95427630, 0.40805281, 74.01692503, 0.04240589,
	},
	Neptune: {
		30.06992276, 0.00026291, 0.00859048, 0.00005105,
		1.77004347, 0.00035372, -55.12002969, 218.45945325,
		44.96476227, -0.32241464, 131.78422574, -0.00508664,
	},
	Pluto: {
		39.48211675, -0.00031596, 0.24882730, 0.00005170,
		17.14001206, 0.00004818, 238.92903833, 145.20780515,
		224.06891629, -0.04062942, 110.30393684, -0.01183482,
	},
}

// Earth-Moon barycenter, used to derive the geocentric frame.
var earthElements = keplerElements{
	1.00000261, 0.00000562, 0.01671123, -0.00004392,
	-0.00001531, -0.01294668, 100.46457166, 35999.37244981,
	102.93768193, 0.32327364, 0.0, 0.0,
}

// solveKepler iterates Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly. Inputs and output in radians.
func solveKepler(m, e float64) float64 {
	ecc := m
	for n := 0; n < 12; n++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ecc
}

// heliocentric returns ecliptic J2000 cartesian coordinates in AU.
func (el keplerElements) heliocentric(t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	incl := Deg2Rad(el.i + el.iDot*t)
	l := el.l + el.lDot*t
	varpi := el.varpi + el.varpiDot*t
	omega := Deg2Rad(el.omega + el.omegaDot*t)

	// Argument of perihelion and mean anomaly.
	argPeri := Deg2Rad(varpi) - omega
	mAnom := Deg2Rad(Norm360(l - varpi))

	eAnom := solveKepler(mAnom, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(eAnom) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(eAnom)

	cw, sw := math.Cos(argPeri), math.Sin(argPeri)
	co, so := math.Cos(omega), math.Sin(omega)
	ci, si := math.Cos(incl), math.Sin(incl)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return
}

// planetPosition returns the geocentric ecliptic longitude and latitude
// (degrees, mean equinox of date) and distance (AU) of a major planet.
func planetPosition(jd float64, body Body) (lonDeg, latDeg, distAU float64, err error) {
	el, ok := planetElements[body]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}
	t := JulianCenturies(jd)

	px, py, pz := el.heliocentric(t)
	ex, ey, ez := earthElements.heliocentric(t)

	gx, gy, gz := px-ex, py-ey, pz-ez
	distAU = math.Sqrt(gx*gx + gy*gy + gz*gz)
	lon := Rad2Deg(math.Atan2(gy, gx))
	lat := Rad2Deg(math.Asin(gz / distAU))

	// Elements are referred to J2000; rotate the longitude to the mean
	// equinox of date by the accumulated general precession.
	lonDeg = Norm360(lon + precessionDeg(t))
	latDeg = lat
	return lonDeg, latDeg, distAU, nil
}

// precessionDeg is the accumulated general precession in ecliptic longitude
// since J2000.0, in degrees, for Julian centuries t from J2000.
func precessionDeg(t float64) float64 {
	return (5028.796195*t + 1.1054348*t*t) / 3600.0
}
