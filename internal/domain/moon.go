package domain

import "math"

// kmPerAU converts kilometers to astronomical units.
const kmPerAU = 149597870.7

// lunarTerm is one periodic term of the truncated ELP-derived lunar theory.
// The argument is d*D + m*M + mp*Mp + f*F in degrees.
type lunarTerm struct {
	d, m, mp, f int
	coeff       float64
}

// Principal longitude terms, coefficients in 1e-6 degrees
// (Meeus chapter 47, table 47.A, truncated).
var lunarLonTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
}

// Distance terms, coefficients in 1e-3 km (cosine series).
var lunarDistTerms = []lunarTerm{
	{0, 0, 1, 0, -20905355},
	{2, 0, -1, 0, -3699111},
	{2, 0, 0, 0, -2955968},
	{0, 0, 2, 0, -569925},
	{0, 1, 0, 0, 48888},
	{0, 0, 0, 2, -3149},
	{2, 0, -2, 0, 246158},
	{2, -1, -1, 0, -152138},
	{2, 0, 1, 0, -170733},
	{2, -1, 0, 0, -204586},
	{0, 1, -1, 0, -129620},
	{1, 0, 0, 0, 108743},
	{0, 1, 1, 0, 104755},
	{2, 0, 0, -2, 10321},
}

// Latitude terms, coefficients in 1e-6 degrees (sine series).
var lunarLatTerms = []lunarTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
}

// lunarFundamentals returns the fundamental arguments of the lunar theory in
// degrees: mean longitude L', mean elongation D, solar anomaly M, lunar
// anomaly M' and argument of latitude F.
func lunarFundamentals(t float64) (lp, d, m, mp, f float64) {
	lp = 218.3164477 + 481267.88123421*t - 0.0015786*t*t +
		t*t*t/538841.0 - t*t*t*t/65194000.0
	d = 297.8501921 + 445267.1114034*t - 0.0018819*t*t +
		t*t*t/545868.0 - t*t*t*t/113065000.0
	m = 357.5291092 + 35999.0502909*t - 0.0001536*t*t + t*t*t/24490000.0
	mp = 134.9633964 + 477198.8675055*t + 0.0087414*t*t +
		t*t*t/69699.0 - t*t*t*t/14712000.0
	f = 93.2720950 + 483202.0175233*t - 0.0036539*t*t -
		t*t*t/3526000.0 + t*t*t*t/863310000.0
	return
}

// lunarPosition returns the apparent geocentric ecliptic longitude and
// latitude (degrees) and distance (AU) of the Moon.
//
// Truncated series after Meeus chapter 47; accurate to a few hundredths of a
// degree in longitude, which is well inside a chart's arcminute display
// resolution.
func lunarPosition(jd float64) (lonDeg, latDeg, distAU float64) {
	t := JulianCenturies(jd)
	lp, d, m, mp, f := lunarFundamentals(t)

	// Eccentricity damping for terms involving the solar anomaly.
	e := 1.0 - 0.002516*t - 0.0000074*t*t

	arg := func(term lunarTerm) float64 {
		return Deg2Rad(float64(term.d)*d + float64(term.m)*m +
			float64(term.mp)*mp + float64(term.f)*f)
	}
	damp := func(term lunarTerm) float64 {
		switch term.m {
		case 1, -1:
			return e
		case 2, -2:
			return e * e
		}
		return 1.0
	}

	var sumL, sumB, sumR float64
	for _, term := range lunarLonTerms {
		sumL += term.coeff * damp(term) * math.Sin(arg(term))
	}
	for _, term := range lunarLatTerms {
		sumB += term.coeff * damp(term) * math.Sin(arg(term))
	}
	for _, term := range lunarDistTerms {
		sumR += term.coeff * damp(term) * math.Cos(arg(term))
	}

	// Additive terms for Venus (A1), Jupiter (A2) and the flattening of the
	// Earth, plus the largest latitude corrections.
	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	sumL += 3958*math.Sin(Deg2Rad(a1)) +
		1962*math.Sin(Deg2Rad(lp-f)) +
		318*math.Sin(Deg2Rad(a2))
	sumB += -2235 * math.Sin(Deg2Rad(lp))

	lon := lp + sumL/1e6
	lat := sumB / 1e6
	distKm := 385000.56 + sumR/1000.0

	// Nutation in longitude via the lunar node.
	omega := 125.04452 - 1934.136261*t
	lon += -0.00478 * math.Sin(Deg2Rad(omega))

	return Norm360(lon), lat, distKm / kmPerAU
}

// lunarEclCartesian returns the geocentric ecliptic cartesian coordinates of
// the Moon in AU. Used to derive the osculating (true) lunar node.
func lunarEclCartesian(jd float64) (x, y, z float64) {
	lon, lat, r := lunarPosition(jd)
	lonR := Deg2Rad(lon)
	latR := Deg2Rad(lat)
	x = r * math.Cos(latR) * math.Cos(lonR)
	y = r * math.Cos(latR) * math.Sin(lonR)
	z = r * math.Sin(latR)
	return
}
