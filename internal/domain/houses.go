package domain

import (
	"errors"
	"fmt"
	"math"
)

// HouseSystem selects a house-division algorithm by its single-character
// selector code, the same codes the mobile client already sends.
type HouseSystem byte

// Supported house systems.
const (
	HousePlacidus      HouseSystem = 'P'
	HousePorphyry      HouseSystem = 'O'
	HouseEqual         HouseSystem = 'E'
	HouseEqualAsc      HouseSystem = 'A' // alias for Equal
	HouseWholeSign     HouseSystem = 'W'
	HouseRegiomontanus HouseSystem = 'R'
	HouseCampanus      HouseSystem = 'C'
)

// ErrUnknownHouseSystem is returned for selector codes outside the supported set.
var ErrUnknownHouseSystem = errors.New("unknown house system")

// AscendantAngles carries the five auxiliary angles of a house computation.
type AscendantAngles struct {
	Ascendant           float64 `json:"ascendant"`
	Midheaven           float64 `json:"midheaven"`
	ARMC                float64 `json:"armc"`
	Vertex              float64 `json:"vertex"`
	EquatorialAscendant float64 `json:"equatorialAscendant"`
}

// ParseHouseSystem resolves a selector string ("P", "placidus" is not
// accepted; only the single-character codes) case-insensitively.
func ParseHouseSystem(s string) (HouseSystem, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHouseSystem, s)
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	hs := HouseSystem(c)
	switch hs {
	case HousePlacidus, HousePorphyry, HouseEqual, HouseEqualAsc,
		HouseWholeSign, HouseRegiomontanus, HouseCampanus:
		return hs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHouseSystem, s)
}

// Houses computes the 12 house cusps (house order 1-12) and the auxiliary
// angles for a time, location and house system. Cusps and angles come from
// one shared computation, so the ascendant always equals the first cusp of a
// quadrant system computed with the same arguments.
//
// Placidus is undefined for ecliptic degrees that never rise at circumpolar
// latitudes; in that case Porphyry cusps are substituted, matching the
// behavior of the original calculation library.
func Houses(jd, geoLat, geoLon float64, sys HouseSystem) ([12]float64, AscendantAngles, error) {
	var cusps [12]float64

	eps := MeanObliquityDeg(jd)
	armc := ARMCDeg(jd, geoLon)

	mc := midheavenFromARMC(armc, eps)
	asc := ascendantFromARMC(armc, geoLat, eps)
	// The ascendant must lie in the half-circle following the midheaven.
	if d := DeltaDeg(asc, mc); d <= 0 {
		asc = Norm360(asc + 180)
	}

	equAsc := ascendantFromARMC(armc, 0, eps)
	if d := DeltaDeg(equAsc, mc); d <= 0 {
		equAsc = Norm360(equAsc + 180)
	}
	vertex := ascendantFromARMC(Norm360(armc+180), 90-geoLat, eps)

	angles := AscendantAngles{
		Ascendant:           asc,
		Midheaven:           mc,
		ARMC:                armc,
		Vertex:              vertex,
		EquatorialAscendant: equAsc,
	}

	switch sys {
	case HouseEqual, HouseEqualAsc:
		for i := 0; i < 12; i++ {
			cusps[i] = Norm360(asc + float64(i)*30)
		}
	case HouseWholeSign:
		start := 30 * math.Floor(asc/30)
		for i := 0; i < 12; i++ {
			cusps[i] = Norm360(start + float64(i)*30)
		}
	case HousePorphyry:
		cusps = porphyryCusps(asc, mc)
	case HousePlacidus:
		cusps = placidusCusps(armc, geoLat, eps, asc, mc)
	case HouseRegiomontanus:
		cusps = regiomontanusCusps(armc, geoLat, eps, asc, mc)
	case HouseCampanus:
		cusps = campanusCusps(armc, geoLat, eps, asc, mc)
	default:
		return cusps, AscendantAngles{}, fmt.Errorf("%w: %q", ErrUnknownHouseSystem, string(rune(sys)))
	}

	return cusps, angles, nil
}

// midheavenFromARMC returns the ecliptic longitude of the meridian.
func midheavenFromARMC(armc, eps float64) float64 {
	a := Deg2Rad(armc)
	e := Deg2Rad(eps)
	return Norm360(Rad2Deg(math.Atan2(math.Sin(a), math.Cos(a)*math.Cos(e))))
}

// ascendantFromARMC returns the ecliptic longitude rising on the eastern
// horizon for the given meridian right ascension and geographic latitude.
func ascendantFromARMC(armc, lat, eps float64) float64 {
	a := Deg2Rad(armc)
	e := Deg2Rad(eps)
	f := Deg2Rad(lat)
	lon := math.Atan2(math.Cos(a), -(math.Sin(a)*math.Cos(e) + math.Tan(f)*math.Sin(e)))
	return Norm360(Rad2Deg(lon))
}

// eclFromRA returns the ecliptic longitude of the ecliptic point whose right
// ascension is ra, preserving the quadrant.
func eclFromRA(ra, eps float64) float64 {
	r := Deg2Rad(ra)
	return Norm360(Rad2Deg(math.Atan2(math.Sin(r), math.Cos(r)*math.Cos(Deg2Rad(eps)))))
}

// eclDeclFromRA returns the declination of the ecliptic point at right
// ascension ra (tan(dec) = tan(eps) * sin(ra)).
func eclDeclFromRA(ra, eps float64) float64 {
	return Rad2Deg(math.Atan(math.Tan(Deg2Rad(eps)) * math.Sin(Deg2Rad(ra))))
}

// fillOpposites completes cusps 4-9 from their opposite houses.
func fillOpposites(c *[12]float64) {
	for i := 3; i <= 8; i++ {
		c[i] = Norm360(c[(i+6)%12] + 180)
	}
}

func porphyryCusps(asc, mc float64) [12]float64 {
	var c [12]float64
	c[0] = asc
	c[9] = mc

	// Trisect the two eastern quadrant arcs; the west follows by opposition.
	upper := arcDeg(mc, asc) // MC -> Asc
	c[10] = Norm360(mc + upper/3)
	c[11] = Norm360(mc + 2*upper/3)

	ic := Norm360(mc + 180)
	lower := arcDeg(asc, ic) // Asc -> IC
	c[1] = Norm360(asc + lower/3)
	c[2] = Norm360(asc + 2*lower/3)

	fillOpposites(&c)
	return c
}

// placidusCusps computes the intermediate cusps by the semi-arc method. A
// cusp lies where a body has completed the corresponding fraction of its own
// diurnal (or nocturnal) semi-arc; the fixed point is found by iterating in
// right ascension.
func placidusCusps(armc, lat, eps, asc, mc float64) [12]float64 {
	type target struct {
		idx      int     // cusp index (0-based)
		offset   float64 // initial RA offset from ARMC
		fraction float64 // fraction of the semi-arc
		diurnal  bool    // above-horizon cusp
	}
	targets := []target{
		{10, 30, 1.0 / 3.0, true},   // house 11
		{11, 60, 2.0 / 3.0, true},   // house 12
		{1, 120, 2.0 / 3.0, false},  // house 2
		{2, 150, 1.0 / 3.0, false},  // house 3
	}

	var c [12]float64
	c[0] = asc
	c[9] = mc

	tanLat := math.Tan(Deg2Rad(lat))
	for _, tg := range targets {
		ra := armc + tg.offset
		ok := true
		for n := 0; n < 30; n++ {
			dec := eclDeclFromRA(ra, eps)
			x := -tanLat * math.Tan(Deg2Rad(dec))
			if x < -1 || x > 1 {
				ok = false // circumpolar: this degree never rises/sets
				break
			}
			sda := Rad2Deg(math.Acos(x)) // semi-diurnal arc
			var next float64
			if tg.diurnal {
				next = armc + tg.fraction*sda
			} else {
				next = armc + 180 - tg.fraction*(180-sda)
			}
			if math.Abs(DeltaDeg(next, ra)) < 1e-9 {
				ra = next
				break
			}
			ra = next
		}
		if !ok {
			return porphyryCusps(asc, mc)
		}
		c[tg.idx] = eclFromRA(ra, eps)
	}

	fillOpposites(&c)
	return c
}

func regiomontanusCusps(armc, lat, eps, asc, mc float64) [12]float64 {
	var c [12]float64
	c[0] = asc
	c[9] = mc

	e := Deg2Rad(eps)
	tanLat := math.Tan(Deg2Rad(lat))

	// House circles through the north and south points of the horizon,
	// crossing the equator at 30-degree intervals from the meridian.
	cusp := func(theta float64) float64 {
		r := Deg2Rad(armc + theta)
		t := Deg2Rad(theta)
		lon := math.Atan2(math.Sin(r), math.Cos(r)*math.Cos(e)-tanLat*math.Sin(t)*math.Sin(e))
		return Norm360(Rad2Deg(lon))
	}

	c[10] = cusp(30)  // house 11
	c[11] = cusp(60)  // house 12
	c[1] = cusp(120)  // house 2
	c[2] = cusp(150)  // house 3
	adjustQuadrants(&c, asc, mc)

	fillOpposites(&c)
	return c
}

func campanusCusps(armc, lat, eps, asc, mc float64) [12]float64 {
	var c [12]float64
	c[0] = asc
	c[9] = mc

	a := Deg2Rad(armc)
	e := Deg2Rad(eps)
	f := Deg2Rad(lat)

	// House circles through the north and south points of the horizon,
	// dividing the prime vertical into 30-degree arcs. theta is measured
	// from the east point toward the zenith.
	cusp := func(theta float64) float64 {
		t := Deg2Rad(theta)
		num := math.Cos(f)*math.Cos(t)*math.Cos(a) + math.Sin(t)*math.Sin(a)
		den := math.Cos(e)*(math.Sin(t)*math.Cos(a)-math.Cos(f)*math.Cos(t)*math.Sin(a)) -
			math.Sin(f)*math.Cos(t)*math.Sin(e)
		return Norm360(Rad2Deg(math.Atan2(num, den)))
	}

	c[10] = cusp(60)  // house 11
	c[11] = cusp(30)  // house 12
	c[1] = cusp(-30)  // house 2
	c[2] = cusp(-60)  // house 3
	adjustQuadrants(&c, asc, mc)

	fillOpposites(&c)
	return c
}

// adjustQuadrants resolves the 180-degree ambiguity of the closed-form cusp
// formulas: houses 11 and 12 must lie on the arc from MC to Asc, houses 2
// and 3 on the arc from Asc to IC.
func adjustQuadrants(c *[12]float64, asc, mc float64) {
	ic := Norm360(mc + 180)
	for _, i := range []int{10, 11} {
		if !inArc(c[i], mc, asc) {
			c[i] = Norm360(c[i] + 180)
		}
	}
	for _, i := range []int{1, 2} {
		if !inArc(c[i], asc, ic) {
			c[i] = Norm360(c[i] + 180)
		}
	}
}
