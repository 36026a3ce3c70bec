// Package ephe exposes the ephemeris calculation surface as an explicit
// handle: data path, sidereal mode, and the position/house/ayanamsha
// operations the API serves.
package ephe

import (
	"errors"
	"fmt"
	"sync"

	"go.skvk.app/ephemeris-api/internal/adapter/store"
	storecsv "go.skvk.app/ephemeris-api/internal/adapter/store/csv"
	"go.skvk.app/ephemeris-api/internal/adapter/store/tables"
	"go.skvk.app/ephemeris-api/internal/domain"
)

// DefaultEphemerisPath is used when no data path is configured.
const DefaultEphemerisPath = "./data/ephemeris"

// ModelUnchanged leaves the handle's current sidereal mode in effect when
// passed as the model argument of PlanetPosition.
const ModelUnchanged domain.AyanamshaModel = -1

// ErrEmptyPath is returned when an empty ephemeris path is supplied.
var ErrEmptyPath = errors.New("ephemeris path must not be empty")

// Ephemeris is a calculation handle. It carries the data path and the
// selected sidereal mode explicitly instead of process-global state, so two
// handles with different configurations can coexist.
//
// An Ephemeris is safe for concurrent use: the mutable configuration (data
// path and sidereal mode) is guarded by a mutex, and each PlanetPosition
// call resolves its effective model atomically.
type Ephemeris struct {
	mu      sync.RWMutex // Protects path, sidMode and sources.
	path    string
	sidMode domain.AyanamshaModel
	sources []store.PositionSource
}

// New creates a handle rooted at the given data path. An empty path selects
// DefaultEphemerisPath. The path is not checked for existence; a missing
// directory simply means every lookup falls back to the built-in theory.
func New(path string) *Ephemeris {
	e := &Ephemeris{sidMode: ModelUnchanged}
	if path == "" {
		path = DefaultEphemerisPath
	}
	e.setPath(path)
	return e
}

// SetEphemerisPath points the handle at a new data directory. Precomputed
// position tables found there take precedence over the built-in theory.
func (e *Ephemeris) SetEphemerisPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	e.setPath(path)
	return nil
}

func (e *Ephemeris) setPath(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.path = path
	// NetCDF tables are preferred over CSV when both cover a body.
	e.sources = []store.PositionSource{
		tables.NewStore(path),
		storecsv.NewPositionStore(path),
	}
}

// Path returns the configured data directory.
func (e *Ephemeris) Path() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.path
}

// SiderealMode returns the currently selected ayanamsha model, or
// ModelUnchanged when none has been selected yet.
func (e *Ephemeris) SiderealMode() domain.AyanamshaModel {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sidMode
}

// SetSiderealMode selects the ayanamsha model applied to subsequent
// PlanetPosition calls.
func (e *Ephemeris) SetSiderealMode(model domain.AyanamshaModel) error {
	if !model.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownAyanamsha, int(model))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sidMode = model
	return nil
}

// resolveMode applies a model selection to the handle and returns the model
// effective for this call: the explicit model when given, otherwise the
// handle's current mode, otherwise Fagan/Bradley.
func (e *Ephemeris) resolveMode(model domain.AyanamshaModel) (domain.AyanamshaModel, error) {
	if model != ModelUnchanged {
		if err := e.SetSiderealMode(model); err != nil {
			return 0, err
		}
		return model, nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.sidMode == ModelUnchanged {
		return domain.AyanamshaFaganBradley, nil
	}
	return e.sidMode, nil
}

// PlanetPosition returns the sidereal geocentric position of a body together
// with the ayanamsha model that was applied.
//
// A valid model selects (and persists on the handle) the ayanamsha used for
// the tropical-to-sidereal conversion; ModelUnchanged keeps the handle's
// current mode, defaulting to Fagan/Bradley when none was ever set. geoLat
// and geoLon are accepted for future topocentric output and do not affect
// the geocentric result.
func (e *Ephemeris) PlanetPosition(jd float64, body domain.Body, geoLat, geoLon float64, model domain.AyanamshaModel) (domain.BodyPosition, domain.AyanamshaModel, error) {
	_ = geoLat
	_ = geoLon

	if !body.Valid() {
		return domain.BodyPosition{}, 0, fmt.Errorf("%w: %d", domain.ErrUnknownBody, int(body))
	}

	mode, err := e.resolveMode(model)
	if err != nil {
		return domain.BodyPosition{}, 0, err
	}

	pos, err := e.tropicalPosition(jd, body)
	if err != nil {
		return domain.BodyPosition{}, 0, err
	}

	offset, err := domain.AyanamshaDeg(jd, mode)
	if err != nil {
		return domain.BodyPosition{}, 0, err
	}
	pos.Longitude = domain.Norm360(pos.Longitude - offset)

	return pos, mode, nil
}

// tropicalPosition consults the precomputed table sources in order and falls
// back to the built-in analytic theory when none covers the request.
func (e *Ephemeris) tropicalPosition(jd float64, body domain.Body) (domain.BodyPosition, error) {
	e.mu.RLock()
	sources := e.sources
	e.mu.RUnlock()

	for _, src := range sources {
		pos, err := src.Lookup(body, jd)
		if err == nil {
			return pos, nil
		}
		if !errors.Is(err, store.ErrNoData) {
			return domain.BodyPosition{}, fmt.Errorf("ephemeris table lookup for %s: %w", body, err)
		}
	}
	return domain.CalcBody(jd, body)
}

// Ayanamsha returns the tropical-to-sidereal offset in degrees for the given
// model at the given Julian day.
func (e *Ephemeris) Ayanamsha(jd float64, model domain.AyanamshaModel) (float64, error) {
	return domain.AyanamshaDeg(jd, model)
}

// HouseCusps returns the twelve house cusp longitudes for a moment and
// geographic location. Index 0 holds the cusp of house 1.
func (e *Ephemeris) HouseCusps(jd, geoLat, geoLon float64, system domain.HouseSystem) ([12]float64, error) {
	cusps, _, err := domain.Houses(jd, geoLat, geoLon, system)
	return cusps, err
}

// AscendantData returns the chart angles (ascendant, midheaven, ARMC, vertex,
// equatorial ascendant) for a moment and geographic location. The angles come
// from the same houses computation as HouseCusps; they do not depend on the
// system, but an unknown selector still fails.
func (e *Ephemeris) AscendantData(jd, geoLat, geoLon float64, system domain.HouseSystem) (domain.AscendantAngles, error) {
	_, angles, err := domain.Houses(jd, geoLat, geoLon, system)
	return angles, err
}
