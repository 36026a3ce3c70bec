// Package tables provides access to precomputed NetCDF ephemeris tables.
package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fhs/go-netcdf/netcdf"

	"go.skvk.app/ephemeris-api/internal/adapter/interp"
	"go.skvk.app/ephemeris-api/internal/adapter/store"
	"go.skvk.app/ephemeris-api/internal/domain"
)

// FileConfig defines the expected NetCDF file structure.
type FileConfig struct {
	FilePattern string // E.g., "{body}.nc".

	// Variable names in NetCDF files.
	JDVarName        string // E.g., "jd".
	LongitudeVarName string // E.g., "longitude".
	LatitudeVarName  string // E.g., "latitude".
	DistanceVarName  string // E.g., "distance".
}

// DefaultConfig returns the default table file configuration.
func DefaultConfig() FileConfig {
	return FileConfig{
		FilePattern:      "{body}.nc",
		JDVarName:        "jd",
		LongitudeVarName: "longitude",
		LatitudeVarName:  "latitude",
		DistanceVarName:  "distance",
	}
}

// Store provides access to per-body NetCDF position tables. Each table holds
// the sampled geocentric ecliptic position of one body over a Julian-day
// axis; lookups interpolate linearly between samples.
type Store struct {
	dataDir string
	config  FileConfig
	cache   map[domain.Body]*bodyTable // Cache loaded tables.
	mu      sync.RWMutex               // Protect cache.
}

type bodyTable struct {
	lon  *interp.Series // Unwrapped longitude, degrees.
	lat  *interp.Series
	dist *interp.Series
}

// NewStore creates a new NetCDF table store.
func NewStore(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		config:  DefaultConfig(),
		cache:   make(map[domain.Body]*bodyTable),
	}
}

// Lookup interpolates the position of a body at a Julian day from its table.
func (s *Store) Lookup(body domain.Body, jd float64) (domain.BodyPosition, error) {
	table, err := s.loadBody(body)
	if err != nil {
		return domain.BodyPosition{}, err
	}

	lon, err := table.lon.At(jd)
	if err != nil {
		return domain.BodyPosition{}, fmt.Errorf("%w: %v", store.ErrNoData, err)
	}
	lat, err := table.lat.At(jd)
	if err != nil {
		return domain.BodyPosition{}, fmt.Errorf("%w: %v", store.ErrNoData, err)
	}
	dist, err := table.dist.At(jd)
	if err != nil {
		return domain.BodyPosition{}, fmt.Errorf("%w: %v", store.ErrNoData, err)
	}
	speed, err := table.lon.SlopeAt(jd)
	if err != nil {
		return domain.BodyPosition{}, fmt.Errorf("%w: %v", store.ErrNoData, err)
	}

	return domain.BodyPosition{
		Longitude: domain.Norm360(lon),
		Latitude:  lat,
		Distance:  dist,
		Speed:     speed,
	}, nil
}

// AvailableBodies returns the bodies that have a table file in the data
// directory.
func (s *Store) AvailableBodies() ([]domain.Body, error) {
	if _, err := os.Stat(s.dataDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("table data directory does not exist: %s", s.dataDir)
	}

	bodies := make([]domain.Body, 0)
	for _, body := range domain.AllBodies() {
		if _, err := os.Stat(s.bodyPath(body)); err == nil {
			bodies = append(bodies, body)
		}
	}
	return bodies, nil
}

func (s *Store) bodyPath(body domain.Body) string {
	name := strings.ReplaceAll(s.config.FilePattern, "{body}", body.String())
	return filepath.Join(s.dataDir, name)
}

// loadBody loads the position table for a body.
func (s *Store) loadBody(body domain.Body) (*bodyTable, error) {
	// Check cache first.
	s.mu.RLock()
	if table, ok := s.cache[body]; ok {
		s.mu.RUnlock()
		return table, nil
	}
	s.mu.RUnlock()

	path := s.bodyPath(body)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: no NetCDF table for %s: %v", store.ErrNoData, body, err)
	}

	table, err := loadNetCDFTable(path, s.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load table for %s: %w", body, err)
	}

	// Cache the table.
	s.mu.Lock()
	s.cache[body] = table
	s.mu.Unlock()

	return table, nil
}

// loadNetCDFTable reads the sampled position series from a NetCDF file.
func loadNetCDFTable(path string, config FileConfig) (*bodyTable, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	readVar := func(name string) ([]float64, error) {
		v, err := nc.Var(name)
		if err != nil {
			return nil, fmt.Errorf("variable %s not found: %w", name, err)
		}
		return readFloat64Var(v)
	}

	jds, err := readVar(config.JDVarName)
	if err != nil {
		return nil, err
	}
	lons, err := readVar(config.LongitudeVarName)
	if err != nil {
		return nil, err
	}
	lats, err := readVar(config.LatitudeVarName)
	if err != nil {
		return nil, err
	}
	dists, err := readVar(config.DistanceVarName)
	if err != nil {
		return nil, err
	}

	table := &bodyTable{
		lon:  &interp.Series{X: jds, Y: interp.UnwrapDeg(lons)},
		lat:  &interp.Series{X: jds, Y: lats},
		dist: &interp.Series{X: jds, Y: dists},
	}
	for _, series := range []*interp.Series{table.lon, table.lat, table.dist} {
		if err := series.Validate(); err != nil {
			return nil, fmt.Errorf("invalid table series: %w", err)
		}
	}
	return table, nil
}

// readFloat64Var reads a 1D float64 array from a NetCDF variable.
func readFloat64Var(v netcdf.Var) ([]float64, error) {
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("expected 1D variable, got %dD", len(dims))
	}

	length, err := dims[0].Len()
	if err != nil {
		return nil, err
	}

	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get var type: %w", err)
	}
	switch t {
	case netcdf.DOUBLE:
		data := make([]float64, length)
		if err := v.ReadFloat64s(data); err != nil {
			return nil, err
		}
		return data, nil
	case netcdf.FLOAT:
		tmp := make([]float32, length)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, length)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported var type: %v", t)
	}
}
