// Package csv provides CSV-based ephemeris position tables.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.skvk.app/ephemeris-api/internal/adapter/interp"
	"go.skvk.app/ephemeris-api/internal/adapter/store"
	"go.skvk.app/ephemeris-api/internal/domain"
)

// PositionStore provides access to per-body CSV position tables. A table file
// is named "<body>_positions.csv" and holds one sampled position per row in
// Julian-day order.
type PositionStore struct {
	dataDir string
	cache   map[domain.Body]*bodyTable
	mu      sync.RWMutex // Protects cache.
}

type bodyTable struct {
	lon  *interp.Series // Unwrapped longitude, degrees.
	lat  *interp.Series
	dist *interp.Series
}

// NewPositionStore creates a new CSV-based position store.
func NewPositionStore(dataDir string) *PositionStore {
	return &PositionStore{
		dataDir: dataDir,
		cache:   make(map[domain.Body]*bodyTable),
	}
}

// Lookup interpolates the position of a body at a Julian day from its table.
// Speed comes from the slope of the longitude segment containing jd.
func (s *PositionStore) Lookup(body domain.Body, jd float64) (domain.BodyPosition, error) {
	table, err := s.loadTable(body)
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

func (s *PositionStore) loadTable(body domain.Body) (*bodyTable, error) {
	s.mu.RLock()
	table, ok := s.cache[body]
	s.mu.RUnlock()
	if ok {
		return table, nil
	}

	// Construct file path.
	filename := filepath.Join(s.dataDir, fmt.Sprintf("%s_positions.csv", body))

	//nolint:gosec // G304: File path constructed from dataDir (config) and a fixed body name.
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: no CSV table for %s: %v", store.ErrNoData, body, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Validate header.
	expectedHeaders := []string{"jd", "longitude_deg", "latitude_deg", "distance_au"}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}

	for i, h := range header {
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	// Read data rows.
	var jds, lons, lats, dists []float64

	for {
		record, err := reader.Read()
		if err != nil {
			// EOF is expected.
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(record) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid CSV record: expected %d columns, got %d", len(expectedHeaders), len(record))
		}

		vals := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value for %s: %w", expectedHeaders[i], body, err)
			}
			vals[i] = v
		}

		jds = append(jds, vals[0])
		lons = append(lons, vals[1])
		lats = append(lats, vals[2])
		dists = append(dists, vals[3])
	}

	table, err = buildTable(jds, lons, lats, dists)
	if err != nil {
		return nil, fmt.Errorf("invalid CSV table for %s: %w", body, err)
	}

	s.mu.Lock()
	s.cache[body] = table
	s.mu.Unlock()

	return table, nil
}

func buildTable(jds, lons, lats, dists []float64) (*bodyTable, error) {
	table := &bodyTable{
		lon:  &interp.Series{X: jds, Y: interp.UnwrapDeg(lons)},
		lat:  &interp.Series{X: jds, Y: lats},
		dist: &interp.Series{X: jds, Y: dists},
	}
	for _, s := range []*interp.Series{table.lon, table.lat, table.dist} {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// ListBodies returns the bodies that have a table file in the data directory.
func (s *PositionStore) ListBodies() ([]domain.Body, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	bodies := make([]domain.Body, 0)
	suffix := "_positions.csv"

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		body, err := domain.ParseBody(name[:len(name)-len(suffix)])
		if err != nil {
			// Skip files that are not named after a known body.
			continue
		}
		bodies = append(bodies, body)
	}

	return bodies, nil
}
