package ephe

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.skvk.app/ephemeris-api/internal/domain"
)

const testJD = 2448908.5 // 1992-10-13 0h UT

func TestNew_DefaultPath(t *testing.T) {
	e := New("")
	assert.Equal(t, DefaultEphemerisPath, e.Path())
	assert.Equal(t, ModelUnchanged, e.SiderealMode())
}

func TestSetEphemerisPath(t *testing.T) {
	e := New("")

	err := e.SetEphemerisPath("")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Equal(t, DefaultEphemerisPath, e.Path(), "failed call must not change the path")

	// A nonexistent directory is accepted; lookups fall back to the
	// built-in theory.
	require.NoError(t, e.SetEphemerisPath("/nonexistent/ephemeris"))
	assert.Equal(t, "/nonexistent/ephemeris", e.Path())

	_, _, err = e.PlanetPosition(testJD, domain.Sun, 0, 0, domain.AyanamshaFaganBradley)
	assert.NoError(t, err)
}

func TestPlanetPosition_SiderealOffset(t *testing.T) {
	e := New("")

	sidereal, mode, err := e.PlanetPosition(testJD, domain.Sun, 0, 0, domain.AyanamshaLahiri)
	require.NoError(t, err)
	assert.Equal(t, domain.AyanamshaLahiri, mode)

	tropical, err := domain.CalcBody(testJD, domain.Sun)
	require.NoError(t, err)
	offset, err := domain.AyanamshaDeg(testJD, domain.AyanamshaLahiri)
	require.NoError(t, err)

	want := domain.Norm360(tropical.Longitude - offset)
	assert.InDelta(t, want, sidereal.Longitude, 1e-9)
	assert.InDelta(t, tropical.Latitude, sidereal.Latitude, 1e-9)
	assert.InDelta(t, tropical.Distance, sidereal.Distance, 1e-9)
	assert.InDelta(t, tropical.Speed, sidereal.Speed, 1e-9)
}

func TestPlanetPosition_ModePersists(t *testing.T) {
	e := New("")

	_, _, err := e.PlanetPosition(testJD, domain.Sun, 0, 0, domain.AyanamshaLahiri)
	require.NoError(t, err)
	assert.Equal(t, domain.AyanamshaLahiri, e.SiderealMode())

	// ModelUnchanged keeps the previously selected mode in effect.
	got, mode, err := e.PlanetPosition(testJD, domain.Sun, 0, 0, ModelUnchanged)
	require.NoError(t, err)
	assert.Equal(t, domain.AyanamshaLahiri, mode)
	assert.Equal(t, domain.AyanamshaLahiri, e.SiderealMode())

	explicit, _, err := e.PlanetPosition(testJD, domain.Sun, 0, 0, domain.AyanamshaLahiri)
	require.NoError(t, err)
	assert.InDelta(t, explicit.Longitude, got.Longitude, 1e-12)
}

func TestPlanetPosition_DefaultsFaganBradley(t *testing.T) {
	e := New("")

	got, mode, err := e.PlanetPosition(testJD, domain.Moon, 0, 0, ModelUnchanged)
	require.NoError(t, err)
	assert.Equal(t, domain.AyanamshaFaganBradley, mode)
	// Defaulting must not stick as a selected mode.
	assert.Equal(t, ModelUnchanged, e.SiderealMode())

	fb, _, err := e.PlanetPosition(testJD, domain.Moon, 0, 0, domain.AyanamshaFaganBradley)
	require.NoError(t, err)
	assert.InDelta(t, fb.Longitude, got.Longitude, 1e-12)
}

func TestPlanetPosition_Errors(t *testing.T) {
	e := New("")

	_, _, err := e.PlanetPosition(testJD, domain.Body(42), 0, 0, ModelUnchanged)
	assert.ErrorIs(t, err, domain.ErrUnknownBody)

	_, _, err = e.PlanetPosition(testJD, domain.Sun, 0, 0, domain.AyanamshaModel(99))
	assert.ErrorIs(t, err, domain.ErrUnknownAyanamsha)
	assert.Equal(t, ModelUnchanged, e.SiderealMode(), "invalid model must not persist")
}

// TestPlanetPosition_ConcurrentModeSelection hammers one handle from many
// goroutines with alternating models; every call must compute and report the
// position under the model it asked for. Run with -race.
func TestPlanetPosition_ConcurrentModeSelection(t *testing.T) {
	e := New("")

	models := []domain.AyanamshaModel{domain.AyanamshaFaganBradley, domain.AyanamshaLahiri}
	want := make(map[domain.AyanamshaModel]float64, len(models))
	tropical, err := domain.CalcBody(testJD, domain.Sun)
	require.NoError(t, err)
	for _, m := range models {
		offset, err := domain.AyanamshaDeg(testJD, m)
		require.NoError(t, err)
		want[m] = domain.Norm360(tropical.Longitude - offset)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		m := models[i%len(models)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				pos, mode, err := e.PlanetPosition(testJD, domain.Sun, 0, 0, m)
				if err != nil {
					t.Errorf("PlanetPosition(%s): %v", m, err)
					return
				}
				if mode != m {
					t.Errorf("applied model %s, requested %s", mode, m)
					return
				}
				if math.Abs(pos.Longitude-want[m]) > 1e-9 {
					t.Errorf("%s: longitude %.9f, want %.9f", m, pos.Longitude, want[m])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPlanetPosition_TablePrecedence(t *testing.T) {
	dir := t.TempDir()
	table := "jd,longitude_deg,latitude_deg,distance_au\n" +
		"2448907.5,100.0,0.5,1.0\n" +
		"2448909.5,102.0,0.5,1.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sun_positions.csv"), []byte(table), 0o644))

	e := New(dir)
	pos, _, err := e.PlanetPosition(testJD, domain.Sun, 0, 0, domain.AyanamshaFaganBradley)
	require.NoError(t, err)

	offset, err := domain.AyanamshaDeg(testJD, domain.AyanamshaFaganBradley)
	require.NoError(t, err)
	assert.InDelta(t, domain.Norm360(101.0-offset), pos.Longitude, 1e-9)
	assert.InDelta(t, 0.5, pos.Latitude, 1e-9)
	assert.InDelta(t, 1.0, pos.Speed, 1e-9)

	// Bodies without a table use the built-in theory.
	_, _, err = e.PlanetPosition(testJD, domain.Mars, 0, 0, ModelUnchanged)
	assert.NoError(t, err)
}

func TestAyanamsha(t *testing.T) {
	e := New("")

	got, err := e.Ayanamsha(2433282.5, domain.AyanamshaFaganBradley)
	require.NoError(t, err)
	assert.InDelta(t, 24.042044, got, 1e-9)

	_, err = e.Ayanamsha(testJD, domain.AyanamshaModel(99))
	assert.ErrorIs(t, err, domain.ErrUnknownAyanamsha)
}

func TestHouseCusps(t *testing.T) {
	e := New("")

	cusps, err := e.HouseCusps(testJD, 48.8566, 2.3522, domain.HousePlacidus)
	require.NoError(t, err)
	for i, c := range cusps {
		if c < 0 || c >= 360 || math.IsNaN(c) {
			t.Errorf("cusp %d outside [0, 360): %f", i+1, c)
		}
	}

	_, err = e.HouseCusps(testJD, 48.8566, 2.3522, domain.HouseSystem('X'))
	assert.ErrorIs(t, err, domain.ErrUnknownHouseSystem)
}

func TestAscendantData(t *testing.T) {
	e := New("")

	angles, err := e.AscendantData(testJD, 48.8566, 2.3522, domain.HousePlacidus)
	require.NoError(t, err)

	// Angles are shared across systems.
	whole, err := e.AscendantData(testJD, 48.8566, 2.3522, domain.HouseWholeSign)
	require.NoError(t, err)
	assert.Equal(t, angles, whole)

	_, err = e.AscendantData(testJD, 48.8566, 2.3522, domain.HouseSystem('X'))
	assert.ErrorIs(t, err, domain.ErrUnknownHouseSystem)

	cusps, err := e.HouseCusps(testJD, 48.8566, 2.3522, domain.HousePlacidus)
	require.NoError(t, err)
	assert.InDelta(t, cusps[0], angles.Ascendant, 1e-9)
	assert.InDelta(t, cusps[9], angles.Midheaven, 1e-9)
}
