// Command ephe-generator samples the built-in analytic theory into NetCDF
// position tables the server can serve from disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fhs/go-netcdf/netcdf"

	"go.skvk.app/ephemeris-api/internal/domain"
)

func main() {
	// Command line flags
	outDir := flag.String("out", "./data/ephemeris", "Output directory for NetCDF tables")
	startJD := flag.Float64("start", 2451545.0, "First sampled Julian day")
	days := flag.Float64("days", 365.0, "Length of the sampled span in days")
	step := flag.Float64("step", 1.0, "Sampling step in days")
	bodyList := flag.String("bodies", "all", "Comma-separated body names, or 'all'")

	flag.Parse()

	if *days <= 0 || *step <= 0 {
		log.Fatalf("days and step must be positive (got days=%.3f, step=%.3f)", *days, *step)
	}

	bodies, err := resolveBodies(*bodyList)
	if err != nil {
		log.Fatalf("Failed to resolve body list: %v", err)
	}

	nSamples := int(*days / *step)
	if nSamples < 2 {
		log.Fatalf("Span too short: %d samples (need at least 2)", nSamples)
	}

	log.Printf("Generating position tables for %d bodies", len(bodies))
	log.Printf("Span: JD %.1f to %.1f, step %.3f days (%d samples)",
		*startJD, *startJD+*days, *step, nSamples)

	// Create output directory
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for _, body := range bodies {
		if err := generateTable(body, *startJD, *step, nSamples, *outDir); err != nil {
			log.Printf("Warning: Failed to generate table for %s: %v", body, err)
			continue
		}
		log.Printf("✓ Generated %s.nc", body)
	}

	log.Printf("\n=== Generation Complete ===")
	log.Printf("Files created in: %s", *outDir)
	totalMB := float64(nSamples*4*8*len(bodies)) / 1024 / 1024
	log.Printf("Total size: ~%.1f MB (%d bodies × 4 variables)", totalMB, len(bodies))
}

// resolveBodies parses the -bodies flag.
func resolveBodies(list string) ([]domain.Body, error) {
	if list == "all" {
		return domain.AllBodies(), nil
	}

	var bodies []domain.Body
	for _, name := range strings.Split(list, ",") {
		body, err := domain.ParseBody(name)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	if len(bodies) == 0 {
		return nil, fmt.Errorf("empty body list")
	}
	return bodies, nil
}

// generateTable samples one body and writes its NetCDF table.
func generateTable(body domain.Body, startJD, step float64, nSamples int, outDir string) error {
	jds := make([]float64, nSamples)
	lons := make([]float64, nSamples)
	lats := make([]float64, nSamples)
	dists := make([]float64, nSamples)

	for i := 0; i < nSamples; i++ {
		jd := startJD + float64(i)*step
		pos, err := domain.CalcBody(jd, body)
		if err != nil {
			return fmt.Errorf("calc at JD %.3f: %w", jd, err)
		}
		jds[i] = jd
		lons[i] = pos.Longitude
		lats[i] = pos.Latitude
		dists[i] = pos.Distance
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s.nc", body))
	return writeNetCDF(path, jds, lons, lats, dists)
}

// writeNetCDF writes a position table with the given sampled series.
func writeNetCDF(path string, jds, lons, lats, dists []float64) error {
	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER|netcdf.NETCDF4)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer ds.Close()

	timeDim, err := ds.AddDim("time", uint64(len(jds)))
	if err != nil {
		return err
	}

	write := func(name string, data []float64) error {
		v, err := ds.AddVar(name, netcdf.DOUBLE, []netcdf.Dim{timeDim})
		if err != nil {
			return err
		}
		return v.WriteFloat64s(data)
	}

	if err := write("jd", jds); err != nil {
		return err
	}
	if err := write("longitude", lons); err != nil {
		return err
	}
	if err := write("latitude", lats); err != nil {
		return err
	}
	return write("distance", dists)
}
