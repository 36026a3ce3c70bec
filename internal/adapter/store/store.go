// Package store defines the port for precomputed ephemeris position data.
package store

import (
	"errors"

	"go.skvk.app/ephemeris-api/internal/domain"
)

// ErrNoData indicates the source has no table covering the requested body
// and time; callers fall back to the next source in their chain.
var ErrNoData = errors.New("no ephemeris data for request")

// PositionSource is the interface for loading tropical geocentric positions
// from precomputed ephemeris tables.
type PositionSource interface {
	// Lookup returns the position of a body at a Julian day, or ErrNoData
	// (possibly wrapped) when the source does not cover it.
	Lookup(body domain.Body, jd float64) (domain.BodyPosition, error)
}
