package usecase

import (
	"fmt"

	"go.skvk.app/ephemeris-api/internal/domain"
	"go.skvk.app/ephemeris-api/internal/ephe"
)

// Supported Julian day range, roughly 3000 BCE to 3000 CE. The analytic
// series degrade outside it.
const (
	MinJulianDay = 625307.0
	MaxJulianDay = 2816788.0
)

// PositionRequest asks for the sidereal position of one body.
type PositionRequest struct {
	JD   float64
	Body domain.Body

	// Observer location, reserved for topocentric output.
	Lat float64
	Lon float64

	// Ayanamsha selects the sidereal frame; ephe.ModelUnchanged keeps the
	// handle's current mode.
	Ayanamsha domain.AyanamshaModel
}

// PositionResponse contains one body position.
type PositionResponse struct {
	Body      string              `json:"body"`
	JD        float64             `json:"jd"`
	Ayanamsha string              `json:"ayanamsha"`
	Position  domain.BodyPosition `json:"position"`
}

// AyanamshaRequest asks for the sidereal offset of one model.
type AyanamshaRequest struct {
	JD    float64
	Model domain.AyanamshaModel
}

// AyanamshaResponse contains the sidereal offset in degrees.
type AyanamshaResponse struct {
	JD      float64 `json:"jd"`
	Model   string  `json:"model"`
	Degrees float64 `json:"degrees"`
}

// HousesRequest asks for house cusps or chart angles at a location.
type HousesRequest struct {
	JD     float64
	Lat    float64
	Lon    float64
	System domain.HouseSystem
}

// CuspsResponse contains the twelve cusp longitudes, cusp of house 1 first.
type CuspsResponse struct {
	JD     float64   `json:"jd"`
	System string    `json:"system"`
	Cusps  []float64 `json:"cusps"`
}

// AnglesResponse contains the chart angles.
type AnglesResponse struct {
	JD     float64                `json:"jd"`
	Angles domain.AscendantAngles `json:"angles"`
}

// BodyInfo describes one supported body.
type BodyInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChartUseCase orchestrates chart calculations over an ephemeris handle.
type ChartUseCase struct {
	eph *ephe.Ephemeris
}

// NewChartUseCase creates a new chart use case.
func NewChartUseCase(eph *ephe.Ephemeris) *ChartUseCase {
	return &ChartUseCase{eph: eph}
}

func validateJD(jd float64) error {
	if jd < MinJulianDay || jd > MaxJulianDay {
		return fmt.Errorf("julian day %.1f outside supported range [%.0f, %.0f]",
			jd, MinJulianDay, MaxJulianDay)
	}
	return nil
}

func validateLatLon(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// Validate checks if the request is valid.
func (r *PositionRequest) Validate() error {
	if err := validateJD(r.JD); err != nil {
		return err
	}
	if !r.Body.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownBody, int(r.Body))
	}
	return validateLatLon(r.Lat, r.Lon)
}

// Validate checks if the request is valid.
func (r *AyanamshaRequest) Validate() error {
	if err := validateJD(r.JD); err != nil {
		return err
	}
	if !r.Model.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownAyanamsha, int(r.Model))
	}
	return nil
}

// Validate checks if the request is valid.
func (r *HousesRequest) Validate() error {
	if err := validateJD(r.JD); err != nil {
		return err
	}
	return validateLatLon(r.Lat, r.Lon)
}

// PlanetPosition computes the sidereal position of a body.
func (uc *ChartUseCase) PlanetPosition(req PositionRequest) (*PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	pos, mode, err := uc.eph.PlanetPosition(req.JD, req.Body, req.Lat, req.Lon, req.Ayanamsha)
	if err != nil {
		return nil, err
	}

	return &PositionResponse{
		Body:      req.Body.String(),
		JD:        req.JD,
		Ayanamsha: mode.String(),
		Position:  pos,
	}, nil
}

// Ayanamsha computes the sidereal offset for a model.
func (uc *ChartUseCase) Ayanamsha(req AyanamshaRequest) (*AyanamshaResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	deg, err := uc.eph.Ayanamsha(req.JD, req.Model)
	if err != nil {
		return nil, err
	}

	return &AyanamshaResponse{
		JD:      req.JD,
		Model:   req.Model.String(),
		Degrees: deg,
	}, nil
}

// HouseCusps computes the twelve house cusps.
func (uc *ChartUseCase) HouseCusps(req HousesRequest) (*CuspsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	cusps, err := uc.eph.HouseCusps(req.JD, req.Lat, req.Lon, req.System)
	if err != nil {
		return nil, err
	}

	return &CuspsResponse{
		JD:     req.JD,
		System: string(req.System),
		Cusps:  cusps[:],
	}, nil
}

// AscendantData computes the chart angles.
func (uc *ChartUseCase) AscendantData(req HousesRequest) (*AnglesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	angles, err := uc.eph.AscendantData(req.JD, req.Lat, req.Lon, req.System)
	if err != nil {
		return nil, err
	}

	return &AnglesResponse{JD: req.JD, Angles: angles}, nil
}

// ListBodies returns all supported bodies.
func (uc *ChartUseCase) ListBodies() []BodyInfo {
	bodies := domain.AllBodies()
	infos := make([]BodyInfo, len(bodies))
	for i, b := range bodies {
		infos[i] = BodyInfo{ID: int(b), Name: b.String()}
	}
	return infos
}
