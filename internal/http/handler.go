package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.skvk.app/ephemeris-api/internal/domain"
	"go.skvk.app/ephemeris-api/internal/ephe"
	"go.skvk.app/ephemeris-api/internal/usecase"
)

// Handler handles HTTP requests for chart calculations.
type Handler struct {
	chartUC *usecase.ChartUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(chartUC *usecase.ChartUseCase) *Handler {
	return &Handler{
		chartUC: chartUC,
	}
}

// parseJD reads the required jd query parameter.
func parseJD(c *gin.Context) (float64, bool) {
	jdStr := c.Query("jd")
	if jdStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jd parameter is required"})
		return 0, false
	}
	jd, err := strconv.ParseFloat(jdStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid jd: %v", err)})
		return 0, false
	}
	return jd, true
}

// parseLatLon reads the required lat/lon query parameters.
func parseLatLon(c *gin.Context) (lat, lon float64, ok bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon parameters are required"})
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
		return 0, 0, false
	}
	return lat, lon, true
}

// parseBody resolves the body query parameter, accepting either the numeric
// id or the body name.
func parseBody(c *gin.Context) (domain.Body, bool) {
	bodyStr := c.Query("body")
	if bodyStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body parameter is required"})
		return 0, false
	}

	if id, err := strconv.Atoi(bodyStr); err == nil {
		body := domain.Body(id)
		if !body.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown body id: %d", id)})
			return 0, false
		}
		return body, true
	}

	body, err := domain.ParseBody(bodyStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown body: %s", bodyStr)})
		return 0, false
	}
	return body, true
}

// GetPlanetPosition handles GET /v1/bodies/position.
func (h *Handler) GetPlanetPosition(c *gin.Context) {
	jd, ok := parseJD(c)
	if !ok {
		return
	}
	body, ok := parseBody(c)
	if !ok {
		return
	}

	req := usecase.PositionRequest{
		JD:        jd,
		Body:      body,
		Ayanamsha: ephe.ModelUnchanged,
	}

	// Observer location is optional for geocentric positions, but must be
	// supplied as a pair.
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if (latStr == "") != (lonStr == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be provided together"})
		return
	}
	if latStr != "" {
		lat, lon, ok := parseLatLon(c)
		if !ok {
			return
		}
		req.Lat = lat
		req.Lon = lon
	}

	if ayaStr := c.Query("ayanamsha"); ayaStr != "" {
		id, err := strconv.Atoi(ayaStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid ayanamsha: %v", err)})
			return
		}
		req.Ayanamsha = domain.AyanamshaModel(id)
	}

	response, err := h.chartUC.PlanetPosition(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAyanamsha handles GET /v1/ayanamsha.
func (h *Handler) GetAyanamsha(c *gin.Context) {
	jd, ok := parseJD(c)
	if !ok {
		return
	}

	modelStr := c.Query("model")
	if modelStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model parameter is required"})
		return
	}
	id, err := strconv.Atoi(modelStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid model: %v", err)})
		return
	}

	response, err := h.chartUC.Ayanamsha(usecase.AyanamshaRequest{
		JD:    jd,
		Model: domain.AyanamshaModel(id),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// housesRequest builds a HousesRequest from the shared query parameters.
func (h *Handler) housesRequest(c *gin.Context) (usecase.HousesRequest, bool) {
	jd, ok := parseJD(c)
	if !ok {
		return usecase.HousesRequest{}, false
	}
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return usecase.HousesRequest{}, false
	}

	// Default to Placidus, matching chart conventions.
	systemStr := c.Query("system")
	if systemStr == "" {
		systemStr = "P"
	}
	system, err := domain.ParseHouseSystem(systemStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown house system: %s", systemStr)})
		return usecase.HousesRequest{}, false
	}

	return usecase.HousesRequest{JD: jd, Lat: lat, Lon: lon, System: system}, true
}

// GetHouseCusps handles GET /v1/houses/cusps.
func (h *Handler) GetHouseCusps(c *gin.Context) {
	req, ok := h.housesRequest(c)
	if !ok {
		return
	}

	response, err := h.chartUC.HouseCusps(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAscendantData handles GET /v1/houses/angles.
func (h *Handler) GetAscendantData(c *gin.Context) {
	req, ok := h.housesRequest(c)
	if !ok {
		return
	}

	response, err := h.chartUC.AscendantData(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBodies handles GET /v1/bodies.
func (h *Handler) GetBodies(c *gin.Context) {
	bodies := h.chartUC.ListBodies()
	c.JSON(http.StatusOK, gin.H{
		"bodies": bodies,
		"count":  len(bodies),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
