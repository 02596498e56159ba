package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/storm-buster/jal-setu/internal/domain"
)

// handleFloodGeometry serves GET /api/flood-geometry?region=&scenario=.
// Returns a GeoJSON FeatureCollection with generation metadata. A "0m"
// scenario or a degraded generation still returns 200 with empty features;
// only invalid inputs are client errors.
func (s *Server) handleFloodGeometry(w http.ResponseWriter, r *http.Request) {
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	scenario := strings.TrimSpace(r.URL.Query().Get("scenario"))

	resp, err := s.svc.GetFloodZones(r.Context(), region, scenario)
	if err != nil {
		writeInputError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// depthResponse is the payload for point depth queries, consumed by the
// map client's hover inspection.
type depthResponse struct {
	Region   string  `json:"region"`
	Scenario string  `json:"scenario"`
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	DepthM   float64 `json:"depth_m"`
}

// handleFloodDepth serves GET /api/flood-depth?region=&scenario=&lon=&lat=.
func (s *Server) handleFloodDepth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	region := strings.TrimSpace(q.Get("region"))
	scenario := strings.TrimSpace(q.Get("scenario"))

	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid longitude"})
		return
	}
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid latitude"})
		return
	}

	depth, err := s.svc.DepthAt(region, scenario, domain.Point{Lon: lon, Lat: lat})
	if err != nil {
		writeInputError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, depthResponse{
		Region:   region,
		Scenario: scenario,
		Lon:      lon,
		Lat:      lat,
		DepthM:   depth,
	})
}

// writeInputError maps closed-enum validation failures to 400 and anything
// else to 500. The service contract keeps generation faults out of the
// error path, so 500 here means a programming error.
func writeInputError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidRegion) || errors.Is(err, domain.ErrInvalidScenario) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
