package domain

import (
	"time"

	"github.com/twpayne/go-geom/encoding/geojson"
)

// ResponseMetadata summarizes a generated flood-zone response.
// BufferKm is the scenario's canonical buffer distance, independent of the
// per-river adjustments applied inside feature generation.
type ResponseMetadata struct {
	BufferKm    float64   `json:"buffer_km"`
	RiverCount  int       `json:"river_count"`
	GeneratedAt time.Time `json:"generated_at"`
	Error       string    `json:"error,omitempty"`
}

// FloodZoneResponse is a GeoJSON FeatureCollection with flood zones for one
// region/scenario pair, plus generation metadata. Responses are immutable
// once built; the cache hands out the same value to every caller.
type FloodZoneResponse struct {
	Type     string             `json:"type"`
	Region   Region             `json:"region"`
	Scenario Scenario           `json:"scenario"`
	Features []*geojson.Feature `json:"features"`
	Metadata ResponseMetadata   `json:"metadata"`
}

// NewFloodZoneResponse builds a well-formed response shell with no
// features. Features is non-nil so the empty case serializes as [].
func NewFloodZoneResponse(region Region, scenario Scenario, riverCount int, generatedAt time.Time) *FloodZoneResponse {
	return &FloodZoneResponse{
		Type:     "FeatureCollection",
		Region:   region,
		Scenario: scenario,
		Features: []*geojson.Feature{},
		Metadata: ResponseMetadata{
			BufferKm:    scenario.BaseBufferKm(),
			RiverCount:  riverCount,
			GeneratedAt: generatedAt,
		},
	}
}

// RiverFeatures generates the GeoJSON features for one river under the
// given scenario: one Polygon feature per centerline segment, carrying the
// river's metadata in the feature properties. A zero buffer yields nil.
func RiverFeatures(river RiverSegment, bufferKm float64, region Region, scenario Scenario) []*geojson.Feature {
	quads := BufferQuads(river.Centerline, bufferKm)
	if len(quads) == 0 {
		return nil
	}

	features := make([]*geojson.Feature, 0, len(quads))
	for _, quad := range quads {
		features = append(features, &geojson.Feature{
			Geometry: quad,
			Properties: map[string]interface{}{
				"river_name":    river.Name,
				"buffer_km":     bufferKm,
				"scenario":      string(scenario),
				"region":        string(region),
				"flood_prone":   river.FloodProne,
				"river_width_m": river.AvgWidthM,
			},
		})
	}
	return features
}

// GenerationEvent is the audit record published when flood zones are
// generated on a cache miss.
type GenerationEvent struct {
	Region       Region    `json:"region"`
	Scenario     Scenario  `json:"scenario"`
	RiverCount   int       `json:"river_count"`
	FeatureCount int       `json:"feature_count"`
	BufferKm     float64   `json:"buffer_km"`
	GeneratedAt  time.Time `json:"generated_at"`
}
