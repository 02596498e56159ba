package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloodZoneResponse_EmptyShell(t *testing.T) {
	generatedAt := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	resp := NewFloodZoneResponse(RegionBihar, Scenario1m, 4, generatedAt)

	assert.Equal(t, "FeatureCollection", resp.Type)
	assert.Equal(t, RegionBihar, resp.Region)
	assert.Equal(t, Scenario1m, resp.Scenario)
	assert.Equal(t, 3.0, resp.Metadata.BufferKm)
	assert.Equal(t, 4, resp.Metadata.RiverCount)
	assert.Equal(t, generatedAt, resp.Metadata.GeneratedAt)
	assert.NotNil(t, resp.Features)
	assert.Empty(t, resp.Features)
}

func TestFloodZoneResponse_EmptyFeaturesSerializeAsArray(t *testing.T) {
	resp := NewFloodZoneResponse(RegionBihar, Scenario0m, 4, time.Now().UTC())

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"features":[]`)
	assert.Contains(t, string(data), `"type":"FeatureCollection"`)
	assert.NotContains(t, string(data), `"error"`)
}

func TestRiverFeatures_Properties(t *testing.T) {
	river := RiverSegment{
		Name: "Kosi",
		Centerline: []Point{
			{Lon: 86.8, Lat: 26.5}, {Lon: 86.7, Lat: 26.2}, {Lon: 86.6, Lat: 25.9},
		},
		AvgWidthM:  400,
		FloodProne: true,
	}

	features := RiverFeatures(river, 6.48, RegionBihar, Scenario1m)
	require.Len(t, features, 2)

	for _, f := range features {
		assert.Equal(t, "Kosi", f.Properties["river_name"])
		assert.Equal(t, 6.48, f.Properties["buffer_km"])
		assert.Equal(t, "1m", f.Properties["scenario"])
		assert.Equal(t, "Bihar", f.Properties["region"])
		assert.Equal(t, true, f.Properties["flood_prone"])
		assert.Equal(t, 400.0, f.Properties["river_width_m"])
	}
}

func TestRiverFeatures_ZeroBuffer(t *testing.T) {
	river := RiverSegment{
		Name:       "Kosi",
		Centerline: []Point{{Lon: 86.8, Lat: 26.5}, {Lon: 86.7, Lat: 26.2}},
		AvgWidthM:  400,
		FloodProne: true,
	}
	assert.Nil(t, RiverFeatures(river, 0, RegionBihar, Scenario0m))
}

func TestRiverFeatures_GeoJSONEncoding(t *testing.T) {
	river := RiverSegment{
		Name:       "Kosi",
		Centerline: []Point{{Lon: 86.8, Lat: 26.5}, {Lon: 86.7, Lat: 26.2}},
		AvgWidthM:  400,
		FloodProne: true,
	}

	features := RiverFeatures(river, 3.0, RegionBihar, Scenario1m)
	require.Len(t, features, 1)

	data, err := json.Marshal(features[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"Feature"`)
	assert.Contains(t, string(data), `"type":"Polygon"`)
	assert.Contains(t, string(data), `"river_name":"Kosi"`)
}

func TestRiverSegment_Validate(t *testing.T) {
	valid := RiverSegment{
		Name:       "Ganges",
		Centerline: []Point{{Lon: 84.2, Lat: 25.6}, {Lon: 84.5, Lat: 25.5}},
		AvgWidthM:  800,
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	singlePoint := valid
	singlePoint.Centerline = []Point{{Lon: 84.2, Lat: 25.6}}
	assert.Error(t, singlePoint.Validate())

	zeroWidth := valid
	zeroWidth.AvgWidthM = 0
	assert.Error(t, zeroWidth.Validate())
}
