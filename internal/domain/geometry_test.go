package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferQuads_ZeroBuffer(t *testing.T) {
	centerline := []Point{{Lon: 85.0, Lat: 25.0}, {Lon: 86.0, Lat: 25.0}}
	assert.Nil(t, BufferQuads(centerline, 0))
	assert.Nil(t, BufferQuads(centerline, -1))
}

func TestBufferQuads_DegenerateCenterline(t *testing.T) {
	assert.Nil(t, BufferQuads(nil, 3.0))
	assert.Nil(t, BufferQuads([]Point{{Lon: 85.0, Lat: 25.0}}, 3.0))
}

func TestBufferQuads_OneQuadPerSegment(t *testing.T) {
	centerline := []Point{
		{Lon: 84.2, Lat: 25.6}, {Lon: 84.5, Lat: 25.5},
		{Lon: 85.0, Lat: 25.4}, {Lon: 85.3, Lat: 25.3},
	}
	quads := BufferQuads(centerline, 3.0)
	assert.Len(t, quads, 3)
}

func TestBufferQuads_SkipsZeroLengthSegments(t *testing.T) {
	centerline := []Point{
		{Lon: 85.0, Lat: 25.0}, {Lon: 85.0, Lat: 25.0}, {Lon: 86.0, Lat: 25.0},
	}
	quads := BufferQuads(centerline, 3.0)
	assert.Len(t, quads, 1)
}

func TestBufferQuads_PerpendicularOffsets(t *testing.T) {
	// Eastward segment with a buffer of exactly one degree (111 km):
	// the left perpendicular points north, so the ring is the unit
	// rectangle around the segment, counterclockwise from the SW corner.
	centerline := []Point{{Lon: 10.0, Lat: 0.0}, {Lon: 11.0, Lat: 0.0}}
	quads := BufferQuads(centerline, 111.0)
	require.Len(t, quads, 1)

	ring := quads[0].LinearRing(0)
	coords := ring.Coords()
	require.Len(t, coords, 5)

	want := [][2]float64{
		{10.0, -1.0},
		{11.0, -1.0},
		{11.0, 1.0},
		{10.0, 1.0},
		{10.0, -1.0},
	}
	for i, c := range coords {
		assert.InDelta(t, want[i][0], c.X(), 1e-9, "coord %d lon", i)
		assert.InDelta(t, want[i][1], c.Y(), 1e-9, "coord %d lat", i)
	}
}

func TestBufferQuads_RingIsClosed(t *testing.T) {
	centerline := []Point{{Lon: 86.8, Lat: 26.5}, {Lon: 86.7, Lat: 26.2}}
	quads := BufferQuads(centerline, 6.48)
	require.Len(t, quads, 1)

	coords := quads[0].LinearRing(0).Coords()
	require.Len(t, coords, 5)
	assert.Equal(t, coords[0], coords[4])
}
