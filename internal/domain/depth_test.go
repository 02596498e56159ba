package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testRiver runs east along the equator-adjacent parallel so flat-frame
// distances are easy to reason about: buffer(1m, 800m, 5°) = 6.48 km.
var testRiver = RiverSegment{
	Name:       "Test",
	Centerline: []Point{{Lon: 10.0, Lat: 20.0}, {Lon: 11.0, Lat: 20.0}},
	AvgWidthM:  800,
	FloodProne: true,
}

func TestDepthAt_OnCenterline(t *testing.T) {
	p := Point{Lon: 10.5, Lat: 20.0}
	assert.Equal(t, 2.0, DepthAt(p, []RiverSegment{testRiver}, Scenario2m, 5.0))
	assert.Equal(t, 1.0, DepthAt(p, []RiverSegment{testRiver}, Scenario1m, 5.0))
}

func TestDepthAt_ZeroScenario(t *testing.T) {
	p := Point{Lon: 10.5, Lat: 20.0}
	assert.Equal(t, 0.0, DepthAt(p, []RiverSegment{testRiver}, Scenario0m, 5.0))
}

func TestDepthAt_AtBufferEdge(t *testing.T) {
	// 6.48 km north of the centerline, the exact 1m buffer distance.
	p := Point{Lon: 10.5, Lat: 20.0 + 6.48/111.0}
	depth := DepthAt(p, []RiverSegment{testRiver}, Scenario1m, 5.0)
	assert.InDelta(t, 0.0, depth, 1e-9)
}

func TestDepthAt_BeyondBuffer(t *testing.T) {
	// 2m buffer for this river is 8 × 1.8 × 1.2 = 17.28 km; go well past it.
	p := Point{Lon: 10.5, Lat: 21.0}
	assert.Equal(t, 0.0, DepthAt(p, []RiverSegment{testRiver}, Scenario2m, 5.0))
}

func TestDepthAt_LinearFalloff(t *testing.T) {
	// Halfway to the buffer edge the depth is half the scenario depth.
	p := Point{Lon: 10.5, Lat: 20.0 + 3.24/111.0}
	depth := DepthAt(p, []RiverSegment{testRiver}, Scenario1m, 5.0)
	assert.InDelta(t, 0.5, depth, 1e-9)
}

func TestDepthAt_NearestRiverWins(t *testing.T) {
	farRiver := RiverSegment{
		Name:       "Far",
		Centerline: []Point{{Lon: 10.0, Lat: 25.0}, {Lon: 11.0, Lat: 25.0}},
		AvgWidthM:  900,
		FloodProne: true,
	}
	// On the test river's centerline; the far river must not dilute the depth.
	p := Point{Lon: 10.5, Lat: 20.0}
	depth := DepthAt(p, []RiverSegment{farRiver, testRiver}, Scenario2m, 5.0)
	assert.Equal(t, 2.0, depth)
}

func TestDepthAt_NoRivers(t *testing.T) {
	assert.Equal(t, 0.0, DepthAt(Point{Lon: 10.5, Lat: 20.0}, nil, Scenario2m, 5.0))
}

func TestDepthAt_ClampsToSegmentEndpoints(t *testing.T) {
	// Due east of the eastern endpoint: distance is to the endpoint, not
	// the segment's infinite extension.
	p := Point{Lon: 11.0 + 20.0/111.0, Lat: 20.0}
	assert.Equal(t, 0.0, DepthAt(p, []RiverSegment{testRiver}, Scenario1m, 5.0))
}
