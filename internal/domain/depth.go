package domain

import "math"

// DepthAt estimates flood depth in meters at a point, given every river in
// the region and the region's representative terrain slope. The nearest
// river (by minimum point-to-segment distance across all centerlines)
// determines the buffer distance; depth falls off linearly from the
// scenario depth on the centerline to zero at the buffer edge:
//
//	depth = scenarioDepth * max(0, 1 - d/b)
//
// Points at or beyond the buffer, and every point under the "0m" scenario,
// are dry. Pure function; callable without generating any geometry.
func DepthAt(p Point, rivers []RiverSegment, scenario Scenario, terrainSlopeDeg float64) float64 {
	scenarioDepth := scenario.DepthMeters()
	if scenarioDepth == 0 || len(rivers) == 0 {
		return 0.0
	}

	minDistKm := math.Inf(1)
	var nearest RiverSegment
	for _, river := range rivers {
		d := distanceToCenterlineKm(p, river.Centerline)
		if d < minDistKm {
			minDistKm = d
			nearest = river
		}
	}
	if math.IsInf(minDistKm, 1) {
		return 0.0
	}

	bufferKm := BufferDistanceKm(scenario, nearest.AvgWidthM, terrainSlopeDeg)
	if bufferKm == 0 || minDistKm >= bufferKm {
		return 0.0
	}
	return scenarioDepth * (1.0 - minDistKm/bufferKm)
}

// distanceToCenterlineKm returns the minimum distance from p to any
// segment of the polyline, in kilometers under the locally-flat
// approximation.
func distanceToCenterlineKm(p Point, centerline []Point) float64 {
	if len(centerline) == 0 {
		return math.Inf(1)
	}
	if len(centerline) == 1 {
		return pointDistanceKm(p, centerline[0])
	}

	minDist := math.Inf(1)
	for i := 0; i < len(centerline)-1; i++ {
		if d := pointSegmentDistanceKm(p, centerline[i], centerline[i+1]); d < minDist {
			minDist = d
		}
	}
	return minDist
}

// pointSegmentDistanceKm projects p onto segment ab, clamping to the
// endpoints, and returns the distance in kilometers.
func pointSegmentDistanceKm(p, a, b Point) float64 {
	ax := (p.Lon - a.Lon) * kmPerDegree
	ay := (p.Lat - a.Lat) * kmPerDegree
	bx := (b.Lon - a.Lon) * kmPerDegree
	by := (b.Lat - a.Lat) * kmPerDegree

	segLenSq := bx*bx + by*by
	if segLenSq == 0 {
		return math.Hypot(ax, ay)
	}

	t := (ax*bx + ay*by) / segLenSq
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(ax-t*bx, ay-t*by)
}

func pointDistanceKm(p, q Point) float64 {
	return math.Hypot((p.Lon-q.Lon)*kmPerDegree, (p.Lat-q.Lat)*kmPerDegree)
}
