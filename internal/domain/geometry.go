package domain

import (
	"math"

	"github.com/twpayne/go-geom"
)

// BufferQuads expands a centerline into one quad polygon per consecutive
// vertex pair. Each quad is the segment offset by bufferKm along its left
// and right perpendiculars in a locally-flat frame, closed counterclockwise
// per GeoJSON ring convention. A zero buffer (the "0m" scenario) returns
// nil without touching the geometry, as does a centerline shorter than two
// points. Zero-length segments are skipped.
func BufferQuads(centerline []Point, bufferKm float64) []*geom.Polygon {
	if bufferKm <= 0 || len(centerline) < 2 {
		return nil
	}

	offsetDeg := bufferKm / kmPerDegree

	quads := make([]*geom.Polygon, 0, len(centerline)-1)
	for i := 0; i < len(centerline)-1; i++ {
		if quad := segmentQuad(centerline[i], centerline[i+1], offsetDeg); quad != nil {
			quads = append(quads, quad)
		}
	}
	return quads
}

// segmentQuad builds the counterclockwise ring
// [a−n, b−n, b+n, a+n, a−n] where n is the segment's unit left
// perpendicular scaled by offsetDeg.
func segmentQuad(a, b Point, offsetDeg float64) *geom.Polygon {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}

	// Unit left perpendicular of (dx, dy), scaled to the offset.
	nx := -dy / length * offsetDeg
	ny := dx / length * offsetDeg

	flat := []float64{
		a.Lon - nx, a.Lat - ny,
		b.Lon - nx, b.Lat - ny,
		b.Lon + nx, b.Lat + ny,
		a.Lon + nx, a.Lat + ny,
		a.Lon - nx, a.Lat - ny,
	}

	ring := geom.NewLinearRingFlat(geom.XY, flat)
	poly := geom.NewPolygon(geom.XY).SetSRID(4326)
	if err := poly.Push(ring); err != nil {
		return nil
	}
	return poly
}
