package domain

import "fmt"

// Point is a WGS-84 longitude/latitude coordinate pair.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// RiverSegment is one river's simplified course within a region.
// Segments are loaded once at startup and never mutated afterwards;
// callers must treat the centerline as read-only.
type RiverSegment struct {
	Name       string
	Centerline []Point // ordered along the river, ≥2 points
	AvgWidthM  float64
	FloodProne bool
}

// Validate rejects rivers that cannot produce geometry. It is called at
// registry construction so malformed data fails the process at startup,
// not a request.
func (r RiverSegment) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("river segment has no name")
	}
	if len(r.Centerline) < 2 {
		return fmt.Errorf("river %q: centerline has %d points, need at least 2", r.Name, len(r.Centerline))
	}
	if r.AvgWidthM <= 0 {
		return fmt.Errorf("river %q: average width %.1f m must be positive", r.Name, r.AvgWidthM)
	}
	return nil
}
