// Package registry holds the static river network data the geometry engine
// operates on. Networks are loaded and validated once at process start and
// are immutable afterwards.
package registry

import (
	"fmt"

	"github.com/storm-buster/jal-setu/internal/domain"
)

// Network is the per-region river registry. Construct with New; the zero
// value is not usable.
type Network struct {
	rivers map[domain.Region][]domain.RiverSegment
	slopes map[domain.Region]float64
}

// New builds the registry from the built-in river networks, validating
// every segment. A malformed segment fails construction so bad data stops
// the process at startup rather than surfacing per request.
func New() (*Network, error) {
	for region, rivers := range riverNetworks {
		if len(rivers) == 0 {
			return nil, fmt.Errorf("region %s has no rivers", region)
		}
		for _, river := range rivers {
			if err := river.Validate(); err != nil {
				return nil, fmt.Errorf("region %s: %w", region, err)
			}
		}
		if _, ok := terrainSlopes[region]; !ok {
			return nil, fmt.Errorf("region %s has no terrain slope", region)
		}
	}
	return &Network{rivers: riverNetworks, slopes: terrainSlopes}, nil
}

// RiversFor returns the rivers of a region. The returned slice is shared,
// read-only data; callers must not mutate it. Fails only for a region
// outside the closed set, which callers are expected to have validated.
func (n *Network) RiversFor(region domain.Region) ([]domain.RiverSegment, error) {
	rivers, ok := n.rivers[region]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRegion, region)
	}
	return rivers, nil
}

// TerrainSlopeDeg returns the region's representative terrain slope in
// degrees, used by the buffer distance calculation. Unknown regions get
// the flattest plains default.
func (n *Network) TerrainSlopeDeg(region domain.Region) float64 {
	if slope, ok := n.slopes[region]; ok {
		return slope
	}
	return 2.0
}

// RiverCount returns the number of registered rivers for a region, 0 for
// an unknown region.
func (n *Network) RiverCount(region domain.Region) int {
	return len(n.rivers[region])
}
