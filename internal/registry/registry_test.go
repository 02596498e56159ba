package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storm-buster/jal-setu/internal/domain"
)

func TestNew_ValidatesAllData(t *testing.T) {
	network, err := New()
	require.NoError(t, err)
	require.NotNil(t, network)
}

func TestRiversFor_EveryRegion(t *testing.T) {
	network, err := New()
	require.NoError(t, err)

	wantCounts := map[domain.Region]int{
		domain.RegionBihar:        4,
		domain.RegionUttarakhand:  4,
		domain.RegionJharkhand:    3,
		domain.RegionUttarPradesh: 4,
	}

	for region, want := range wantCounts {
		rivers, err := network.RiversFor(region)
		require.NoError(t, err, "region %s", region)
		assert.Len(t, rivers, want, "region %s", region)
		assert.Equal(t, want, network.RiverCount(region))

		for _, river := range rivers {
			assert.GreaterOrEqual(t, len(river.Centerline), 2, "river %s", river.Name)
			assert.Positive(t, river.AvgWidthM, "river %s", river.Name)
		}
	}
}

func TestRiversFor_BiharRivers(t *testing.T) {
	network, err := New()
	require.NoError(t, err)

	rivers, err := network.RiversFor(domain.RegionBihar)
	require.NoError(t, err)

	names := make([]string, 0, len(rivers))
	for _, r := range rivers {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Ganges", "Kosi", "Gandak", "Bagmati"}, names)
}

func TestRiversFor_UnknownRegion(t *testing.T) {
	network, err := New()
	require.NoError(t, err)

	_, err = network.RiversFor(domain.Region("Atlantis"))
	assert.ErrorIs(t, err, domain.ErrInvalidRegion)
}

func TestTerrainSlopeDeg(t *testing.T) {
	network, err := New()
	require.NoError(t, err)

	// Plains are flatter than Himalayan foothills.
	assert.Less(t,
		network.TerrainSlopeDeg(domain.RegionBihar),
		network.TerrainSlopeDeg(domain.RegionUttarakhand),
	)

	// Unknown regions fall back to the plains default.
	assert.Equal(t, 2.0, network.TerrainSlopeDeg(domain.Region("Atlantis")))
}
