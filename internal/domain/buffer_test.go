package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferDistanceKm_WorkedExample(t *testing.T) {
	// base 3.0 × widthFactor 1.8 × slopeFactor 1.2 = 6.48 km
	got := BufferDistanceKm(Scenario1m, 800, 5.0)
	assert.InDelta(t, 6.48, got, 0.01)
}

func TestBufferDistanceKm_ZeroScenario(t *testing.T) {
	assert.Equal(t, 0.0, BufferDistanceKm(Scenario0m, 800, 5.0))
	assert.Equal(t, 0.0, BufferDistanceKm(Scenario0m, 0, 0))
	assert.Equal(t, 0.0, BufferDistanceKm(Scenario0m, 10000, 0.01))
}

func TestBufferDistanceKm_MonotonicInScenario(t *testing.T) {
	widths := []float64{250, 400, 800, 900}
	slopes := []float64{0.5, 2.0, 5.0, 12.0}

	for _, w := range widths {
		for _, s := range slopes {
			b0 := BufferDistanceKm(Scenario0m, w, s)
			b1 := BufferDistanceKm(Scenario1m, w, s)
			b2 := BufferDistanceKm(Scenario2m, w, s)
			assert.LessOrEqual(t, b0, b1, "width %.0f slope %.1f", w, s)
			assert.LessOrEqual(t, b1, b2, "width %.0f slope %.1f", w, s)
		}
	}
}

func TestBufferDistanceKm_SlopeClamp(t *testing.T) {
	clamped := BufferDistanceKm(Scenario1m, 500, 0.1)
	assert.Equal(t, clamped, BufferDistanceKm(Scenario1m, 500, 0))
	assert.Equal(t, clamped, BufferDistanceKm(Scenario1m, 500, -3))

	// Clamp at 0.1° bounds the slope factor at 11.
	assert.InDelta(t, 3.0*1.5*11.0, clamped, 1e-9)
}

func TestBufferDistanceKm_NeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, BufferDistanceKm(Scenario2m, -5000, 2.0), 0.0)
}
