package domain

// kmPerDegree is the locally-flat conversion between degrees and
// kilometers. Exact at the equator for latitude; the regions served here
// span a few hundred kilometers, where the error is well within the
// accuracy of the buffer model itself.
const kmPerDegree = 111.0

// minSlopeDeg clamps terrain slope away from zero so the slope factor
// stays bounded on flat terrain.
const minSlopeDeg = 0.1

// BufferDistanceKm computes the lateral flood extent around a river for a
// scenario, adjusted for river width and terrain slope. The "0m" scenario
// always yields 0 regardless of the other inputs.
func BufferDistanceKm(scenario Scenario, riverWidthM, terrainSlopeDeg float64) float64 {
	base := scenario.BaseBufferKm()
	if base == 0 {
		return 0.0
	}

	widthFactor := 1.0 + riverWidthM/1000.0

	slope := terrainSlopeDeg
	if slope < minSlopeDeg {
		slope = minSlopeDeg
	}
	slopeFactor := 1.0 + 1.0/slope

	buffer := base * widthFactor * slopeFactor
	if buffer < 0 {
		return 0.0
	}
	return buffer
}
