package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegion reports a region outside the closed set.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidScenario reports a scenario outside the closed set.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// Region is one of the four fixed geographic areas the service analyzes.
type Region string

const (
	RegionBihar        Region = "Bihar"
	RegionUttarakhand  Region = "Uttarakhand"
	RegionJharkhand    Region = "Jharkhand"
	RegionUttarPradesh Region = "Uttar Pradesh"
)

// Regions returns the closed set of supported regions in a fixed order.
func Regions() []Region {
	return []Region{RegionBihar, RegionUttarakhand, RegionJharkhand, RegionUttarPradesh}
}

// ParseRegion validates a raw region string against the closed set.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionBihar, RegionUttarakhand, RegionJharkhand, RegionUttarPradesh:
		return Region(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRegion, s)
	}
}

// Valid reports whether the region is a member of the closed set.
func (r Region) Valid() bool {
	_, err := ParseRegion(string(r))
	return err == nil
}

// Scenario is a simulated flood depth above normal river level.
// Scenarios are ordered: Scenario0m < Scenario1m < Scenario2m.
type Scenario string

const (
	Scenario0m Scenario = "0m"
	Scenario1m Scenario = "1m"
	Scenario2m Scenario = "2m"
)

// Scenarios returns the closed set of scenarios in ascending depth order.
func Scenarios() []Scenario {
	return []Scenario{Scenario0m, Scenario1m, Scenario2m}
}

// ParseScenario validates a raw scenario string against the closed set.
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case Scenario0m, Scenario1m, Scenario2m:
		return Scenario(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScenario, s)
	}
}

// Valid reports whether the scenario is a member of the closed set.
func (s Scenario) Valid() bool {
	_, err := ParseScenario(string(s))
	return err == nil
}

// DepthMeters returns the flood depth the scenario simulates.
func (s Scenario) DepthMeters() float64 {
	switch s {
	case Scenario1m:
		return 1.0
	case Scenario2m:
		return 2.0
	default:
		return 0.0
	}
}

// BaseBufferKm returns the scenario's canonical buffer distance before
// per-river width and terrain adjustments. This is the value reported in
// response metadata.
func (s Scenario) BaseBufferKm() float64 {
	switch s {
	case Scenario1m:
		return 3.0
	case Scenario2m:
		return 8.0
	default:
		return 0.0
	}
}
