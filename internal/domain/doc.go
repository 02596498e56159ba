// Package domain models river-centric flood zones for the Indian flood-prone
// regions served by Jal Setu.
//
// # Regions and scenarios
//
// The service covers a closed set of four regions (Bihar, Uttarakhand,
// Jharkhand, Uttar Pradesh) and three flood scenarios expressed as water
// depth above normal river level: "0m", "1m", and "2m". Both sets are
// modelled as typed enums so invalid values are rejected at the parse
// boundary, never inside business logic. Scenario "0m" is the baseline:
// it produces no flood zones anywhere, by definition.
//
// # Buffer model
//
// The lateral flood extent around a river centerline is a buffer distance
// in kilometers:
//
//	base      = {0m: 0, 1m: 3, 2m: 8} km
//	width     = 1 + riverWidthM / 1000        (wider rivers flood further)
//	slope     = 1 + 1 / max(slopeDeg, 0.1)   (flatter terrain floods further)
//	buffer_km = base * width * slope
//
// The slope clamp at 0.1° keeps the factor bounded on perfectly flat
// terrain. For the "0m" scenario the result is forced to zero regardless
// of the other factors. Worked example: (1m, 800 m wide, 5.0° slope) →
// 3.0 × 1.8 × 1.2 = 6.48 km.
//
// # Geometry
//
// Flood-zone polygons are generated per centerline segment: each
// consecutive vertex pair is expanded into a quad by offsetting both
// endpoints along the segment's perpendicular, using a locally-flat
// approximation of 111 km per degree. Adjacent quads overlap near bends;
// the map layer renders them with a single translucent fill, so the
// overlap is a rendering detail, not a correctness concern. Output is
// GeoJSON: one Polygon feature per quad with river metadata in the
// feature properties.
//
// # Depth falloff
//
// Point depth queries interpolate linearly from the scenario depth on the
// centerline down to zero at the buffer edge, using the minimum
// point-to-segment distance across every river in the region.
//
// All functions in this package are pure: identical inputs produce
// byte-identical output, which is what makes response caching safe.
package domain
