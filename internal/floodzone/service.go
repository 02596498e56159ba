// Package floodzone orchestrates flood-zone generation: registry lookup,
// buffer calculation, geometry generation, caching, and event publishing.
package floodzone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/storm-buster/jal-setu/internal/domain"
	"github.com/storm-buster/jal-setu/internal/observability"
)

// RiverSource supplies river networks per region. Implemented by
// registry.Network.
type RiverSource interface {
	RiversFor(region domain.Region) ([]domain.RiverSegment, error)
	TerrainSlopeDeg(region domain.Region) float64
	RiverCount(region domain.Region) int
}

// GeometryCache memoizes generated responses per region/scenario.
type GeometryCache interface {
	Get(key CacheKey) (*domain.FloodZoneResponse, bool)
	Put(key CacheKey, value *domain.FloodZoneResponse)
}

// EventPublisher receives an audit event each time flood zones are
// generated on a cache miss. Publishing failures are soft: they are
// logged and counted, never surfaced to the caller.
type EventPublisher interface {
	PublishGenerated(ctx context.Context, event domain.GenerationEvent) error
}

// Service is the flood-zone query engine behind the HTTP API.
type Service struct {
	rivers    RiverSource
	cache     GeometryCache
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

// NewService wires the flood-zone engine. cache may be nil to disable
// memoization and publisher may be nil to disable audit events; both
// degrade to direct generation, mirroring how the rest of the service
// treats optional collaborators.
func NewService(rivers RiverSource, cache GeometryCache, publisher EventPublisher, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Service {
	return &Service{
		rivers:    rivers,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
}

// CheckReadiness reports whether the service can answer queries.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.rivers == nil {
		return errors.New("river registry not loaded")
	}
	return nil
}

// GetFloodZones returns the flood-zone FeatureCollection for a raw
// region/scenario pair. Invalid values return ErrInvalidRegion or
// ErrInvalidScenario before any computation. Internal generation faults
// never become errors: the response carries empty features and
// metadata.error so consumers can render nothing instead of crashing.
func (s *Service) GetFloodZones(ctx context.Context, regionStr, scenarioStr string) (*domain.FloodZoneResponse, error) {
	region, err := domain.ParseRegion(regionStr)
	if err != nil {
		s.metrics.GeometryRequests.WithLabelValues("invalid").Inc()
		return nil, err
	}
	scenario, err := domain.ParseScenario(scenarioStr)
	if err != nil {
		s.metrics.GeometryRequests.WithLabelValues("invalid").Inc()
		return nil, err
	}
	s.metrics.GeometryRequests.WithLabelValues("served").Inc()

	key := CacheKey{Region: region, Scenario: scenario}
	if s.cache != nil {
		if resp, ok := s.cache.Get(key); ok {
			s.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return resp, nil
		}
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	resp := s.generate(region, scenario)
	s.metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	// Only clean generations are cached; a degraded response should be
	// retried on the next request.
	if resp.Metadata.Error == "" && s.cache != nil {
		s.cache.Put(key, resp)
	}

	s.publishGenerated(ctx, resp)
	return resp, nil
}

// DepthAt returns the interpolated flood depth in meters at a point.
// Same validation contract as GetFloodZones; no geometry is generated.
func (s *Service) DepthAt(regionStr, scenarioStr string, p domain.Point) (float64, error) {
	region, err := domain.ParseRegion(regionStr)
	if err != nil {
		return 0, err
	}
	scenario, err := domain.ParseScenario(scenarioStr)
	if err != nil {
		return 0, err
	}

	rivers, err := s.rivers.RiversFor(region)
	if err != nil {
		return 0, err
	}

	s.metrics.DepthQueries.Inc()
	return domain.DepthAt(p, rivers, scenario, s.rivers.TerrainSlopeDeg(region)), nil
}

// generate builds a complete response for a validated region/scenario.
// Any panic while computing geometry is recovered into an empty-feature
// response with metadata.error set.
func (s *Service) generate(region domain.Region, scenario domain.Scenario) (resp *domain.FloodZoneResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("flood zone generation failed",
				"region", region,
				"scenario", scenario,
				"panic", r,
			)
			s.metrics.GenerationFailures.Inc()
			resp = domain.NewFloodZoneResponse(region, scenario, 0, s.clock.Now().UTC())
			resp.Metadata.Error = fmt.Sprintf("generation failed: %v", r)
		}
	}()

	rivers, err := s.rivers.RiversFor(region)
	if err != nil {
		s.metrics.GenerationFailures.Inc()
		resp = domain.NewFloodZoneResponse(region, scenario, 0, s.clock.Now().UTC())
		resp.Metadata.Error = err.Error()
		return resp
	}

	resp = domain.NewFloodZoneResponse(region, scenario, len(rivers), s.clock.Now().UTC())
	slope := s.rivers.TerrainSlopeDeg(region)

	for _, river := range rivers {
		bufferKm := domain.BufferDistanceKm(scenario, river.AvgWidthM, slope)
		resp.Features = append(resp.Features, domain.RiverFeatures(river, bufferKm, region, scenario)...)
	}

	s.metrics.FeaturesGenerated.Observe(float64(len(resp.Features)))
	s.logger.Debug("flood zones generated",
		"region", region,
		"scenario", scenario,
		"rivers", len(rivers),
		"features", len(resp.Features),
	)
	return resp
}

// publishGenerated emits the audit event for a fresh generation.
func (s *Service) publishGenerated(ctx context.Context, resp *domain.FloodZoneResponse) {
	if s.publisher == nil || resp.Metadata.Error != "" {
		return
	}

	event := domain.GenerationEvent{
		Region:       resp.Region,
		Scenario:     resp.Scenario,
		RiverCount:   resp.Metadata.RiverCount,
		FeatureCount: len(resp.Features),
		BufferKm:     resp.Metadata.BufferKm,
		GeneratedAt:  resp.Metadata.GeneratedAt,
	}
	if err := s.publisher.PublishGenerated(ctx, event); err != nil {
		s.logger.Warn("publish generation event failed",
			"region", resp.Region,
			"scenario", resp.Scenario,
			"error", err,
		)
		s.metrics.EventsPublished.WithLabelValues("error").Inc()
		return
	}
	s.metrics.EventsPublished.WithLabelValues("success").Inc()
}
