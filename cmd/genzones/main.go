// Command genzones dumps the flood-zone FeatureCollection for one
// region/scenario pair as indented GeoJSON, for map-layer development and
// data inspection without running the service.
//
// Usage:
//
//	genzones -region Bihar -scenario 1m [-out zones.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/storm-buster/jal-setu/internal/domain"
	"github.com/storm-buster/jal-setu/internal/floodzone"
	"github.com/storm-buster/jal-setu/internal/observability"
	"github.com/storm-buster/jal-setu/internal/registry"
)

func main() {
	region := flag.String("region", "", "region name (e.g. Bihar)")
	scenario := flag.String("scenario", "", "flood scenario: 0m, 1m, or 2m")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *region == "" || *scenario == "" {
		fmt.Fprintf(os.Stderr, "usage: genzones -region <region> -scenario <0m|1m|2m> [-out file]\n")
		fmt.Fprintf(os.Stderr, "regions: %v\n", domain.Regions())
		os.Exit(2)
	}

	if err := run(*region, *scenario, *out); err != nil {
		fmt.Fprintf(os.Stderr, "genzones: %v\n", err)
		os.Exit(1)
	}
}

func run(region, scenario, out string) error {
	rivers, err := registry.New()
	if err != nil {
		return fmt.Errorf("load river registry: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := floodzone.NewService(rivers, nil, nil, logger, observability.NewMetrics(), clockwork.NewRealClock())

	resp, err := svc.GetFloodZones(context.Background(), region, scenario)
	if err != nil {
		return err
	}
	if resp.Metadata.Error != "" {
		return fmt.Errorf("generation degraded: %s", resp.Metadata.Error)
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	data = append(data, '\n')

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
