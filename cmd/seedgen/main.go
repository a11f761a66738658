package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/okian/volunteer-match/internal/seedgen"
	"github.com/okian/volunteer-match/pkg/logger"
)

const (
	outputPermission = 0o600
	generateTimeout  = time.Minute
)

func main() {
	def := seedgen.DefaultConfig()
	var (
		volunteers = flag.Int("volunteers", def.Volunteers, "Number of volunteers to generate")
		events     = flag.Int("events", def.Events, "Number of events to generate")
		lat        = flag.Float64("lat", def.CenterLat, "Latitude of the scatter center")
		lng        = flag.Float64("lng", def.CenterLng, "Longitude of the scatter center")
		radius     = flag.Float64("radius", def.RadiusMiles, "Scatter radius in miles")
		horizon    = flag.Int("days", def.HorizonDays, "Events start within this many days")
		seed       = flag.Uint64("seed", 0, "Random seed; 0 picks one at random")
		output     = flag.String("output", "", "Output YAML file (default: stdout)")
	)
	flag.Parse()

	if err := logger.InitWithFormat(logger.FormatText, os.Stderr); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	cfg := seedgen.Config{
		Volunteers:  *volunteers,
		Events:      *events,
		CenterLat:   *lat,
		CenterLng:   *lng,
		RadiusMiles: *radius,
		HorizonDays: *horizon,
		RandSeed:    *seed,
	}
	if err := run(ctx, cfg, *output); err != nil {
		logger.Get().Error(ctx, "seed generation failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg seedgen.Config, output string) error {
	fixture, err := seedgen.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputPermission)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fixture); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}

	logger.Get().Info(ctx, "seed generated",
		logger.Int("volunteers", len(fixture.Volunteers)),
		logger.Int("events", len(fixture.Events)),
		logger.String("output", output),
	)
	return nil
}
