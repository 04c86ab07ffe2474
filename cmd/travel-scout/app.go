package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/kos368437/networks-2-lab3/internal/config"
	"github.com/kos368437/networks-2-lab3/internal/console"
	"github.com/kos368437/networks-2-lab3/internal/enrichment"
	"github.com/kos368437/networks-2-lab3/internal/geocode"
	"github.com/kos368437/networks-2-lab3/internal/pipeline"
	"github.com/kos368437/networks-2-lab3/internal/places"
	"github.com/kos368437/networks-2-lab3/internal/remote"
	"github.com/kos368437/networks-2-lab3/internal/report"
	"github.com/kos368437/networks-2-lab3/internal/timezone"
	"github.com/kos368437/networks-2-lab3/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
}

// NewApp wires every service around one shared remote client
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	rc := remote.NewClient(cfg.Remote.Timeout, logger)

	geocodeService := geocode.NewGeocodeService(cfg.Geocoder, rc, logger)
	weatherService := weather.NewWeatherService(cfg.Weather, rc, logger)
	placesService := places.NewPlacesService(cfg.Places, rc, logger)
	enrichmentService := enrichment.NewService(weatherService, placesService, cfg.Places.Radius, logger)

	var timezones pipeline.TimezoneResolver
	if tz, err := timezone.NewService(); err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	} else {
		timezones = tz
	}

	run := pipeline.New(geocodeService, enrichmentService, timezones, report.NewReporter(logger), logger)

	app := &App{
		logger:   logger,
		pipeline: run,
	}

	logger.Debug("application initialized")

	return app
}

// Run performs one interactive query against in and out
func (app *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return app.pipeline.Run(ctx, console.NewPrompter(in, out), out)
}
