package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kos368437/networks-2-lab3/internal/enrichment"
	"github.com/kos368437/networks-2-lab3/internal/report"
	"github.com/kos368437/networks-2-lab3/internal/selection"
	"github.com/kos368437/networks-2-lab3/internal/types"
)

const (
	placePrompt   = "Enter the name of the place: "
	variantPrompt = "Choose one variant: "
)

// Stage names carried by StageError
const (
	StageInput     = "input"
	StageGeocode   = "geocode"
	StageSelection = "selection"
	StageEnrich    = "enrich"
)

// ErrEmptyQuery is returned when the operator enters a blank place name
var ErrEmptyQuery = errors.New("place name is empty")

// StageError is an unrecoverable failure that ends the run
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Prompter reads one line of operator input after showing a label
type Prompter interface {
	Prompt(label string) (string, error)
}

// Geocoder resolves a free-text query to ordered candidates
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]types.LocationCandidate, error)
}

// Enricher starts the weather, places and description requests for a location
type Enricher interface {
	Enrich(ctx context.Context, coords types.Coords) (*enrichment.Enrichment, error)
}

// TimezoneResolver looks up the IANA time zone of a location
type TimezoneResolver interface {
	GetTimezone(coords types.Coords) (string, error)
}

// Pipeline runs one query from prompt to printed report
type Pipeline struct {
	geocoder  Geocoder
	enricher  Enricher
	timezones TimezoneResolver
	reporter  *report.Reporter
	logger    *slog.Logger
}

// New builds a pipeline. timezones may be nil, in which case no time zone line is printed.
func New(geocoder Geocoder, enricher Enricher, timezones TimezoneResolver, reporter *report.Reporter, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		geocoder:  geocoder,
		enricher:  enricher,
		timezones: timezones,
		reporter:  reporter,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run prompts for a place, lets the operator pick a candidate and prints the
// weather and places report for it to out. Weather, places and description
// failures are printed as degraded lines; anything else is a *StageError.
func (p *Pipeline) Run(ctx context.Context, prompter Prompter, out io.Writer) error {
	query, err := prompter.Prompt(placePrompt)
	if err != nil {
		return &StageError{Stage: StageInput, Err: fmt.Errorf("failed to read place name: %w", err)}
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return &StageError{Stage: StageInput, Err: ErrEmptyQuery}
	}

	candidates, err := p.geocoder.Geocode(ctx, query)
	if err != nil {
		return &StageError{Stage: StageGeocode, Err: err}
	}
	p.logger.Debug("geocoded query", "query", query, "candidates", len(candidates))

	if len(candidates) == 0 {
		fmt.Fprintln(out, "No candidates found.")
		return &StageError{Stage: StageGeocode, Err: selection.ErrNoCandidates}
	}

	selection.Present(out, candidates)

	input, err := prompter.Prompt(variantPrompt)
	if err != nil {
		return &StageError{Stage: StageInput, Err: fmt.Errorf("failed to read variant: %w", err)}
	}

	chosen, err := selection.Choose(candidates, input)
	if err != nil {
		return &StageError{Stage: StageSelection, Err: err}
	}

	fmt.Fprintln(out, chosen.Summary())
	p.printTimezone(out, chosen.Coordinates)

	result, err := p.enricher.Enrich(ctx, chosen.Coordinates)
	if result == nil {
		if err == nil {
			err = errors.New("enrichment returned no result")
		}
		return &StageError{Stage: StageEnrich, Err: err}
	}

	// a non-nil err here means the places list is unavailable; weather is still reported
	p.reporter.Weather(out, result.Weather)
	p.reporter.Places(out, result.Points, err)

	return nil
}

func (p *Pipeline) printTimezone(out io.Writer, coords types.Coords) {
	if p.timezones == nil {
		return
	}

	name, err := p.timezones.GetTimezone(coords)
	if err != nil {
		p.logger.Debug("timezone not resolved", "error", err)
		return
	}
	fmt.Fprintf(out, "Time zone: %s\n", name)
}
