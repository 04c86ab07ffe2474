package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/sourcegraph/conc/stream"

	"github.com/kos368437/networks-2-lab3/internal/async"
	"github.com/kos368437/networks-2-lab3/internal/enrichment"
	"github.com/kos368437/networks-2-lab3/internal/types"
)

const (
	weatherHeader = "\n///////////////////// WEATHER /////////////////////"
	placesHeader  = "\n/////////////// INTERESTING PLACES NEARBY ///////////////"

	descriptionUnavailable = "(description unavailable)"
)

// Reporter prints the weather and places sections of a run
type Reporter struct {
	logger *slog.Logger
}

func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{
		logger: logger.With("component", "reporter"),
	}
}

// Weather waits for the weather request and prints its section. A failed
// request is printed in place of the section and does not stop the report.
func (r *Reporter) Weather(w io.Writer, weather *async.Future[types.WeatherReport]) {
	fmt.Fprintln(w, weatherHeader)

	report, err := weather.Await()
	if err != nil {
		r.logger.Debug("weather unavailable", "error", err)
		fmt.Fprintf(w, "Weather unavailable: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Temperature: %s°C\n", formatFloat(report.Temperature))
	fmt.Fprintf(w, "Feels like: %s°C\n", formatFloat(report.FeelsLike))
	fmt.Fprintln(w, "State:")
	for _, condition := range report.Conditions {
		fmt.Fprintln(w, condition)
	}
	fmt.Fprintf(w, "Pressure: %.3f mmHg\n", report.Pressure.MmHg())
	fmt.Fprintf(w, "Humidity: %d%%\n", report.Humidity)
}

// Places prints one line per pending description. All descriptions are
// awaited concurrently but lines are written in the order of points.
func (r *Reporter) Places(w io.Writer, points []enrichment.PendingDescription, placesErr error) {
	fmt.Fprintln(w, placesHeader)

	if placesErr != nil {
		fmt.Fprintf(w, "Places unavailable: %v\n", placesErr)
		return
	}
	if len(points) == 0 {
		fmt.Fprintln(w, "No places nearby.")
		return
	}

	// stream runs callbacks one at a time in submission order
	s := stream.New()
	for _, pending := range points {
		s.Go(func() stream.Callback {
			description, err := pending.Description.Await()
			if err != nil {
				r.logger.Warn("description unavailable", "id", pending.Point.ID, "error", err)
			}
			line := FormatPlaceLine(pending.Point, description, err)
			return func() {
				fmt.Fprintln(w, line)
			}
		})
	}
	s.Wait()
}

// FormatPlaceLine renders "<name>: <kinds>", followed by ". Descr: <text>"
// when the description is non-empty, or an unavailable marker when err is set.
func FormatPlaceLine(point types.PointOfInterest, description types.PointDescription, err error) string {
	line := point.Name + ": " + point.Kinds
	if err != nil {
		return line + " " + descriptionUnavailable
	}
	if description.Text != "" {
		line += ". Descr: " + description.Text
	}
	return line
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
