package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kos368437/networks-2-lab3/internal/config"
	"github.com/kos368437/networks-2-lab3/internal/pipeline"
)

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return newUpstreamWithWeather(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"weather":[{"id":600,"main":"Snow","description":"light snow"}],
			"main":{"temp":-9.4,"feels_like":-15.2,"pressure":1000,"humidity":79},"name":"Novosibirsk"}`)
	})
}

func newUpstreamWithWeather(t *testing.T, weather http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /geocode", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Novosibirsk" {
			t.Errorf("geocode q = %q, want %q", r.URL.Query().Get("q"), "Novosibirsk")
		}
		fmt.Fprint(w, `{"hits":[
			{"name":"Novosibirsk","country":"Russia","state":"Novosibirsk Oblast","point":{"lat":55.0282171,"lng":82.9234509}},
			{"name":"Novosibirsk Reservoir","country":"Russia","point":{"lat":54.8,"lng":82.9}}
		],"locale":"en"}`)
	})
	mux.HandleFunc("GET /weather", weather)
	mux.HandleFunc("GET /otm/en/places/radius", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"xid":"W1","name":"Opera and Ballet Theatre","dist":120.5,"rate":3,"kinds":"theatres_and_entertainments","point":{"lon":82.92,"lat":55.03}},
			{"xid":"W2","name":"Chapel of St. Nicholas","dist":310.1,"rate":2,"kinds":"religion,churches","point":{"lon":82.92,"lat":55.03}}
		]`)
	})
	mux.HandleFunc("GET /otm/en/places/xid/{xid}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("xid") {
		case "W1":
			// answer the first point last
			time.Sleep(30 * time.Millisecond)
			fmt.Fprint(w, `{"xid":"W1","name":"Opera and Ballet Theatre","info":{"descr":"The largest theatre in Russia."}}`)
		default:
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestConfig(base string) *config.Config {
	return &config.Config{
		Log:      config.LogConfig{Level: "error", Format: "text"},
		Remote:   config.RemoteConfig{Timeout: 5 * time.Second},
		Geocoder: config.GeocoderConfig{BaseURL: base + "/geocode", APIKey: "gh", Locale: "en", Limit: 20},
		Weather:  config.WeatherConfig{BaseURL: base + "/weather", APIKey: "ow", Lang: "en"},
		Places:   config.PlacesConfig{BaseURL: base + "/otm", APIKey: "otm", Lang: "en", Radius: 2000},
	}
}

func TestApp_Run(t *testing.T) {
	srv := newUpstream(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApp(newTestConfig(srv.URL), logger)

	var out bytes.Buffer
	if err := app.Run(context.Background(), strings.NewReader("Novosibirsk\n0\n"), &out); err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}

	got := out.String()
	wantInOrder := []string{
		"Enter the name of the place: ",
		"0: Novosibirsk, Russia, Novosibirsk Oblast, , ",
		"1: Novosibirsk Reservoir, Russia, , , ",
		"Choose one variant: ",
		"Temperature: -9.4°C",
		"Feels like: -15.2°C",
		"light snow",
		"Pressure: 750.061 mmHg",
		"Humidity: 79%",
		"Opera and Ballet Theatre: theatres_and_entertainments. Descr: The largest theatre in Russia.",
		"Chapel of St. Nicholas: religion,churches (description unavailable)",
	}

	rest := got
	for _, want := range wantInOrder {
		i := strings.Index(rest, want)
		if i < 0 {
			t.Fatalf("Run() output missing %q after the previous lines:\n%s", want, got)
		}
		rest = rest[i+len(want):]
	}
}

func TestApp_Run_SelectionOutOfRange(t *testing.T) {
	srv := newUpstream(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApp(newTestConfig(srv.URL), logger)

	var out bytes.Buffer
	err := app.Run(context.Background(), strings.NewReader("Novosibirsk\n5\n"), &out)

	var stageErr *pipeline.StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("Run() error = %v, want *pipeline.StageError", err)
	}
	if stageErr.Stage != pipeline.StageSelection {
		t.Errorf("StageError.Stage = %v, want %v", stageErr.Stage, pipeline.StageSelection)
	}
}

func TestRun_TransportFailureKeepsKeysPrivate(t *testing.T) {
	srv := newUpstreamWithWeather(t, func(w http.ResponseWriter, r *http.Request) {
		conn, _, err := w.(http.Hijacker).Hijack()
		if err != nil {
			t.Errorf("Hijack() error = %v", err)
			return
		}
		_ = conn.Close()
	})

	cfg := newTestConfig(srv.URL)
	cfg.Weather.APIKey = "SECRET-OWM-KEY"

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var out bytes.Buffer
	if err := run(context.Background(), cfg, logger, strings.NewReader("Novosibirsk\n0\n"), &out); err != nil {
		t.Fatalf("run() unexpected error = %v", err)
	}

	if !strings.Contains(out.String(), "Weather unavailable: ") {
		t.Errorf("run() output = %q, want the weather failure line", out.String())
	}
	if strings.Contains(out.String(), "SECRET-OWM-KEY") {
		t.Errorf("run() output contains the API key:\n%s", out.String())
	}
	if strings.Contains(logs.String(), "SECRET-OWM-KEY") {
		t.Errorf("logs contain the API key:\n%s", logs.String())
	}
}

func TestRun_StageErrorIsLeftToCaller(t *testing.T) {
	srv := newUpstream(t)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelError}))

	var out bytes.Buffer
	err := run(context.Background(), newTestConfig(srv.URL), logger, strings.NewReader("Novosibirsk\nfirst\n"), &out)

	var stageErr *pipeline.StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("run() error = %v, want *pipeline.StageError", err)
	}
	if logs.Len() != 0 {
		t.Errorf("run() logged the failure itself:\n%s", logs.String())
	}
}
