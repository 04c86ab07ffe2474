package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log      LogConfig
	Remote   RemoteConfig
	Geocoder GeocoderConfig
	Weather  WeatherConfig
	Places   PlacesConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=text json"`
}

// RemoteConfig holds settings shared by every outgoing request
type RemoteConfig struct {
	Timeout time.Duration `validate:"min=1ms"` // per-request timeout
}

// GeocoderConfig holds the GraphHopper geocoding endpoint settings
type GeocoderConfig struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
	Locale  string `validate:"required"`
	Limit   int    `validate:"min=1,max=100"` // maximum number of candidates
}

// WeatherConfig holds the OpenWeather current weather endpoint settings
type WeatherConfig struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
	Lang    string `validate:"required"`
}

// PlacesConfig holds the OpenTripMap endpoint settings
type PlacesConfig struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
	Lang    string `validate:"required"`
	Radius  int    `validate:"min=1"` // search radius in meters
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return LoadFs(afero.NewOsFs())
}

// LoadFs reads configuration using the given filesystem for the optional config file
func LoadFs(fs afero.Fs) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.travel-scout")

	// Set defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("remote.timeout", 10*time.Second)
	v.SetDefault("geocoder.baseurl", "https://graphhopper.com/api/1/geocode")
	v.SetDefault("geocoder.apikey", "")
	v.SetDefault("geocoder.locale", "en")
	v.SetDefault("geocoder.limit", 20)
	v.SetDefault("weather.baseurl", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("weather.apikey", "")
	v.SetDefault("weather.lang", "en")
	v.SetDefault("places.baseurl", "https://api.opentripmap.com/0.1")
	v.SetDefault("places.apikey", "")
	v.SetDefault("places.lang", "en")
	v.SetDefault("places.radius", 2000)

	// Read from environment variables, e.g. TRAVEL_SCOUT_WEATHER_APIKEY
	v.SetEnvPrefix("TRAVEL_SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field against its validation tags
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewLogger creates a new slog.Logger writing to stderr, leaving stdout to the report
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a new slog.Logger based on the configuration
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
