package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the service settings read from the environment.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration
	// MaxBodyBytes caps the size of calculator request bodies.
	MaxBodyBytes int64
	// LogLevel is a zap level name such as "debug" or "warn".
	LogLevel string

	TracingEnabled   bool
	MetricsEnabled   bool
	LogExportEnabled bool
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:             ":8080",
		ShutdownTimeout:  5 * time.Second,
		MaxBodyBytes:     1 << 20,
		LogLevel:         "info",
		TracingEnabled:   true,
		MetricsEnabled:   true,
		LogExportEnabled: false,
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, starting from Default. A variable
// that is set but cannot be parsed is an error.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("CALC_ADDR"); ok && v != "" {
		cfg.Addr = v
	}

	if v, ok := lookup("CALC_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	if v, ok := lookup("CALC_SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse CALC_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if v, ok := lookup("CALC_MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse CALC_MAX_BODY_BYTES: %w", err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("CALC_MAX_BODY_BYTES must be positive, got %d", n)
		}
		cfg.MaxBodyBytes = n
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"CALC_TRACING_ENABLED", &cfg.TracingEnabled},
		{"CALC_METRICS_ENABLED", &cfg.MetricsEnabled},
		{"CALC_LOG_EXPORT_ENABLED", &cfg.LogExportEnabled},
	}
	for _, f := range flags {
		v, ok := lookup(f.name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = b
	}

	return cfg, nil
}
