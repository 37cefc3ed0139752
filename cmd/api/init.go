package main

import (
	"context"
	"errors"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
)

// initTelemetry starts the providers enabled in cfg and registers the
// application metric instruments. The returned func shuts the providers down
// in reverse order. Add new domain InitMetrics calls here as the project grows.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	steps := []struct {
		enabled bool
		init    func(context.Context) (func(context.Context) error, error)
	}{
		{cfg.TracingEnabled, observability.InitTracing},
		{cfg.MetricsEnabled, observability.InitMetrics},
		{cfg.LogExportEnabled, observability.InitLogging},
	}
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		fn, err := step.init(ctx)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, fn)
	}

	// Instruments come from the global meter provider, which is a no-op
	// when metrics are disabled.
	if err := calculator.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	return shutdown, nil
}
