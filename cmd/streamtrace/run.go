package main

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/streamtrace/internal/config"
	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/metrics"
	"github.com/san-kum/streamtrace/internal/storage"
	"github.com/san-kum/streamtrace/internal/tracer"
	"github.com/spf13/cobra"
)

// loadConfig resolves the run configuration: a config file wins over a
// preset, and with neither the default config is used.
func loadConfig(args []string, presetName string) (*config.Config, error) {
	switch {
	case len(args) == 1:
		cfg, err := config.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", args[0], err)
		}
		return cfg, nil
	case presetName != "":
		cfg := config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", presetName)
		}
		return cfg, nil
	default:
		return config.DefaultConfig(), nil
	}
}

// applyOverrides copies the trace flags the user set onto cfg.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("step-size") {
		cfg.Trace.StepSize = stepSize
	}
	if flags.Changed("max-steps") {
		cfg.Trace.MaxSteps = maxSteps
	}
	if flags.Changed("direction") {
		cfg.Trace.Direction = direction
	}
	if flags.Changed("workers") {
		cfg.Trace.Workers = workers
	}
}

func runTrace(cfg *config.Config, log *slog.Logger) (*tracer.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := cfg.BuildGrid()
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	t := tracer.NewStreamTracer(cfg.Trace.MaxSteps, cfg.Trace.StepSize)
	t.Workers = cfg.Trace.Workers
	t.Logger = log

	res, err := t.Trace(cfg.SeedPoints(), g, cfg.Trace.Direction)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	return res, nil
}

func buildMetadata(cfg *config.Config, res *tracer.Result) storage.RunMetadata {
	meta := storage.RunMetadata{
		Name:        cfg.Name,
		Field:       cfg.Field.Kind,
		FieldParams: cfg.Field.Params,
		Direction:   cfg.Trace.Direction,
		StepSize:    cfg.Trace.StepSize,
		MaxSteps:    cfg.Trace.MaxSteps,
		Workers:     dynamo.Workers(cfg.Trace.Workers),
		Seeds:       make([][3]float64, len(res.Seeds)),
		NPoints:     make([]int, len(res.Lines)),
		Metrics:     metrics.Evaluate(res, metrics.Default(1.5*cfg.Trace.StepSize)...),
	}

	for i, s := range res.Seeds {
		meta.Seeds[i] = s
	}
	for i, l := range res.Lines {
		meta.NPoints[i] = len(l)
	}

	for _, st := range res.Terminations() {
		codes := make([]int, len(st))
		for j, s := range st {
			codes[j] = s.Code()
		}
		meta.Terminations = append(meta.Terminations, codes)
	}

	return meta
}
