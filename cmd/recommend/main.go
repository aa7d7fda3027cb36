// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/verdant/internal/config"
	"github.com/tomtom215/verdant/internal/logging"
	"github.com/tomtom215/verdant/internal/metrics"
	"github.com/tomtom215/verdant/internal/prefs"
	"github.com/tomtom215/verdant/internal/recommend"
)

// now supplies the default month. Tests replace it.
var now = time.Now

// options holds the parsed command-line flags.
type options struct {
	suburb          string
	n               int
	climatePath     string
	prefsPath       string
	outPath         string
	climateZone     string
	catalogPaths    []string
	month           int
	configPath      string
	metricsTextfile string
	logLevel        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one recommendation request and returns the process exit code.
// All log output, including flag errors, goes to stderr.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true, Output: stderr})

	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logging.Error().Err(err).Msg("Invalid arguments")
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logging.Init(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})
	logger := logging.WithComponent("cli")

	textfile := cfg.Metrics.Textfile
	if opts.metricsTextfile != "" {
		textfile = opts.metricsTextfile
	}

	err = execute(ctx, opts, cfg, logger)

	if textfile != "" {
		if werr := metrics.WriteTextfile(textfile); werr != nil {
			logger.Error().Err(werr).Str("path", textfile).Msg("Failed to write metrics textfile")
			if err == nil {
				return 1
			}
		}
	}

	if err != nil {
		logger.Error().Err(err).Msg("Recommendation failed")
		return 1
	}
	return 0
}

// execute loads every input, runs the engine and writes the result.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func execute(ctx context.Context, opts *options, cfg *config.Config, logger zerolog.Logger) error {
	paths, err := catalogPaths(opts.catalogPaths, cfg)
	if err != nil {
		return fmt.Errorf("locate catalog: %w", err)
	}

	climatePath := opts.climatePath
	if climatePath == "" {
		climatePath = cfg.Climate.DatasetPath
	}

	engine, err := initEngine(ctx, cfg, paths, climatePath, logger)
	if err != nil {
		return err
	}

	input, err := prefs.LoadFile(opts.prefsPath)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	month := opts.month
	if month == 0 {
		month = int(now().Month())
	}

	ctx = logging.ContextWithNewRequestID(ctx)
	result, err := engine.Generate(ctx, recommend.Request{
		Suburb:              opts.suburb,
		N:                   opts.n,
		ClimateZoneOverride: opts.climateZone,
		Month:               month,
		Preferences:         input,
	})
	if err != nil {
		return fmt.Errorf("generate recommendations: %w", err)
	}

	if err := writeResult(opts.outPath, result); err != nil {
		return err
	}

	logger.Info().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("out", opts.outPath).
		Int("recommendations", len(result.Recommendations)).
		Int("notes", len(result.Notes)).
		Msg("recommendations written")
	return nil
}

// parseFlags parses args. Both -flag and --flag forms are accepted.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	var catalogList string

	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.suburb, "suburb", "", "Suburb to resolve climate data for")
	fs.IntVar(&opts.n, "n", 0, "Number of recommendations (default: recommend.default_n)")
	fs.StringVar(&opts.climatePath, "climate", "", "Climate dataset JSON (default: climate.dataset_path)")
	fs.StringVar(&opts.prefsPath, "prefs", "", "Preferences JSON document (required)")
	fs.StringVar(&opts.outPath, "out", "", "Output JSON file (required)")
	fs.StringVar(&opts.climateZone, "climate-zone", "", "Override the suburb's climate zone")
	fs.StringVar(&catalogList, "catalog", "", "Comma-separated catalog CSV files")
	fs.IntVar(&opts.month, "month", 0, "Current month 1-12 (default: this month)")
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.prefsPath == "" {
		return nil, errors.New("--prefs is required")
	}
	if opts.outPath == "" {
		return nil, errors.New("--out is required")
	}
	if opts.month < 0 || opts.month > 12 {
		return nil, fmt.Errorf("--month must be between 1 and 12, got %d", opts.month)
	}
	opts.catalogPaths = splitPaths(catalogList)
	return opts, nil
}

// splitPaths splits a comma-separated list, dropping blanks.
func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// writeResult writes result to path as indented JSON with a trailing newline.
func writeResult(path string, result *recommend.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	//nolint:gosec // G306: result file is meant to be readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result %s: %w", path, err)
	}
	return nil
}
